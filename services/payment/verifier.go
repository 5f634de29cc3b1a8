package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"arenaslot/utils"
)

// VerifySignature checks the authenticity of a gateway payment callback.
// The gateway signs `orderID|paymentID` with the shared secret using
// HMAC-SHA256 and sends the lowercase hex digest as the signature. This is
// the sole authenticity gate before a booking counts as paid.
//
// It fails closed: missing parameters are rejected before any hashing.
func VerifySignature(orderID, paymentID, signature, secret string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return utils.NewValidationError("missing payment details")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return utils.NewSignatureError("invalid signature")
	}
	return nil
}
