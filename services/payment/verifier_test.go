package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"arenaslot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rzp_test_secret"

func sign(t *testing.T, orderID, paymentID, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	_, err := mac.Write([]byte(orderID + "|" + paymentID))
	require.NoError(t, err)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAccepted(t *testing.T) {
	sig := sign(t, "order_123", "pay_456", testSecret)
	assert.NoError(t, VerifySignature("order_123", "pay_456", sig, testSecret))
}

func TestVerifySignatureMutationRejected(t *testing.T) {
	orderID := "order_123"
	paymentID := "pay_456"
	sig := sign(t, orderID, paymentID, testSecret)

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'x' {
			b[0] = 'y'
		} else {
			b[0] = 'x'
		}
		return string(b)
	}

	cases := map[string][3]string{
		"mutated signature": {orderID, paymentID, flip(sig)},
		"mutated orderId":   {flip(orderID), paymentID, sig},
		"mutated paymentId": {orderID, flip(paymentID), sig},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			err := VerifySignature(args[0], args[1], args[2], testSecret)
			require.Error(t, err)
			assert.Equal(t, utils.CodeSignatureMismatch, utils.ErrorCode(err))
		})
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	sig := sign(t, "order_123", "pay_456", "another_secret")
	err := VerifySignature("order_123", "pay_456", sig, testSecret)
	require.Error(t, err)
	assert.Equal(t, utils.CodeSignatureMismatch, utils.ErrorCode(err))
}

func TestVerifySignatureMissingFields(t *testing.T) {
	sig := sign(t, "order_123", "pay_456", testSecret)

	cases := map[string][3]string{
		"missing orderId":   {"", "pay_456", sig},
		"missing paymentId": {"order_123", "", sig},
		"missing signature": {"order_123", "pay_456", ""},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			err := VerifySignature(args[0], args[1], args[2], testSecret)
			require.Error(t, err)
			assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
		})
	}
}
