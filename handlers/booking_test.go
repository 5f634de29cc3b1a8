package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arenaslot/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signCallback(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func performVerify(t *testing.T, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &BookingHandler{}
	router := gin.New()
	router.POST("/verify", h.VerifyPaymentHandler)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVerifyPaymentHandlerAccepted(t *testing.T) {
	config.AppConfig.RazorpaySecret = "test_secret"

	w := performVerify(t, map[string]string{
		"orderId":   "order_123",
		"paymentId": "pay_456",
		"signature": signCallback("order_123", "pay_456", "test_secret"),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "pay_456", resp["paymentId"])
}

func TestVerifyPaymentHandlerBadSignature(t *testing.T) {
	config.AppConfig.RazorpaySecret = "test_secret"

	w := performVerify(t, map[string]string{
		"orderId":   "order_123",
		"paymentId": "pay_456",
		"signature": signCallback("order_123", "pay_456", "wrong_secret"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid signature")
}

func TestVerifyPaymentHandlerMissingFields(t *testing.T) {
	config.AppConfig.RazorpaySecret = "test_secret"

	w := performVerify(t, map[string]string{
		"orderId": "order_123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing payment details")
}
