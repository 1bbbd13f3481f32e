package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	r := NewRazorpay("rzp_test_key", "secret123", "INR", 10*time.Second)

	sig := sign("secret123", "order_abc", "pay_xyz")
	assert.True(t, r.VerifySignature("order_abc", "pay_xyz", sig))
}

func TestVerifySignature_TamperedPaymentID(t *testing.T) {
	r := NewRazorpay("rzp_test_key", "secret123", "INR", 10*time.Second)

	sig := sign("secret123", "order_abc", "pay_xyz")
	assert.False(t, r.VerifySignature("order_abc", "pay_other", sig))
}

func TestVerifySignature_OneCharOff(t *testing.T) {
	r := NewRazorpay("rzp_test_key", "secret123", "INR", 10*time.Second)

	sig := sign("secret123", "order_abc", "pay_xyz")
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, r.VerifySignature("order_abc", "pay_xyz", string(tampered)))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	r := NewRazorpay("rzp_test_key", "secret123", "INR", 10*time.Second)

	sig := sign("othersecret", "order_abc", "pay_xyz")
	assert.False(t, r.VerifySignature("order_abc", "pay_xyz", sig))
}

func TestVerifySignature_EmptyInputs(t *testing.T) {
	r := NewRazorpay("rzp_test_key", "secret123", "INR", 10*time.Second)

	assert.False(t, r.VerifySignature("", "pay_xyz", "sig"))
	assert.False(t, r.VerifySignature("order_abc", "", "sig"))
	assert.False(t, r.VerifySignature("order_abc", "pay_xyz", ""))
}
