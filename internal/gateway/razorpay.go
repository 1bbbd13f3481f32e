package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// Razorpay wraps the official SDK. Order creation is bounded by a timeout so
// a stalled gateway call cannot hold a request open indefinitely; on timeout
// the local record keeps no order id and the create is retryable.
type Razorpay struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	currency  string
	timeout   time.Duration
}

func NewRazorpay(keyID, keySecret, currency string, timeout time.Duration) *Razorpay {
	if currency == "" {
		currency = "INR"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Razorpay{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
		timeout:   timeout,
	}
}

func (r *Razorpay) KeyID() string    { return r.keyID }
func (r *Razorpay) Currency() string { return r.currency }

type orderResult struct {
	id  string
	err error
}

func (r *Razorpay) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        r.currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	// The SDK call is synchronous and does not take a context, so it runs on
	// its own goroutine and the caller observes ctx instead.
	done := make(chan orderResult, 1)
	go func() {
		body, err := r.client.Order.Create(data, nil)
		if err != nil {
			done <- orderResult{err: err}
			return
		}
		id, ok := body["id"].(string)
		if !ok || id == "" {
			done <- orderResult{err: fmt.Errorf("gateway order response missing id")}
			return
		}
		done <- orderResult{id: id}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.id, res.err
	}
}

// VerifySignature recomputes the HMAC over the UTF-8 bytes of
// "orderID|paymentID" and compares in constant time.
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(r.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
