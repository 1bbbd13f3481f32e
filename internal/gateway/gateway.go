package gateway

import "context"

// Client opens payment orders at the gateway and verifies payment proofs.
// The rest of the system treats gateway order/payment ids as opaque join keys.
type Client interface {
	// CreateOrder opens a gateway order for amountMinor (minor currency
	// units, i.e. rupees x 100) and returns the gateway order id.
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (string, error)

	// VerifySignature checks the client-supplied signature against the
	// HMAC-SHA256 of "orderID|paymentID" under the gateway shared secret.
	VerifySignature(orderID, paymentID, signature string) bool

	KeyID() string
	Currency() string
}
