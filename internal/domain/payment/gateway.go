package payment

import "context"

// Gateway decides whether a payment is approved by the upstream processor.
type Gateway interface {
	Approve(ctx context.Context, p *Payment) bool
}
