package payment

// Status represents the lifecycle status of a payment.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
	StatusCancelled  Status = "cancelled"
)

// IsValid returns true if the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transition can leave the status.
// Completed is not terminal: it still permits a refund.
func (s Status) IsTerminal() bool {
	return s == StatusFailed || s == StatusRefunded || s == StatusCancelled
}

// CanTransitionTo returns true if the status can transition to the target status.
// Each transition is legal from exactly one source status.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusCompleted || target == StatusFailed
	case StatusCompleted:
		return target == StatusRefunded
	default:
		return false
	}
}

// Method represents how a payment is funded.
type Method string

const (
	MethodCreditCard Method = "credit_card"
	MethodDebitCard  Method = "debit_card"
	MethodPix        Method = "pix"
	MethodBankSlip   Method = "bank_slip"
	MethodPayPal     Method = "paypal"
	MethodApplePay   Method = "apple_pay"
	MethodGooglePay  Method = "google_pay"
)

// IsValid returns true if the method is one of the supported payment methods.
func (m Method) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPix, MethodBankSlip, MethodPayPal, MethodApplePay, MethodGooglePay:
		return true
	default:
		return false
	}
}
