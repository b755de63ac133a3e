package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("unknown").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, StatusCompleted.IsTerminal(), "completed still permits a refund")
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStatusCanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled}
	allowed := map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusCompleted, StatusFailed},
		StatusCompleted:  {StatusRefunded},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestMethodIsValid(t *testing.T) {
	for _, m := range []Method{MethodCreditCard, MethodDebitCard, MethodPix, MethodBankSlip, MethodPayPal, MethodApplePay, MethodGooglePay} {
		assert.True(t, m.IsValid(), string(m))
	}
	assert.False(t, Method("cash").IsValid())
}
