package errors

import (
	// Go Internal Packages
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: Other},
		{name: "plain", err: stderrors.New("boom"), want: Other},
		{name: "direct", err: E(NotFound, "missing", nil), want: NotFound},
		{name: "wrapped by fmt", err: fmt.Errorf("ctx: %w", E(Timeout, "slow", nil)), want: Timeout},
		{name: "other wraps typed", err: E(Other, "outer", E(Conflict, "inner", nil)), want: Conflict},
		{name: "amount helper", err: InvalidAmountErr("abc", nil), want: InvalidAmount},
		{name: "transition helper", err: TransitionErr("tip", "amount_entry"), want: InvalidState},
		{name: "timeout helper", err: ProcessingTimeoutErr("ach", context.DeadlineExceeded), want: Timeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := ProcessingTimeoutErr("venmo", context.DeadlineExceeded)
	assert.Equal(t, "venmo timed out: context deadline exceeded", err.Error())
	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
	assert.True(t, Is(Timeout, err))
	assert.False(t, Is(Timeout, nil))
}

func TestValidationErrs(t *testing.T) {
	ve := ValidationErrs()
	require.NoError(t, ve.Err())

	ve.Add("routing_number", "must be 9 digits")
	ve.Add("account_number", "cannot be empty")
	ve.Add("routing_number", "digits only")

	err := ve.Err()
	require.Error(t, err)
	assert.Equal(t, "account_number cannot be empty; routing_number must be 9 digits, digits only", err.Error())

	wrapped := EmptyParamErr("site_id")
	assert.Equal(t, Invalid, KindOf(wrapped))
	assert.Contains(t, wrapped.Error(), "site_id cannot be empty")
}
