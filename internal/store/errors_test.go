package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrClientNotFound",
			err:      ErrClientNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrAccountNotFound",
			err:      fmt.Errorf("failed to find account: %w", ErrAccountNotFound),
			expected: true,
		},
		{
			name:     "ErrClientExists",
			err:      ErrClientExists,
			expected: false,
		},
		{
			name:     "ErrAccountClientMismatch",
			err:      ErrAccountClientMismatch,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrClientExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrClientNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsStoreError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"raw driver error", errors.New("connection reset by peer"), false},
		{"not found", ErrAccountNotFound, true},
		{"duplicate", ErrClientExists, true},
		{"add failed", ErrClientAddFailed, true},
		{"mismatch", ErrAccountClientMismatch, true},
		{"unavailable", fmt.Errorf("%w: ping", ErrUnavailable), true},
		{"transaction failed", ErrTransactionFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStoreError(tt.err))
		})
	}
}

func TestErrorHierarchy(t *testing.T) {
	assert.ErrorIs(t, ErrClientAddFailed, ErrAddFailed)
	assert.ErrorIs(t, ErrAccountAddFailed, ErrAddFailed)
	assert.ErrorIs(t, ErrTransactionFailed, ErrUnavailable)
	assert.NotErrorIs(t, ErrClientNotFound, ErrAccountNotFound)
	assert.NotErrorIs(t, ErrAccountNotFound, ErrClientNotFound)
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("account", "update_amount", "no rows updated", ErrUnavailable)

		assert.Equal(t,
			"update_amount operation on account failed: no rows updated: database unavailable",
			err.Error())
		assert.ErrorIs(t, err, ErrUnavailable)

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
		assert.Equal(t, "account", storeErr.Entity)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("client", "insert", "nothing inserted", nil)

		assert.Equal(t, "insert operation on client failed: nothing inserted", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
