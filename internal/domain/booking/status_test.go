package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"waiting to approved", StatusWaiting, StatusApproved, true},
		{"waiting to rejected", StatusWaiting, StatusRejected, true},
		{"rejected to approved", StatusRejected, StatusApproved, true},
		{"rejected to rejected", StatusRejected, StatusRejected, false},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved to approved", StatusApproved, StatusApproved, false},
		{"waiting to waiting", StatusWaiting, StatusWaiting, false},
		{"unknown status", Status("bogus"), StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.False(t, StatusWaiting.IsTerminal())
	assert.False(t, StatusRejected.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusWaiting.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, Status("cancelled").IsValid())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("waiting")
	assert.NoError(t, err)
	assert.Equal(t, StatusWaiting, s)

	_, err = ParseStatus("pending")
	assert.Error(t, err)
}
