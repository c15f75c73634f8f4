package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus_AllowedEdges(t *testing.T) {
	tests := []struct {
		current BookingStatus
		action  BookingAction
		want    BookingStatus
	}{
		{current: StatusPending, action: ActionAccept, want: StatusAccepted},
		{current: StatusPending, action: ActionReject, want: StatusRejected},
		{current: StatusPending, action: ActionCancel, want: StatusCancelled},
		{current: StatusAccepted, action: ActionComplete, want: StatusCompleted},
		{current: StatusAccepted, action: ActionCancel, want: StatusCancelled},
	}

	for _, tt := range tests {
		got, ok := NextStatus(tt.current, tt.action)
		assert.True(t, ok, "%s + %s", tt.current, tt.action)
		assert.Equal(t, tt.want, got, "%s + %s", tt.current, tt.action)
	}
}

func TestNextStatus_ForbiddenEdges(t *testing.T) {
	tests := []struct {
		current BookingStatus
		action  BookingAction
	}{
		{current: StatusPending, action: ActionComplete},
		{current: StatusAccepted, action: ActionAccept},
		{current: StatusAccepted, action: ActionReject},
		{current: StatusRejected, action: ActionAccept},
		{current: StatusRejected, action: ActionCancel},
		{current: StatusCancelled, action: ActionAccept},
		{current: StatusCancelled, action: ActionComplete},
		{current: StatusCompleted, action: ActionCancel},
		{current: StatusCompleted, action: ActionAccept},
	}

	for _, tt := range tests {
		_, ok := NextStatus(tt.current, tt.action)
		assert.False(t, ok, "%s + %s must be forbidden", tt.current, tt.action)
	}
}

// Ни одно ребро не ведёт обратно в pending и ни одно не выходит из
// терминального статуса.
func TestTransitions_Monotonic(t *testing.T) {
	for _, terminal := range TerminalStatuses {
		for _, action := range []BookingAction{ActionAccept, ActionReject, ActionComplete, ActionCancel} {
			_, ok := NextStatus(terminal, action)
			assert.False(t, ok, "terminal status %s must have no outgoing edges", terminal)
		}
	}

	for _, current := range []BookingStatus{StatusPending, StatusAccepted} {
		for _, action := range []BookingAction{ActionAccept, ActionReject, ActionComplete, ActionCancel} {
			next, ok := NextStatus(current, action)
			if !ok {
				continue
			}
			assert.NotEqual(t, StatusPending, next, "no edge may re-enter pending")
			assert.NotEqual(t, current, next, "no self loops")
		}
	}
}

func TestRequiredRole(t *testing.T) {
	tests := []struct {
		action BookingAction
		want   ActorRole
	}{
		{action: ActionAccept, want: RoleVendor},
		{action: ActionReject, want: RoleVendor},
		{action: ActionComplete, want: RoleVendor},
		{action: ActionCancel, want: RoleCustomer},
	}

	for _, tt := range tests {
		got, ok := RequiredRole(tt.action)
		assert.True(t, ok, "action=%s", tt.action)
		assert.Equal(t, tt.want, got, "action=%s", tt.action)
	}

	_, ok := RequiredRole(BookingAction("approve"))
	assert.False(t, ok)
}

func TestParseAction(t *testing.T) {
	for _, valid := range []string{"accept", "reject", "complete", "cancel"} {
		action, ok := ParseAction(valid)
		assert.True(t, ok, "input=%s", valid)
		assert.Equal(t, BookingAction(valid), action)
	}

	for _, invalid := range []string{"", "Accept", "confirm", "delete"} {
		_, ok := ParseAction(invalid)
		assert.False(t, ok, "input=%q", invalid)
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"customer", "vendor", "admin"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok, "input=%s", valid)
		assert.Equal(t, ActorRole(valid), role)
	}

	_, ok := ParseRole("manager")
	assert.False(t, ok)
}

func TestBooking_StatusPredicates(t *testing.T) {
	active := []BookingStatus{StatusPending, StatusAccepted}
	terminal := []BookingStatus{StatusRejected, StatusCancelled, StatusCompleted}

	for _, status := range active {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), "status=%s", status)
		assert.False(t, b.IsTerminal(), "status=%s", status)
	}

	for _, status := range terminal {
		b := Booking{Status: status}
		assert.False(t, b.IsActive(), "status=%s", status)
		assert.True(t, b.IsTerminal(), "status=%s", status)
	}
}
