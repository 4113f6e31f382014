package domain

// TransitionPolicy decides whether a status change is accepted. The
// service validates enum membership first; the policy only sees valid
// target statuses.
type TransitionPolicy interface {
	Allowed(from, to OrderStatus) bool
}

// PermissiveTransitions accepts any valid target status from any state.
// Kitchen staff rely on this to undo mistakes (e.g. ready back to pending),
// so it is the default policy.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allowed(from, to OrderStatus) bool {
	return to.Valid()
}

// StrictTransitions enforces the forward pipeline, with cancellation
// reachable from any non-terminal state. Not enabled by default.
type StrictTransitions struct{}

var strictNext = map[OrderStatus]OrderStatus{
	StatusPending:        StatusPreparing,
	StatusPreparing:      StatusReady,
	StatusReady:          StatusOutForDelivery,
	StatusOutForDelivery: StatusCompleted,
}

func (StrictTransitions) Allowed(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return strictNext[from] == to
}
