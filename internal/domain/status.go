package domain

// transitionRule fixes, for one action, the status a draft must be in and
// the status it moves to.
type transitionRule struct {
	required ApprovalStatus
	next     ApprovalStatus
}

// transitions is the full moderation state machine:
// PENDING → UNDER_REVIEW → {APPROVED, REJECTED}.
// Publish is absent on purpose: it consumes the draft instead of moving it,
// and its required status differs per entity family (see workflow.Config).
var transitions = map[Action]transitionRule{
	ActionSubmit:  {required: StatusPending, next: StatusUnderReview},
	ActionApprove: {required: StatusUnderReview, next: StatusApproved},
	ActionReject:  {required: StatusUnderReview, next: StatusRejected},
}

// Transition validates and performs a status transition. It is a pure
// function: it never mutates the draft and has no side effects.
func Transition(action Action, current ApprovalStatus) (ApprovalStatus, error) {
	rule, ok := transitions[action]
	if !ok {
		return "", NewValidationError("action", "not a status transition: "+action.String())
	}
	if current != rule.required {
		return "", &InvalidStatusError{Action: action, Required: rule.required, Actual: current}
	}
	return rule.next, nil
}

// RequiredStatus returns the status a transition action demands.
// Returns false for actions that are not status transitions.
func RequiredStatus(action Action) (ApprovalStatus, bool) {
	rule, ok := transitions[action]
	if !ok {
		return "", false
	}
	return rule.required, true
}
