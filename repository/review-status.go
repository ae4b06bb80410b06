package repository

// ReviewStatus is shared by review requests and participant scores.
type ReviewStatus string

const (
	StatusPending    ReviewStatus = "pending"
	StatusInProgress ReviewStatus = "in_progress"
	StatusEligible   ReviewStatus = "eligible"
	StatusIneligible ReviewStatus = "ineligible"
)

var statusTransitions = map[ReviewStatus][]ReviewStatus{
	StatusPending:    {StatusInProgress, StatusEligible, StatusIneligible},
	StatusInProgress: {StatusEligible, StatusIneligible},
	StatusIneligible: {StatusPending},
	StatusEligible:   {},
}

func (s ReviewStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsOpen is true while a decision is still outstanding.
func (s ReviewStatus) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}

func (s ReviewStatus) CanTransition(to ReviewStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func OpenStatuses() []ReviewStatus {
	return []ReviewStatus{StatusPending, StatusInProgress}
}
