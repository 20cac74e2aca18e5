package common

// Project lifecycle statuses. A project starts OPEN, gains a seller and
// becomes IN_PROGRESS, and is closed out as COMPLETED by its buyer.
// PENDING is a reserved intermediate state that still counts as part of
// the open marketplace.
const (
	Open       = "OPEN"
	Pending    = "PENDING"
	InProgress = "IN_PROGRESS"
	Completed  = "COMPLETED"
)

// IsBiddable reports whether sellers may still bid on or be assigned to
// a project in the given status.
func IsBiddable(status string) bool {
	return status == Open || status == Pending
}
