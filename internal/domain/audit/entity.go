package audit

import "time"

// Entry is an activity-log row written on admin actions. Audit writes
// are best-effort: a failed insert is logged and swallowed so it never
// fails the primary operation.
type Entry struct {
	ID        string
	CompanyID string
	ActorID   string
	Action    string
	Detail    string
	CreatedAt time.Time
}
