package model

// Notification is a row for the notifications table. ComplaintID is nil for
// trend alerts, which reference a set of complaints rather than a single one.
type Notification struct {
	UserID      string
	ComplaintID *int64
	Type        string
	Message     string
	IsRead      bool
}
