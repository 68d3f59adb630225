package model

import "time"

// ComplaintStatus mirrors the complaintstatus column.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In-Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusDeleted    ComplaintStatus = "Deleted"
)

// ComplaintRecord is one complaint row joined to its category-specific detail
// row. Exactly one of the detail pointers is ever non-nil, matching the
// one-to-one detail tables; a nil pointer means the join found no detail row.
type ComplaintRecord struct {
	ComplaintID   int64
	Category      Category
	Status        ComplaintStatus
	SubmittedDate time.Time

	Facility       *FacilityDetail
	Academic       *AcademicDetail
	Technical      *TechnicalDetail
	Behavior       *BehaviorDetail
	Administrative *AdministrativeDetail
}

// FacilityDetail holds the facilitycomplaint columns used for trends.
// FacilityType is the grouping key; IssueType and Floor are auxiliary and may
// be empty.
type FacilityDetail struct {
	FacilityType string
	IssueType    string
	Floor        string
}

// AcademicDetail holds the academiccomplaint columns used for trends.
type AcademicDetail struct {
	IssueSpecification string
	Level              string
}

// TechnicalDetail holds the technicalcomplaint grouping column.
type TechnicalDetail struct {
	IssueType string
}

// BehaviorDetail holds the studentbehaviorcomplaint grouping column.
type BehaviorDetail struct {
	BehaviorType string
}

// AdministrativeDetail holds the administrativecomplaint grouping column.
type AdministrativeDetail struct {
	Department string
}
