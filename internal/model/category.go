package model

// Category is the closed set of complaint categories. Values match the
// categoryname column so they can be used directly in queries.
type Category string

const (
	CategoryFacility       Category = "Facility"
	CategoryAcademic       Category = "Academic"
	CategoryTechnical      Category = "Technical"
	CategoryDisciplinary   Category = "Student Disciplinary"
	CategoryAdministrative Category = "Administrative"
	CategoryOther          Category = "Other"
)

// Categories lists every category in a fixed order. Master Admin trend runs
// iterate this list, so the order is part of observable output ordering for
// equal-count alerts.
var Categories = []Category{
	CategoryFacility,
	CategoryAcademic,
	CategoryTechnical,
	CategoryDisciplinary,
	CategoryAdministrative,
	CategoryOther,
}

func (c Category) String() string {
	return string(c)
}
