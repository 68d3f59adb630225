package service

import (
	"fmt"
	"strings"

	"complaint-trends-service/internal/model"
)

// severityTier is the severity metadata attached to an alert.
type severityTier struct {
	Level string
	Color string
	Icon  string
	Label string
}

// severityFor classifies a bucket's severity. The dashboard collapsed its
// graduated scheme to a single tier; every alert is "warning" regardless of
// count. The count parameter stays so a graduated scheme can be reintroduced
// without touching callers.
func severityFor(count int) severityTier {
	return severityTier{
		Level: "warning",
		Color: "yellow",
		Icon:  "⚠️",
		Label: "ATTENTION NEEDED",
	}
}

// displayCap limits how many distinct auxiliary values are shown per alert.
const displayCap = 3

// displayList renders an auxiliary set as a comma-joined preview of up to
// displayCap values, or fallback when the set is empty.
func displayList(set *model.StringSet, fallback string) string {
	if set.Len() == 0 {
		return fallback
	}
	values := set.Values()
	if len(values) > displayCap {
		values = values[:displayCap]
	}
	return strings.Join(values, ", ")
}

// buildAlert turns a surviving bucket into a display-ready alert.
func buildAlert(b *model.TrendBucket) model.Alert {
	sev := severityFor(b.Count)

	alert := model.Alert{
		Category:      string(b.Category),
		Subcategory:   b.Subcategory,
		Count:         b.Count,
		ComplaintIDs:  b.ComplaintIDs,
		Severity:      sev.Level,
		SeverityColor: sev.Color,
		SeverityIcon:  sev.Icon,
	}

	switch b.Category {
	case model.CategoryFacility:
		// The facility name doubles as the location.
		alert.Location = b.Subcategory
		alert.IssueTypes = displayList(b.Issues, "Various issues")
		alert.Floor = displayList(b.Floors, "")
	case model.CategoryAcademic:
		alert.Level = displayList(b.Levels, "")
	}

	alert.UrgencyMessage = urgencyMessage(alert)
	alert.ActionItems = actionItems(alert)
	alert.DetailedMessage = detailedMessage(alert)

	return alert
}

func urgencyMessage(a model.Alert) string {
	var location, floor, level, issues string
	if a.Location != "" {
		location = fmt.Sprintf(" in %s", a.Location)
	}
	if a.Floor != "" {
		floor = fmt.Sprintf(" (%s)", a.Floor)
	}
	if a.Level != "" {
		level = fmt.Sprintf(" for %s students", a.Level)
	}
	if a.IssueTypes != "" {
		issues = fmt.Sprintf(" - Issues include: %s", a.IssueTypes)
	}

	return fmt.Sprintf("⚠️ ATTENTION: %d complaints about \"%s\"%s%s%s%s. Please review and take appropriate action.",
		a.Count, a.Subcategory, location, floor, level, issues)
}

// detailedMessage builds the long-form alert-card sentence. It carries raw
// <strong> markup; the dashboard renders it unescaped.
func detailedMessage(a model.Alert) model.HTMLMessage {
	var location, floor, level string
	if a.Location != "" {
		location = fmt.Sprintf(" in the %s", a.Location)
	}
	if a.Floor != "" {
		floor = fmt.Sprintf(" on %s", a.Floor)
	}
	if a.Level != "" {
		level = fmt.Sprintf(" (%s students)", a.Level)
	}

	return model.HTMLMessage(fmt.Sprintf(
		"The system has detected a significant pattern: <strong>%d complaints</strong> regarding <strong>\"%s\"</strong>%s%s%s have been submitted recently. This trend indicates a persistent issue that requires your immediate attention and corrective action to improve the situation and prevent future complaints.",
		a.Count, a.Subcategory, location, floor, level))
}

// actionItems returns the single category-templated recommendation.
func actionItems(a model.Alert) []model.ActionItem {
	var message string

	switch model.Category(a.Category) {
	case model.CategoryFacility:
		var location, floor string
		if a.Location != "" {
			location = fmt.Sprintf(" in the %s", a.Location)
		}
		if a.Floor != "" {
			floor = fmt.Sprintf(" on %s", a.Floor)
		}
		message = fmt.Sprintf("Please review and address the recurring %s issues%s%s. Consider inspecting the area and implementing necessary improvements to prevent future complaints.",
			strings.ToLower(a.Subcategory), location, floor)

	case model.CategoryTechnical:
		message = fmt.Sprintf("Please investigate and resolve the %s affecting users. Consider coordinating with the technical team to implement a permanent solution.",
			strings.ToLower(a.Subcategory))

	case model.CategoryAcademic:
		var level string
		if a.Level != "" {
			level = fmt.Sprintf(" for %s students", a.Level)
		}
		message = fmt.Sprintf("Please review the %s concerns%s. Consider meeting with relevant faculty or staff to address these issues.",
			strings.ToLower(a.Subcategory), level)

	case model.CategoryDisciplinary:
		message = fmt.Sprintf("Please review the reported %s incidents. Consider implementing preventive measures and awareness programs.",
			strings.ToLower(a.Subcategory))

	case model.CategoryAdministrative:
		message = fmt.Sprintf("Please review the %s department concerns. Consider improving service delivery and communication with students.",
			a.Subcategory)

	default:
		message = "Please review and address these recurring complaints to improve the situation."
	}

	return []model.ActionItem{{Message: message}}
}
