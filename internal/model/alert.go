package model

// StringSet is a deduplicating set that preserves first-seen insertion order,
// so repeated aggregation runs over the same data produce identical output.
type StringSet struct {
	seen   map[string]struct{}
	values []string
}

// NewStringSet returns an empty ordered set.
func NewStringSet() *StringSet {
	return &StringSet{seen: map[string]struct{}{}}
}

// Add inserts v unless it is already present.
func (s *StringSet) Add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}

// Values returns the distinct values in insertion order.
func (s *StringSet) Values() []string {
	return s.values
}

// Len reports the number of distinct values.
func (s *StringSet) Len() int {
	return len(s.values)
}

// TrendBucket accumulates complaints sharing one grouping key within a
// category. Keys are compared as-is: "Library" and "library" are distinct
// buckets.
type TrendBucket struct {
	Category     Category
	Subcategory  string
	Count        int
	ComplaintIDs []int64

	// Auxiliary sets; only the ones relevant to the category are filled.
	Issues *StringSet // Facility: distinct issue types
	Floors *StringSet // Facility: distinct floors
	Levels *StringSet // Academic: distinct student levels
}

// NewTrendBucket returns an empty bucket for the given grouping key.
func NewTrendBucket(category Category, subcategory string) *TrendBucket {
	return &TrendBucket{
		Category:    category,
		Subcategory: subcategory,
		Issues:      NewStringSet(),
		Floors:      NewStringSet(),
		Levels:      NewStringSet(),
	}
}

// HTMLMessage is a string carrying raw markup. It is rendered unescaped by
// the dashboard, unlike the plain-text message fields.
type HTMLMessage string

// ActionItem is one recommended remedial action attached to an alert.
type ActionItem struct {
	Message string `json:"message"`
}

// Alert is a surfaced trend, ready for display.
type Alert struct {
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Count        int     `json:"count"`
	ComplaintIDs []int64 `json:"complaintIds"`

	Location   string `json:"location,omitempty"`
	Floor      string `json:"floor,omitempty"`
	IssueTypes string `json:"issueTypes,omitempty"`
	Level      string `json:"level,omitempty"`

	Severity      string `json:"severity"`
	SeverityColor string `json:"severityColor"`
	SeverityIcon  string `json:"severityIcon"`

	UrgencyMessage  string       `json:"urgencyMessage"`
	DetailedMessage HTMLMessage  `json:"detailedMessage"`
	ActionItems     []ActionItem `json:"actionItems"`
}

// TrendQuery carries the parameters of one trend-alert request.
type TrendQuery struct {
	Role      string
	AdminID   string
	Days      int
	Threshold int
}
