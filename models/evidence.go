package models

// Priority ranks how much an evidence category matters for a reason
type Priority string

// Priority tiers
const (
	PriorityCritical    Priority = "critical"
	PriorityRecommended Priority = "recommended"
)

// Rank orders priorities, critical first
func (p Priority) Rank() int {
	if p == PriorityCritical {
		return 0
	}
	return 1
}

// EvidenceItem is one checklist row computed for the active reason
type EvidenceItem struct {
	Category  string   `json:"category"`
	Label     string   `json:"label"`
	Rationale string   `json:"rationale"`
	Priority  Priority `json:"priority"`
	Present   bool     `json:"present"`
}

// Status renders the present flag the way exports print it
func (e EvidenceItem) Status() string {
	if e.Present {
		return "Present"
	}
	return "Missing"
}
