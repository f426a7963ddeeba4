package evidence

import (
	"sort"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// CompletenessThreshold is the number of missing recommended items at which
// a packet is flagged as incomplete
const CompletenessThreshold = 2

// Evaluate builds the checklist for the case's dispute reason. Items come
// back in reason-map order; only the Present flag depends on case contents.
func Evaluate(c models.DisputeCase, attachments []models.AttachmentItem) []models.EvidenceItem {
	reqs := Requirements(c.Reason)
	items := make([]models.EvidenceItem, 0, len(reqs))
	for _, req := range reqs {
		cat, ok := Lookup(req.Category)
		if !ok {
			continue
		}
		items = append(items, models.EvidenceItem{
			Category:  cat.Key,
			Label:     cat.Label,
			Rationale: cat.Rationale,
			Priority:  req.Priority,
			Present:   cat.Present(c, attachments),
		})
	}
	return items
}

// ByPriority returns a copy of items with critical items first, ties broken
// by label
func ByPriority(items []models.EvidenceItem) []models.EvidenceItem {
	out := append([]models.EvidenceItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return priorityLess(out[i], out[j])
	})
	return out
}

// ByStrength returns a copy of items with present items before missing
// ones, each group in priority order
func ByStrength(items []models.EvidenceItem) []models.EvidenceItem {
	out := append([]models.EvidenceItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Present != out[j].Present {
			return out[i].Present
		}
		return priorityLess(out[i], out[j])
	})
	return out
}

func priorityLess(a, b models.EvidenceItem) bool {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() < b.Priority.Rank()
	}
	return a.Label < b.Label
}

// MissingRecommended counts recommended items that are not present
func MissingRecommended(items []models.EvidenceItem) int {
	n := 0
	for _, it := range items {
		if it.Priority == models.PriorityRecommended && !it.Present {
			n++
		}
	}
	return n
}

// NeedsCompletenessWarning reports whether enough recommended evidence is
// missing to warn before export
func NeedsCompletenessWarning(items []models.EvidenceItem) bool {
	return MissingRecommended(items) >= CompletenessThreshold
}

// MissingCritical returns the critical items that are not present, in
// checklist order
func MissingCritical(items []models.EvidenceItem) []models.EvidenceItem {
	var out []models.EvidenceItem
	for _, it := range items {
		if it.Priority == models.PriorityCritical && !it.Present {
			out = append(out, it)
		}
	}
	return out
}
