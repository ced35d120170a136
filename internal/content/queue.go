// Package content parses the content queue markdown into pipeline items.
//
// The queue is a semi-structured document: `##` headings set an implicit
// status that carries over to subsequent checklist lines until the next
// heading; a checked box means the item is published regardless of the
// current section; a `platform: X` annotation overrides the item's platform.
package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"missioncontrol/internal/models"
)

// Pipeline statuses, in queue order.
const (
	StatusDraft     = "draft"
	StatusReview    = "review"
	StatusApproved  = "approved"
	StatusPublished = "published"
)

// headingTransitions maps heading-text substrings to the status they switch
// the parser into. First match wins; heading text that matches nothing
// leaves the status unchanged.
var headingTransitions = []struct {
	substr string
	status string
}{
	{"draft", StatusDraft},
	{"review", StatusReview},
	{"approved", StatusApproved},
	{"published", StatusPublished},
}

var (
	headingRe  = regexp.MustCompile(`^##\s+(.+)`)
	checkboxRe = regexp.MustCompile(`^[-*]\s+\[([^\]]*)\]\s*(.*)`)
	bulletRe   = regexp.MustCompile(`^[-*]\s+(.+)`)
	platformRe = regexp.MustCompile(`(?i)platform:\s*(\w+)`)
)

// ParseQueue runs the single-pass state machine over the queue markdown and
// returns the pipeline items in document order.
func ParseQueue(text string) []models.ContentItem {
	items := make([]models.ContentItem, 0, 8)
	status := StatusDraft
	now := time.Now().UTC().Format(time.RFC3339)

	var pending *models.ContentItem
	flush := func() {
		if pending == nil || pending.Title == "" {
			return
		}
		if pending.Platform == "" {
			pending.Platform = "general"
		}
		pending.ItemID = fmt.Sprintf("content-%d", len(items))
		pending.CreatedAt = now
		items = append(items, *pending)
		pending = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			status = transition(status, m[1])
			continue
		}

		if m := checkboxRe.FindStringSubmatch(line); m != nil {
			flush()
			itemStatus := status
			if strings.EqualFold(strings.TrimSpace(m[1]), "x") {
				itemStatus = StatusPublished
			}
			pending = &models.ContentItem{Title: strings.TrimSpace(m[2]), Status: itemStatus}
		} else if m := bulletRe.FindStringSubmatch(line); m != nil && pending == nil {
			pending = &models.ContentItem{Title: strings.TrimSpace(m[1]), Status: status}
		}

		if m := platformRe.FindStringSubmatch(line); m != nil && pending != nil {
			pending.Platform = m[1]
		}
	}
	flush()

	return items
}

// transition returns the status implied by heading text, or current when the
// heading names no known state. Matching is case-insensitive substring.
func transition(current, heading string) string {
	lower := strings.ToLower(heading)
	for _, t := range headingTransitions {
		if strings.Contains(lower, t.substr) {
			return t.status
		}
	}
	return current
}

// Counts tallies items per status, always emitting all four states so the
// response shape is stable even for an empty queue.
func Counts(items []models.ContentItem) map[string]int {
	counts := map[string]int{
		StatusDraft:     0,
		StatusReview:    0,
		StatusApproved:  0,
		StatusPublished: 0,
	}
	for _, item := range items {
		counts[item.Status]++
	}
	return counts
}
