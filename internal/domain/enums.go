package domain

import "fmt"

// Priority is the urgency level assigned to a study block.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"High": true, "Medium": true, "Low": true,
}

// ParsePriority converts a stored priority string into a Priority,
// rejecting anything outside the canonical set.
func ParsePriority(s string) (Priority, error) {
	if !ValidPriorities[s] {
		return "", fmt.Errorf("invalid priority %q (expected High, Medium or Low)", s)
	}
	return Priority(s), nil
}
