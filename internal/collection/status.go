package collection

import (
	"fmt"
	"strings"
)

// Status is the build state of a physical set.
type Status string

const (
	StatusUnopened          Status = "unopened"
	StatusInProgress        Status = "in_progress"
	StatusRebuildInProgress Status = "rebuild_in_progress"
	StatusAssembled         Status = "assembled"
	StatusDisassembled      Status = "disassembled"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []Status{
	StatusUnopened,
	StatusInProgress,
	StatusRebuildInProgress,
	StatusAssembled,
	StatusDisassembled,
}

// ParseStatus accepts the stored identifier, case-insensitively. Dashes are
// treated as underscores so "in-progress" works on the command line.
func ParseStatus(s string) (Status, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, st := range AllStatuses {
		if string(st) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Label returns the display name for a status.
func (s Status) Label() string {
	switch s {
	case StatusUnopened:
		return "Unopened"
	case StatusInProgress:
		return "Building"
	case StatusRebuildInProgress:
		return "Rebuilding"
	case StatusAssembled:
		return "Assembled"
	case StatusDisassembled:
		return "Disassembled"
	default:
		return "Unknown"
	}
}
