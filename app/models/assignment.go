package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ChecklistAssignment links a user to a checklist from the catalog, with
// scheduling metadata chosen by the assigning administrator.
type ChecklistAssignment struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ChecklistID string     `json:"checklistId"`
	AssignedBy  string     `json:"assignedBy"`
	AssignedAt  time.Time  `json:"assignedAt"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}
