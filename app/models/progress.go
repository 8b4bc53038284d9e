package models

import "time"

// ChecklistProgress tracks which items of a checklist a user has completed.
// One record exists per (UserID, ChecklistID) pair.
type ChecklistProgress struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	ChecklistID    string    `json:"checklistId"`
	CompletedItems []string  `json:"completedItems"`
	LastUpdated    time.Time `json:"lastUpdated"`
}
