package dto

import "time"

type AssignRequest struct {
	UserID      string     `json:"userId"`
	ChecklistID string     `json:"checklistId"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type SaveProgressRequest struct {
	ChecklistID    string   `json:"checklistId"`
	CompletedItems []string `json:"completedItems"`
}
