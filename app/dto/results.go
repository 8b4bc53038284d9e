package dto

import (
	"errors"

	"checkboard/app/models"
	"checkboard/app/repo"
	"checkboard/app/services"
)

// Result is the boundary contract with presentation code: every mutation
// reports success plus a human-readable message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(message string) Result { return Result{Success: true, Message: message} }

// FromError converts a domain or storage error into a failed Result.
func FromError(err error) Result {
	switch {
	case errors.Is(err, services.ErrDuplicateUsername):
		return Result{Message: "A user with this username already exists"}
	case errors.Is(err, services.ErrInvalidCredentials):
		return Result{Message: "Invalid username or password"}
	case errors.Is(err, services.ErrInsufficientPrivilege):
		return Result{Message: "Only administrators can perform this action"}
	case errors.Is(err, services.ErrProtectedAccount):
		return Result{Message: "Administrator accounts cannot be deleted"}
	case errors.Is(err, services.ErrUserNotFound):
		return Result{Message: "User not found"}
	case errors.Is(err, services.ErrAssignmentNotFound):
		return Result{Message: "Assignment not found"}
	case errors.Is(err, services.ErrProgressNotFound):
		return Result{Message: "Progress not found"}
	case errors.Is(err, repo.ErrStorage):
		return Result{Message: "Storage failure, changes were not applied"}
	default:
		return Result{Message: err.Error()}
	}
}

type UserResult struct {
	Result
	User *models.User `json:"user,omitempty"`
}

type ProgressResult struct {
	Result
	Progress *models.ChecklistProgress `json:"progress,omitempty"`
}

type AssignmentResult struct {
	Result
	Assignment *models.ChecklistAssignment `json:"assignment,omitempty"`
}
