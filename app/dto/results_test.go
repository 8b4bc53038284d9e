package dto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"checkboard/app/repo"
	"checkboard/app/services"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{services.ErrDuplicateUsername, "A user with this username already exists"},
		{services.ErrInvalidCredentials, "Invalid username or password"},
		{services.ErrInsufficientPrivilege, "Only administrators can perform this action"},
		{services.ErrProtectedAccount, "Administrator accounts cannot be deleted"},
		{services.ErrUserNotFound, "User not found"},
		{services.ErrAssignmentNotFound, "Assignment not found"},
		{services.ErrProgressNotFound, "Progress not found"},
		{fmt.Errorf("%w: disk full", repo.ErrStorage), "Storage failure, changes were not applied"},
		{errors.New("boom"), "boom"},
	}
	for _, c := range cases {
		r := FromError(c.err)
		assert.False(t, r.Success)
		assert.Equal(t, c.message, r.Message)
	}
}

func TestOK(t *testing.T) {
	r := OK("done")
	assert.True(t, r.Success)
	assert.Equal(t, "done", r.Message)
}
