package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkboard/app/kv"
	"checkboard/app/models"
)

func TestUserRepository(t *testing.T) {
	r := NewUserRepository(kv.NewMemoryStore(), DefaultPrefix)

	require.NoError(t, r.Save(models.User{ID: "u1", Username: "alice"}))
	require.NoError(t, r.Save(models.User{ID: "u2", Username: "bob"}))

	u, err := r.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)

	// exact case only
	u, err = r.FindByUsername("Alice")
	require.NoError(t, err)
	assert.Nil(t, u)

	// save by id updates in place
	require.NoError(t, r.Save(models.User{ID: "u1", Username: "alice", Role: models.RoleAdmin}))
	all, err := r.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.RoleAdmin, all[0].Role)

	removed, err := r.Remove("u2")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = r.Remove("u2")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestProgressRepositoryPairKey(t *testing.T) {
	r := NewProgressRepository(kv.NewMemoryStore(), DefaultPrefix)

	require.NoError(t, r.Save(models.ChecklistProgress{ID: "p1", UserID: "u1", ChecklistID: "1", CompletedItems: []string{"1-1"}}))
	// different record id, same pair: must replace, not append
	require.NoError(t, r.Save(models.ChecklistProgress{ID: "p9", UserID: "u1", ChecklistID: "1", CompletedItems: []string{"1-2"}}))
	require.NoError(t, r.Save(models.ChecklistProgress{ID: "p2", UserID: "u1", ChecklistID: "2"}))

	all, err := r.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	p, err := r.Get("u1", "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"1-2"}, p.CompletedItems)

	mine, err := r.ForUser("u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	n, err := r.RemoveForUser("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAssignmentRepository(t *testing.T) {
	r := NewAssignmentRepository(kv.NewMemoryStore(), DefaultPrefix)

	require.NoError(t, r.Save(models.ChecklistAssignment{ID: "a1", UserID: "u1", ChecklistID: "1"}))
	require.NoError(t, r.Save(models.ChecklistAssignment{ID: "a2", UserID: "u2", ChecklistID: "1"}))

	a, err := r.FindByID("a1")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "u1", a.UserID)

	mine, err := r.ForUser("u2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a2", mine[0].ID)

	removed, err := r.Remove("a1")
	require.NoError(t, err)
	assert.True(t, removed)
	a, err = r.FindByID("a1")
	require.NoError(t, err)
	assert.Nil(t, a)
}
