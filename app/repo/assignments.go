package repo

import (
	"checkboard/app/kv"
	"checkboard/app/models"
)

type AssignmentRepository struct {
	c *Collection[models.ChecklistAssignment]
}

func NewAssignmentRepository(store kv.Store, prefix string) *AssignmentRepository {
	return &AssignmentRepository{c: NewCollection[models.ChecklistAssignment](store, prefix+"_assignments")}
}

func (r *AssignmentRepository) All() ([]models.ChecklistAssignment, error) { return r.c.Load() }

func (r *AssignmentRepository) FindByID(id string) (*models.ChecklistAssignment, error) {
	a, ok, err := r.c.Find(func(a models.ChecklistAssignment) bool { return a.ID == id })
	if err != nil || !ok {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) ForUser(userID string) ([]models.ChecklistAssignment, error) {
	return r.c.Filter(func(a models.ChecklistAssignment) bool { return a.UserID == userID })
}

func (r *AssignmentRepository) Save(a models.ChecklistAssignment) error {
	return r.c.Upsert(a, func(existing models.ChecklistAssignment) bool { return existing.ID == a.ID })
}

func (r *AssignmentRepository) Remove(id string) (bool, error) {
	n, err := r.c.RemoveWhere(func(a models.ChecklistAssignment) bool { return a.ID == id })
	return n > 0, err
}

func (r *AssignmentRepository) RemoveForUser(userID string) (int, error) {
	return r.c.RemoveWhere(func(a models.ChecklistAssignment) bool { return a.UserID == userID })
}

func (r *AssignmentRepository) ReplaceAll(items []models.ChecklistAssignment) error {
	return r.c.Replace(items)
}

func (r *AssignmentRepository) Clear() error { return r.c.Clear() }
