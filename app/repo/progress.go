package repo

import (
	"checkboard/app/kv"
	"checkboard/app/models"
)

type ProgressRepository struct {
	c *Collection[models.ChecklistProgress]
}

func NewProgressRepository(store kv.Store, prefix string) *ProgressRepository {
	return &ProgressRepository{c: NewCollection[models.ChecklistProgress](store, prefix+"_progress")}
}

func (r *ProgressRepository) All() ([]models.ChecklistProgress, error) { return r.c.Load() }

func (r *ProgressRepository) Get(userID, checklistID string) (*models.ChecklistProgress, error) {
	p, ok, err := r.c.Find(func(p models.ChecklistProgress) bool {
		return p.UserID == userID && p.ChecklistID == checklistID
	})
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) ForUser(userID string) ([]models.ChecklistProgress, error) {
	return r.c.Filter(func(p models.ChecklistProgress) bool { return p.UserID == userID })
}

// Save upserts by the (userID, checklistID) pair, never by record id.
func (r *ProgressRepository) Save(p models.ChecklistProgress) error {
	return r.c.Upsert(p, func(existing models.ChecklistProgress) bool {
		return existing.UserID == p.UserID && existing.ChecklistID == p.ChecklistID
	})
}

func (r *ProgressRepository) RemoveForUser(userID string) (int, error) {
	return r.c.RemoveWhere(func(p models.ChecklistProgress) bool { return p.UserID == userID })
}

func (r *ProgressRepository) ReplaceAll(items []models.ChecklistProgress) error {
	return r.c.Replace(items)
}

func (r *ProgressRepository) Clear() error { return r.c.Clear() }
