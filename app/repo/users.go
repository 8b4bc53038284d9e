package repo

import (
	"checkboard/app/kv"
	"checkboard/app/models"
)

// DefaultPrefix matches the storage key layout of the original deployment.
const DefaultPrefix = "business_checklists"

type UserRepository struct {
	c *Collection[models.User]
}

func NewUserRepository(store kv.Store, prefix string) *UserRepository {
	return &UserRepository{c: NewCollection[models.User](store, prefix+"_users")}
}

func (r *UserRepository) All() ([]models.User, error) { return r.c.Load() }

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	u, ok, err := r.c.Find(func(u models.User) bool { return u.ID == id })
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// FindByUsername matches case-sensitively on the exact username.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	u, ok, err := r.c.Find(func(u models.User) bool { return u.Username == username })
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// Save upserts by user id.
func (r *UserRepository) Save(u models.User) error {
	return r.c.Upsert(u, func(existing models.User) bool { return existing.ID == u.ID })
}

func (r *UserRepository) Remove(id string) (bool, error) {
	n, err := r.c.RemoveWhere(func(u models.User) bool { return u.ID == id })
	return n > 0, err
}

func (r *UserRepository) ReplaceAll(users []models.User) error { return r.c.Replace(users) }

func (r *UserRepository) Clear() error { return r.c.Clear() }
