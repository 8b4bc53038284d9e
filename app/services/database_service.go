package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"checkboard/app/kv"
	"checkboard/app/models"
	"checkboard/app/repo"
)

// DatabaseService owns the three mutable collections (users, progress,
// assignments) and enforces every domain rule on mutation. Nothing else
// writes to the underlying store.
type DatabaseService struct {
	users       *repo.UserRepository
	progress    *repo.ProgressRepository
	assignments *repo.AssignmentRepository
	clk         clock.Clock
	log         zerolog.Logger

	adminUsername string
	adminPassword string
}

type Options struct {
	// Prefix namespaces the storage keys. Defaults to the layout of the
	// original deployment.
	Prefix string
	Clock  clock.Clock
	Logger zerolog.Logger

	// Seed credentials for the canonical admin account.
	AdminUsername string
	AdminPassword string
}

func NewDatabaseService(store kv.Store, opts Options) *DatabaseService {
	if opts.Prefix == "" {
		opts.Prefix = repo.DefaultPrefix
	}
	if opts.Clock == nil {
		opts.Clock = clock.WallClock
	}
	if opts.AdminUsername == "" {
		opts.AdminUsername = "admin"
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin"
	}
	return &DatabaseService{
		users:         repo.NewUserRepository(store, opts.Prefix),
		progress:      repo.NewProgressRepository(store, opts.Prefix),
		assignments:   repo.NewAssignmentRepository(store, opts.Prefix),
		clk:           opts.Clock,
		log:           opts.Logger,
		adminUsername: opts.AdminUsername,
		adminPassword: opts.AdminPassword,
	}
}

// Initialize guarantees the canonical admin account. Missing, it is created
// under the fixed id; present, its role is forced back to admin and its
// lastLogin refreshed, so tampered state can never lock out administration.
// Safe to call any number of times.
func (s *DatabaseService) Initialize() error {
	now := s.clk.Now()
	existing, err := s.users.FindByID(models.AdminID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Role = models.RoleAdmin
		existing.LastLogin = now
		return s.users.Save(*existing)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		ID:           models.AdminID,
		Username:     s.adminUsername,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		LastLogin:    now,
	}
	if err := s.users.Save(admin); err != nil {
		return err
	}
	s.log.Info().Str("username", s.adminUsername).Msg("seeded admin account")
	return nil
}

// --- users ---

func (s *DatabaseService) ListUsers() ([]models.User, error) {
	return s.users.All()
}

func (s *DatabaseService) FindUserByUsername(username string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Authenticate validates credentials and, on success, persists a fresh
// lastLogin. Unknown usernames and wrong passwords fail identically.
func (s *DatabaseService) Authenticate(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	u.LastLogin = s.clk.Now()
	if err := s.users.Save(*u); err != nil {
		return nil, err
	}
	return u, nil
}

// RegisterUser creates an account. Role defaults to user; createdBy records
// the admin who created the account, empty for self-registration.
func (s *DatabaseService) RegisterUser(username, password, role, createdBy string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	if role == "" {
		role = models.RoleUser
	}
	existing, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := s.clk.Now()
	u := models.User{
		ID:           "user-" + uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		LastLogin:    now,
		CreatedBy:    createdBy,
	}
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a non-admin user and cascades deletion of every
// progress and assignment record referencing it. Only admins may delete, and
// admin accounts are never deletable.
func (s *DatabaseService) DeleteUser(userID, actingAdminID string) error {
	acting, err := s.users.FindByID(actingAdminID)
	if err != nil {
		return err
	}
	if acting == nil || !acting.IsAdmin() {
		return ErrInsufficientPrivilege
	}
	target, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.IsAdmin() {
		return ErrProtectedAccount
	}
	if _, err := s.users.Remove(userID); err != nil {
		return err
	}
	progressRemoved, err := s.progress.RemoveForUser(userID)
	if err != nil {
		return err
	}
	assignmentsRemoved, err := s.assignments.RemoveForUser(userID)
	if err != nil {
		return err
	}
	s.log.Info().
		Str("user_id", userID).
		Int("progress_removed", progressRemoved).
		Int("assignments_removed", assignmentsRemoved).
		Msg("deleted user")
	return nil
}

// --- progress ---

// SaveProgress upserts the completion state for one (user, checklist) pair.
func (s *DatabaseService) SaveProgress(userID, checklistID string, completedItems []string) (*models.ChecklistProgress, error) {
	if completedItems == nil {
		completedItems = []string{}
	}
	id := "progress-" + uuid.NewString()
	if existing, err := s.progress.Get(userID, checklistID); err != nil {
		return nil, err
	} else if existing != nil {
		id = existing.ID
	}
	p := models.ChecklistProgress{
		ID:             id,
		UserID:         userID,
		ChecklistID:    checklistID,
		CompletedItems: completedItems,
		LastUpdated:    s.clk.Now(),
	}
	if err := s.progress.Save(p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DatabaseService) GetProgress(userID, checklistID string) (*models.ChecklistProgress, error) {
	p, err := s.progress.Get(userID, checklistID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProgressNotFound
	}
	return p, nil
}

func (s *DatabaseService) GetAllProgress(userID string) ([]models.ChecklistProgress, error) {
	return s.progress.ForUser(userID)
}

// UserStats summarizes a user's tracked checklists.
type UserStats struct {
	TotalChecklists     int `json:"totalChecklists"`
	CompletedChecklists int `json:"completedChecklists"`
	CompletedItems      int `json:"completedItems"`
}

func (s *DatabaseService) GetUserStats(userID string) (*UserStats, error) {
	records, err := s.progress.ForUser(userID)
	if err != nil {
		return nil, err
	}
	stats := &UserStats{TotalChecklists: len(records)}
	for _, p := range records {
		if len(p.CompletedItems) > 0 {
			stats.CompletedChecklists++
		}
		stats.CompletedItems += len(p.CompletedItems)
	}
	return stats, nil
}

// --- assignments ---

// AssignChecklist creates an assignment for an existing user. Priority
// defaults to medium.
func (s *DatabaseService) AssignChecklist(userID, checklistID, assignedBy, priority string, dueDate *time.Time, notes string) (*models.ChecklistAssignment, error) {
	target, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, fmt.Errorf("invalid priority %q", priority)
	}
	a := models.ChecklistAssignment{
		ID:          "assign-" + uuid.NewString(),
		UserID:      userID,
		ChecklistID: checklistID,
		AssignedBy:  assignedBy,
		AssignedAt:  s.clk.Now(),
		Priority:    priority,
		DueDate:     dueDate,
		Notes:       notes,
	}
	if err := s.assignments.Save(a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *DatabaseService) RemoveAssignment(assignmentID string) error {
	existing, err := s.assignments.FindByID(assignmentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAssignmentNotFound
	}
	_, err = s.assignments.Remove(assignmentID)
	return err
}

func (s *DatabaseService) GetAssignmentsForUser(userID string) ([]models.ChecklistAssignment, error) {
	return s.assignments.ForUser(userID)
}

func (s *DatabaseService) ListAssignments() ([]models.ChecklistAssignment, error) {
	return s.assignments.All()
}
