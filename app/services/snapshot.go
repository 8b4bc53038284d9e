package services

import "checkboard/app/models"

// Snapshot is a full copy of the three collections, used by export and
// import. Import replaces everything; there is no merge.
type Snapshot struct {
	Users       []models.User                `json:"users"`
	Progress    []models.ChecklistProgress   `json:"progress"`
	Assignments []models.ChecklistAssignment `json:"assignments"`
}

func (s *DatabaseService) Export() (*Snapshot, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, err
	}
	progress, err := s.progress.All()
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.All()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	if progress == nil {
		progress = []models.ChecklistProgress{}
	}
	if assignments == nil {
		assignments = []models.ChecklistAssignment{}
	}
	return &Snapshot{Users: users, Progress: progress, Assignments: assignments}, nil
}

// Import replaces all three collections with the snapshot's contents. Each
// collection is written as a whole; a storage failure mid-way leaves the
// remaining collections untouched.
func (s *DatabaseService) Import(snap Snapshot) error {
	if err := s.users.ReplaceAll(snap.Users); err != nil {
		return err
	}
	if err := s.progress.ReplaceAll(snap.Progress); err != nil {
		return err
	}
	if err := s.assignments.ReplaceAll(snap.Assignments); err != nil {
		return err
	}
	s.log.Info().
		Int("users", len(snap.Users)).
		Int("progress", len(snap.Progress)).
		Int("assignments", len(snap.Assignments)).
		Msg("imported snapshot")
	return nil
}

// Reset clears every collection and re-seeds the canonical admin.
func (s *DatabaseService) Reset() error {
	if err := s.users.Clear(); err != nil {
		return err
	}
	if err := s.progress.Clear(); err != nil {
		return err
	}
	if err := s.assignments.Clear(); err != nil {
		return err
	}
	return s.Initialize()
}
