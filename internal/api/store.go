package api

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angemarius939/datarw-core/internal/models"
)

// MemoryStore is an in-memory stand-in for the persistence API, used by
// tests and local tooling. It mimics the server contract: incoming entities
// get server-assigned ids and timestamps, and reads return copies so callers
// never observe shared state.
type MemoryStore struct {
	mu         sync.RWMutex
	surveys    map[string]models.Survey
	activities map[string]models.ActivityRecord
	order      []string
	now        func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		surveys:    map[string]models.Survey{},
		activities: map[string]models.ActivityRecord{},
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SaveSurvey stores a validated survey and returns its server id.
func (s *MemoryStore) SaveSurvey(sv models.Survey) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.surveys[id] = sv.Clone()
	return id, nil
}

// GetSurvey returns a stored survey copy, or false if unknown.
func (s *MemoryStore) GetSurvey(id string) (models.Survey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sv, ok := s.surveys[id]
	if !ok {
		return models.Survey{}, false
	}
	return sv.Clone(), true
}

// SaveActivity stores a validated activity form and returns the stored
// record with server-assigned identity and timestamps.
func (s *MemoryStore) SaveActivity(a models.Activity) (*models.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	rec := models.ActivityRecord{
		ID:           uuid.NewString(),
		ProjectID:    a.ProjectID,
		Name:         a.Name,
		Description:  a.Description,
		AssignedTo:   a.AssignedTo,
		AssignedTeam: a.AssignedTeam,
		Status:       models.StatusPlanned,
		RiskLevel:    a.RiskLevel,
		Deliverables: append([]string(nil), a.Deliverables...),
		Milestones:   append([]models.Milestone(nil), a.Milestones...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	rec.StartDate = parseDatePtr(a.StartDate)
	rec.EndDate = parseDatePtr(a.EndDate)
	rec.PlannedStartDate = parseDatePtr(a.PlannedStartDate)
	rec.PlannedEndDate = parseDatePtr(a.PlannedEndDate)
	rec.BudgetAllocated = parseFloatPtr(a.BudgetAllocated)
	rec.TargetQuantity = parseFloatPtr(a.TargetQuantity)
	rec.AchievedQuantity = parseFloatPtr(a.AchievedQuantity)
	rec.PlannedOutput = a.PlannedOutput

	s.activities[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	out := cloneRecord(rec)
	return &out, nil
}

// ListActivities returns stored records in insertion order.
func (s *MemoryStore) ListActivities() ([]models.ActivityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneRecord(s.activities[id]))
	}
	return out, nil
}

func cloneRecord(rec models.ActivityRecord) models.ActivityRecord {
	out := rec
	out.Deliverables = append([]string(nil), rec.Deliverables...)
	out.Milestones = append([]models.Milestone(nil), rec.Milestones...)
	out.Tags = append([]string(nil), rec.Tags...)
	return out
}

func parseDatePtr(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
