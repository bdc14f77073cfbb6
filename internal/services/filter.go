package services

import (
	"strings"
	"time"

	"github.com/angemarius939/datarw-core/internal/models"
)

// ActivityFilter combines row filters with logical AND. Zero values mean
// "no filter" for every field.
type ActivityFilter struct {
	ProjectID string
	Status    models.ActivityStatus
	RiskLevel models.RiskLevel
	Team      string

	// Search matches a case-insensitive substring of name+description.
	Search string

	// Inclusive budget bounds against budget_allocated; a nil bound is
	// unbounded.
	BudgetMin *float64
	BudgetMax *float64

	// DateFrom keeps records whose start_date is on or after it; DateTo
	// keeps records whose end_date is on or before it.
	DateFrom *time.Time
	DateTo   *time.Time
}

// FilterActivities returns the records matching every set filter, in input
// order.
func FilterActivities(records []models.ActivityRecord, f ActivityFilter) []models.ActivityRecord {
	out := make([]models.ActivityRecord, 0, len(records))
	for _, rec := range records {
		if matchesActivity(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesActivity(rec models.ActivityRecord, f ActivityFilter) bool {
	if f.ProjectID != "" && rec.ProjectID != f.ProjectID {
		return false
	}
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	if f.RiskLevel != "" && rec.RiskLevel != f.RiskLevel {
		return false
	}
	if f.Team != "" && rec.AssignedTeam != f.Team {
		return false
	}
	if f.Search != "" {
		haystack := strings.ToLower(rec.Name + " " + rec.Description)
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	if f.BudgetMin != nil && (rec.BudgetAllocated == nil || *rec.BudgetAllocated < *f.BudgetMin) {
		return false
	}
	if f.BudgetMax != nil && (rec.BudgetAllocated == nil || *rec.BudgetAllocated > *f.BudgetMax) {
		return false
	}
	if f.DateFrom != nil && (rec.StartDate == nil || rec.StartDate.Before(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && (rec.EndDate == nil || rec.EndDate.After(*f.DateTo)) {
		return false
	}
	return true
}
