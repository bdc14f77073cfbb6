package api

import "github.com/angemarius939/datarw-core/internal/models"

// SurveyStore is the persistence collaborator view for survey authoring.
// SaveSurvey accepts a validated survey (question ids are client-assigned
// but may be reassigned by the server) and returns the server id.
type SurveyStore interface {
	SaveSurvey(s models.Survey) (id string, err error)
}

// ActivityStore is the persistence collaborator view for activities: it
// accepts a validated activity and returns the stored record with
// server-assigned id and timestamps, and lists stored records for the
// table, filtering and export paths.
type ActivityStore interface {
	SaveActivity(a models.Activity) (*models.ActivityRecord, error)
	ListActivities() ([]models.ActivityRecord, error)
}

// ReferenceDataSource is the collaborator that supplies selector data.
type ReferenceDataSource interface {
	ListProjects() ([]Ref, error)
	ListUsers() ([]Ref, error)
}

// Notifier is the toast sink for save outcomes and collaborator failures.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
