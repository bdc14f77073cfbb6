package integration_test

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/angemarius939/datarw-core/internal/api"
	"github.com/angemarius939/datarw-core/internal/models"
	"github.com/angemarius939/datarw-core/internal/services"
)

// Walks the full authoring journey in-process: build a survey, validate it,
// build an activity, submit it to the (in-memory) persistence collaborator,
// then filter, project and export the stored records using a persisted
// column selection.
func TestAuthoringJourney(t *testing.T) {
	// Survey authoring.
	survey := models.Survey{Title: "Water Access Baseline"}
	survey, err := services.AddQuestion(survey, models.QuestionSingleChoice)
	if err != nil {
		t.Fatal(err)
	}
	survey, err = services.AddQuestion(survey, models.QuestionLikertScale)
	if err != nil {
		t.Fatal(err)
	}

	qid := survey.Questions[0].ID
	text := "Do you have access to clean water?"
	opts := []string{"Yes", "No"}
	survey, err = services.UpdateQuestion(survey, qid, services.QuestionPatch{Question: &text, Options: &opts})
	if err != nil {
		t.Fatal(err)
	}
	likertText := "The water point is close to my home"
	survey, err = services.UpdateQuestion(survey, survey.Questions[1].ID, services.QuestionPatch{Question: &likertText})
	if err != nil {
		t.Fatal(err)
	}

	if violations := services.ValidateSurvey(survey); len(violations) != 0 {
		t.Fatalf("survey not valid: %v", violations)
	}

	store := api.NewMemoryStore()
	surveyID, err := store.SaveSurvey(survey)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.GetSurvey(surveyID); !ok {
		t.Fatal("saved survey not retrievable")
	}

	// Activity authoring.
	activity := models.Activity{
		ProjectID:       "p1",
		Name:            "Borehole drilling",
		Description:     "Drill and commission 12 boreholes",
		AssignedTo:      "u1",
		StartDate:       "2024-01-10",
		EndDate:         "2024-06-30",
		BudgetAllocated: "1500000",
		RiskLevel:       models.RiskMedium,
	}
	activity = services.AddMilestone(activity, models.Milestone{Name: "Site selection", PlannedDate: "2024-01-20"})
	activity = services.AddDeliverable(activity, "Commissioning report")

	if violations := services.ValidateActivity(activity); len(violations) != 0 {
		t.Fatalf("activity not valid: %v", violations)
	}
	if _, err := store.SaveActivity(activity); err != nil {
		t.Fatal(err)
	}

	// Column selection persisted across sessions.
	prefsPath := filepath.Join(t.TempDir(), "prefs.json")
	columns := services.NewColumnService(api.NewFilePreferenceStore(prefsPath), zerolog.Nop())
	if err := columns.Toggle("tags"); err != nil {
		t.Fatal(err)
	}
	reloaded := services.NewColumnService(api.NewFilePreferenceStore(prefsPath), zerolog.Nop())
	if reloaded.IsVisible("tags") {
		t.Error("column toggle did not survive a reload")
	}

	// Projection and export with reference-data names.
	refdata := api.NewReferenceData()
	refdata.SetProjects([]api.Ref{{ID: "p1", Name: "Water Access"}})
	refdata.SetUsers([]api.Ref{{ID: "u1", Name: "Grace"}})

	projector := services.NewProjector("en", refdata.Lookup())
	exporter := services.NewExportService(store, projector)
	res, err := exporter.ExportActivities(services.ExportParams{
		Columns: reloaded.VisibleColumns(),
		Filter:  services.ActivityFilter{Search: "borehole"},
	})
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(string(res.Data))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("exported %d rows, want header + 1", len(records)-1)
	}
	header, row := records[0], records[1]
	cell := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("column %q missing from header %v", name, header)
		return ""
	}
	if cell("Project") != "Water Access" {
		t.Errorf("project cell = %q", cell("Project"))
	}
	if cell("Assigned To") != "Grace" {
		t.Errorf("assigned cell = %q", cell("Assigned To"))
	}
	if cell("Budget Allocated") != "1,500,000" {
		t.Errorf("budget cell = %q", cell("Budget Allocated"))
	}
	if cell("Milestones") != "Site selection (2024-01-20)" {
		t.Errorf("milestones cell = %q", cell("Milestones"))
	}
	for _, h := range header {
		if h == "Tags" {
			t.Error("hidden column still exported")
		}
	}
}
