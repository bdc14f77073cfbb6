package models

import "time"

// QuestionType discriminates the shape of a question. Exactly one tag per
// question; the tag decides which structural fields are active.
type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionMultiChoice  QuestionType = "multi_choice"
	QuestionShortText    QuestionType = "short_text"
	QuestionLongText     QuestionType = "long_text"
	QuestionRatingScale  QuestionType = "rating_scale"
	QuestionLikertScale  QuestionType = "likert_scale"
	QuestionRanking      QuestionType = "ranking"
	QuestionDropdown     QuestionType = "dropdown"
	QuestionMatrixGrid   QuestionType = "matrix_grid"
	QuestionFileUpload   QuestionType = "file_upload"
	QuestionDate         QuestionType = "date"
	QuestionDatetime     QuestionType = "datetime"
	QuestionSlider       QuestionType = "slider"
	QuestionNumericScale QuestionType = "numeric_scale"
	QuestionImageChoice  QuestionType = "image_choice"
	QuestionYesNo        QuestionType = "yes_no"
	QuestionSignature    QuestionType = "signature"
)

// QuestionTypes lists every known tag in catalog order.
var QuestionTypes = []QuestionType{
	QuestionSingleChoice,
	QuestionMultiChoice,
	QuestionShortText,
	QuestionLongText,
	QuestionRatingScale,
	QuestionLikertScale,
	QuestionRanking,
	QuestionDropdown,
	QuestionMatrixGrid,
	QuestionFileUpload,
	QuestionDate,
	QuestionDatetime,
	QuestionSlider,
	QuestionNumericScale,
	QuestionImageChoice,
	QuestionYesNo,
	QuestionSignature,
}

// Question holds every shape field regardless of the active tag. Fields that
// belong to an inactive tag keep their last-entered values so that switching
// the type back and forth does not lose input; only the active tag's fields
// are ever validated or exported.
type Question struct {
	ID               string       `json:"id"`
	Type             QuestionType `json:"type"`
	Question         string       `json:"question"`
	Required         bool         `json:"required"`
	Options          []string     `json:"options,omitempty"`
	ScaleMin         int          `json:"scale_min,omitempty"`
	ScaleMax         int          `json:"scale_max,omitempty"`
	ScaleLabels      []string     `json:"scale_labels,omitempty"`
	MatrixRows       []string     `json:"matrix_rows,omitempty"`
	MatrixColumns    []string     `json:"matrix_columns,omitempty"`
	FileTypesAllowed []string     `json:"file_types_allowed,omitempty"`
	MaxFileSizeMB    int          `json:"max_file_size_mb,omitempty"`
	DateFormat       string       `json:"date_format,omitempty"`
	SliderStep       int          `json:"slider_step,omitempty"`
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	out.ScaleLabels = append([]string(nil), q.ScaleLabels...)
	out.MatrixRows = append([]string(nil), q.MatrixRows...)
	out.MatrixColumns = append([]string(nil), q.MatrixColumns...)
	out.FileTypesAllowed = append([]string(nil), q.FileTypesAllowed...)
	return out
}

// Survey is the authoring-time survey definition. Question order is
// significant and user-controlled.
type Survey struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Clone returns a deep copy of the survey.
func (s Survey) Clone() Survey {
	out := s
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = q.Clone()
	}
	return out
}

// RiskLevel classifies an activity's delivery risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ActivityStatus is the lifecycle state of a stored activity.
type ActivityStatus string

const (
	StatusPlanned    ActivityStatus = "planned"
	StatusInProgress ActivityStatus = "in_progress"
	StatusCompleted  ActivityStatus = "completed"
	StatusDelayed    ActivityStatus = "delayed"
	StatusCancelled  ActivityStatus = "cancelled"
)

// Milestone is a named checkpoint inside an activity's date range.
type Milestone struct {
	Name        string `json:"name"`
	PlannedDate string `json:"planned_date"` // yyyy-MM-dd
}

// Activity is the authoring-time activity form model. Dates and numeric
// fields are kept as the raw strings the form produced; parsing happens in
// validation so that bad input surfaces as a field error instead of a silent
// zero.
type Activity struct {
	ProjectID        string      `json:"project_id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	AssignedTo       string      `json:"assigned_to"`
	AssignedTeam     string      `json:"assigned_team,omitempty"`
	StartDate        string      `json:"start_date"` // yyyy-MM-dd
	EndDate          string      `json:"end_date"`   // yyyy-MM-dd
	PlannedStartDate string      `json:"planned_start_date,omitempty"`
	PlannedEndDate   string      `json:"planned_end_date,omitempty"`
	BudgetAllocated  string      `json:"budget_allocated,omitempty"`
	PlannedOutput    string      `json:"planned_output,omitempty"`
	TargetQuantity   string      `json:"target_quantity,omitempty"`
	AchievedQuantity string      `json:"achieved_quantity,omitempty"`
	RiskLevel        RiskLevel   `json:"risk_level"`
	Deliverables     []string    `json:"deliverables"`
	Milestones       []Milestone `json:"milestones"`
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	out.Deliverables = append([]string(nil), a.Deliverables...)
	out.Milestones = append([]Milestone(nil), a.Milestones...)
	return out
}

// ActivityRecord is a stored activity as returned by the persistence API,
// with server-assigned identity and timestamps. This is the shape the
// projection and filtering layers consume.
type ActivityRecord struct {
	ID                 string         `json:"id"`
	ProjectID          string         `json:"project_id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	AssignedTo         string         `json:"assigned_to"`
	AssignedTeam       string         `json:"assigned_team,omitempty"`
	Status             ActivityStatus `json:"status"`
	RiskLevel          RiskLevel      `json:"risk_level"`
	StartDate          *time.Time     `json:"start_date,omitempty"`
	EndDate            *time.Time     `json:"end_date,omitempty"`
	PlannedStartDate   *time.Time     `json:"planned_start_date,omitempty"`
	PlannedEndDate     *time.Time     `json:"planned_end_date,omitempty"`
	ProgressPercentage *float64       `json:"progress_percentage,omitempty"`
	BudgetAllocated    *float64       `json:"budget_allocated,omitempty"`
	BudgetSpent        *float64       `json:"budget_spent,omitempty"`
	Currency           string         `json:"currency,omitempty"`
	PlannedOutput      string         `json:"planned_output,omitempty"`
	TargetQuantity     *float64       `json:"target_quantity,omitempty"`
	AchievedQuantity   *float64       `json:"achieved_quantity,omitempty"`
	Unit               string         `json:"unit,omitempty"`
	Deliverables       []string       `json:"deliverables,omitempty"`
	Milestones         []Milestone    `json:"milestones,omitempty"`
	Tags               []string       `json:"tags,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
