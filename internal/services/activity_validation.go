package services

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/angemarius939/datarw-core/internal/models"
)

// DateLayout is the wire format for all authoring-time dates.
const DateLayout = "2006-01-02"

// activityRules declares the scalar requiredness and enum constraints of an
// activity. Cross-field rules (date ordering, milestone bounds, numeric
// parsing) are layered on top in ValidateActivity.
type activityRules struct {
	ProjectID   string `json:"project_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	AssignedTo  string `json:"assigned_to" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	RiskLevel   string `json:"risk_level" validate:"required,oneof=low medium high"`
}

var (
	activityValidate *govalidator.Validate
	activityTrans    ut.Translator
)

func init() {
	activityValidate = govalidator.New()
	// Report errors under the json field name so the keys double as
	// field-paths for the form.
	activityValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	activityTrans, _ = uni.GetTranslator("en")

	registerMessage("required", "{0} is required")
	registerMessage("oneof", "{0} must be one of: low, medium, high")
}

func registerMessage(tag, format string) {
	_ = activityValidate.RegisterTranslation(tag, activityTrans,
		func(ut ut.Translator) error {
			return ut.Add(tag, format, true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			t, err := ut.T(tag, fieldLabel(fe.Field()))
			if err != nil {
				return fe.Error()
			}
			return t
		},
	)
}

// fieldLabel turns a json field name into the label used in messages,
// e.g. "project_id" → "Project".
func fieldLabel(field string) string {
	labels := map[string]string{
		"project_id":  "Project",
		"name":        "Name",
		"description": "Description",
		"assigned_to": "Assigned to",
		"start_date":  "Start date",
		"end_date":    "End date",
		"risk_level":  "Risk level",
	}
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// ValidateActivity checks an activity form and returns a field-path keyed
// violation map; empty means valid. It is total: any well-typed activity
// yields a map, never a panic or an error value.
func ValidateActivity(a models.Activity) map[string]string {
	errs := map[string]string{}

	rules := activityRules{
		ProjectID:   strings.TrimSpace(a.ProjectID),
		Name:        strings.TrimSpace(a.Name),
		Description: strings.TrimSpace(a.Description),
		AssignedTo:  strings.TrimSpace(a.AssignedTo),
		StartDate:   strings.TrimSpace(a.StartDate),
		EndDate:     strings.TrimSpace(a.EndDate),
		RiskLevel:   string(a.RiskLevel),
	}
	if err := activityValidate.Struct(rules); err != nil {
		if ve, ok := err.(govalidator.ValidationErrors); ok {
			for _, fe := range ve {
				errs[fe.Field()] = fe.Translate(activityTrans)
			}
		}
	}

	start, startOK := parseFormDate(a.StartDate)
	end, endOK := parseFormDate(a.EndDate)
	if a.StartDate != "" && !startOK {
		errs["start_date"] = "Start date must be a valid date (yyyy-MM-dd)"
	}
	if a.EndDate != "" && !endOK {
		errs["end_date"] = "End date must be a valid date (yyyy-MM-dd)"
	}
	if startOK && endOK && !end.After(start) {
		errs["end_date"] = "End date must be after start date."
	}
	if a.PlannedStartDate != "" {
		if _, ok := parseFormDate(a.PlannedStartDate); !ok {
			errs["planned_start_date"] = "Planned start date must be a valid date (yyyy-MM-dd)"
		}
	}
	if a.PlannedEndDate != "" {
		if _, ok := parseFormDate(a.PlannedEndDate); !ok {
			errs["planned_end_date"] = "Planned end date must be a valid date (yyyy-MM-dd)"
		}
	}

	checkNumeric(errs, "budget_allocated", "Budget allocated", a.BudgetAllocated)
	checkNumeric(errs, "target_quantity", "Target quantity", a.TargetQuantity)
	checkNumeric(errs, "achieved_quantity", "Achieved quantity", a.AchievedQuantity)

	if msg := milestoneViolations(a.Milestones, start, startOK, end, endOK); msg != "" {
		errs["milestones"] = msg
	}
	return errs
}

// checkNumeric flags non-numeric or negative input. Absent values are fine;
// bad input is never coerced to zero.
func checkNumeric(errs map[string]string, key, label, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[key] = fmt.Sprintf("%s must be a number", label)
		return
	}
	if n < 0 {
		errs[key] = fmt.Sprintf("%s cannot be negative", label)
	}
}

// milestoneViolations collects all milestone problems into a single ", "
// joined message under the milestones key. Bounds are inclusive: a milestone
// dated exactly on the start or end date is fine.
func milestoneViolations(ms []models.Milestone, start time.Time, startOK bool, end time.Time, endOK bool) string {
	var parts []string
	for i, m := range ms {
		n := i + 1
		if strings.TrimSpace(m.Name) == "" {
			parts = append(parts, fmt.Sprintf("Milestone %d: name is required", n))
		}
		if strings.TrimSpace(m.PlannedDate) == "" {
			parts = append(parts, fmt.Sprintf("Milestone %d: planned date is required", n))
			continue
		}
		d, ok := parseFormDate(m.PlannedDate)
		if !ok {
			parts = append(parts, fmt.Sprintf("Milestone %d: planned date must be a valid date (yyyy-MM-dd)", n))
			continue
		}
		if startOK && d.Before(start) {
			parts = append(parts, fmt.Sprintf("Milestone %d: planned date is before the start date", n))
		}
		if endOK && d.After(end) {
			parts = append(parts, fmt.Sprintf("Milestone %d: planned date is after the end date", n))
		}
	}
	return strings.Join(parts, ", ")
}

func parseFormDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
