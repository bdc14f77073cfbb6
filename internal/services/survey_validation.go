package services

import (
	"fmt"
	"strings"

	"github.com/angemarius939/datarw-core/internal/models"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxQuestionLen    = 1000
	maxOptionLen      = 500
)

// ValidateSurvey checks a survey definition and returns a field-path keyed
// map of violations. An empty map means the survey is ready to submit. Only
// the active tag's fields are checked on each question; stale values left
// behind by a type switch are ignored.
func ValidateSurvey(s models.Survey) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(s.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(s.Title) > maxTitleLen {
		errs["title"] = fmt.Sprintf("Title must be %d characters or less", maxTitleLen)
	}
	if len(s.Description) > maxDescriptionLen {
		errs["description"] = fmt.Sprintf("Description must be %d characters or less", maxDescriptionLen)
	}
	if len(s.Questions) == 0 {
		errs["questions"] = "At least one question is required"
	}

	for i, q := range s.Questions {
		validateQuestion(errs, i, q)
	}
	return errs
}

func validateQuestion(errs map[string]string, i int, q models.Question) {
	if strings.TrimSpace(q.Question) == "" {
		errs[fmt.Sprintf("question_%d", i)] = "Question text is required"
	} else if len(q.Question) > maxQuestionLen {
		errs[fmt.Sprintf("question_%d", i)] = fmt.Sprintf("Question text must be %d characters or less", maxQuestionLen)
	}

	switch {
	case IsChoiceLike(q.Type):
		if len(q.Options) < 2 {
			errs[fmt.Sprintf("question_%d_options", i)] = "At least 2 options are required"
		}
		// Each option is checked on its own so the UI can flag several at once.
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				errs[fmt.Sprintf("question_%d_option_%d", i, j)] = "Option cannot be empty"
			} else if len(opt) > maxOptionLen {
				errs[fmt.Sprintf("question_%d_option_%d", i, j)] = fmt.Sprintf("Option must be %d characters or less", maxOptionLen)
			}
		}
	case IsScaleLike(q.Type):
		if q.ScaleMin >= q.ScaleMax {
			errs[fmt.Sprintf("question_%d_scale", i)] = "Scale minimum must be less than scale maximum"
		}
	case q.Type == models.QuestionMatrixGrid:
		if len(q.MatrixRows) < 2 {
			errs[fmt.Sprintf("question_%d_matrix_rows", i)] = "At least 2 rows are required"
		}
		if len(q.MatrixColumns) < 2 {
			errs[fmt.Sprintf("question_%d_matrix_columns", i)] = "At least 2 columns are required"
		}
	case q.Type == models.QuestionFileUpload:
		if len(q.FileTypesAllowed) == 0 {
			errs[fmt.Sprintf("question_%d_file_types", i)] = "At least one file type must be allowed"
		}
	}
}
