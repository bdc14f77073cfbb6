package services

import (
	"fmt"

	"github.com/angemarius939/datarw-core/internal/models"
)

// Default likert agreement labels seeded for new likert questions.
var likertAgreementLabels = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

// DateFormatsFor returns the allowed date_format values for a date-like tag,
// in Go reference-time layout form. The first entry is the seeded default.
func DateFormatsFor(tag models.QuestionType) []string {
	switch tag {
	case models.QuestionDate:
		return []string{"2006-01-02", "02/01/2006", "01/02/2006"}
	case models.QuestionDatetime:
		return []string{"2006-01-02 15:04", "02/01/2006 15:04"}
	default:
		return nil
	}
}

// IsChoiceLike reports whether the tag carries an options list.
func IsChoiceLike(tag models.QuestionType) bool {
	switch tag {
	case models.QuestionSingleChoice, models.QuestionMultiChoice, models.QuestionDropdown,
		models.QuestionRanking, models.QuestionImageChoice:
		return true
	}
	return false
}

// IsScaleLike reports whether the tag carries scale bounds.
func IsScaleLike(tag models.QuestionType) bool {
	switch tag {
	case models.QuestionRatingScale, models.QuestionLikertScale, models.QuestionSlider,
		models.QuestionNumericScale:
		return true
	}
	return false
}

// IsDateLike reports whether the tag carries a date_format.
func IsDateLike(tag models.QuestionType) bool {
	return tag == models.QuestionDate || tag == models.QuestionDatetime
}

// KnownVariant reports whether the tag is in the catalog.
func KnownVariant(tag models.QuestionType) bool {
	for _, t := range models.QuestionTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// TemplateFor returns a question shell seeded with the tag's structural
// defaults. The id is left empty; the builder assigns it. An unknown tag is
// a caller bug and fails with an unknown_variant error.
func TemplateFor(tag models.QuestionType) (models.Question, error) {
	if !KnownVariant(tag) {
		return models.Question{}, NewUnknownVariantError(fmt.Sprintf("unknown question type %q", tag))
	}
	q := models.Question{Type: tag}
	if IsChoiceLike(tag) {
		q.Options = []string{"", ""}
	}
	switch tag {
	case models.QuestionRatingScale:
		q.ScaleMin, q.ScaleMax = 1, 5
	case models.QuestionLikertScale:
		q.ScaleMin, q.ScaleMax = 1, 5
		q.ScaleLabels = append([]string(nil), likertAgreementLabels...)
	case models.QuestionNumericScale:
		q.ScaleMin, q.ScaleMax = 0, 10
	case models.QuestionSlider:
		q.ScaleMin, q.ScaleMax = 0, 100
		q.SliderStep = 1
	case models.QuestionMatrixGrid:
		q.MatrixRows = []string{"Row 1", "Row 2"}
		q.MatrixColumns = []string{"Column 1", "Column 2"}
	case models.QuestionFileUpload:
		q.FileTypesAllowed = []string{"pdf", "doc", "docx", "jpg", "png"}
		q.MaxFileSizeMB = 10
	}
	if IsDateLike(tag) {
		q.DateFormat = DateFormatsFor(tag)[0]
	}
	return q, nil
}
