package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/angemarius939/datarw-core/internal/models"
)

// MoveDirection selects which way MoveQuestion shifts a question.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// QuestionPatch carries a partial update for UpdateQuestion. Nil fields are
// left untouched on the target question.
type QuestionPatch struct {
	Question         *string
	Required         *bool
	Options          *[]string
	ScaleMin         *int
	ScaleMax         *int
	ScaleLabels      *[]string
	MatrixRows       *[]string
	MatrixColumns    *[]string
	FileTypesAllowed *[]string
	MaxFileSizeMB    *int
	DateFormat       *string
	SliderStep       *int
}

// All survey mutations are copy-on-write: the input survey is never touched
// and the returned survey shares no slices with it. On error the returned
// survey is a plain clone of the input.

// AddQuestion appends a new question built from the tag's template with a
// fresh id.
func AddQuestion(s models.Survey, tag models.QuestionType) (models.Survey, error) {
	out := s.Clone()
	q, err := TemplateFor(tag)
	if err != nil {
		return out, err
	}
	q.ID = uuid.NewString()
	out.Questions = append(out.Questions, q)
	return out, nil
}

// UpdateQuestion merges patch into the question with the given id. A stale
// id is reported as not_found instead of silently succeeding.
func UpdateQuestion(s models.Survey, id string, patch QuestionPatch) (models.Survey, error) {
	out := s.Clone()
	i, err := questionIndex(out, id)
	if err != nil {
		return out, err
	}
	q := &out.Questions[i]
	if patch.Question != nil {
		q.Question = *patch.Question
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	if patch.Options != nil {
		q.Options = append([]string(nil), *patch.Options...)
	}
	if patch.ScaleMin != nil {
		q.ScaleMin = *patch.ScaleMin
	}
	if patch.ScaleMax != nil {
		q.ScaleMax = *patch.ScaleMax
	}
	if patch.ScaleLabels != nil {
		q.ScaleLabels = append([]string(nil), *patch.ScaleLabels...)
	}
	if patch.MatrixRows != nil {
		q.MatrixRows = append([]string(nil), *patch.MatrixRows...)
	}
	if patch.MatrixColumns != nil {
		q.MatrixColumns = append([]string(nil), *patch.MatrixColumns...)
	}
	if patch.FileTypesAllowed != nil {
		q.FileTypesAllowed = append([]string(nil), *patch.FileTypesAllowed...)
	}
	if patch.MaxFileSizeMB != nil {
		q.MaxFileSizeMB = *patch.MaxFileSizeMB
	}
	if patch.DateFormat != nil {
		q.DateFormat = *patch.DateFormat
	}
	if patch.SliderStep != nil {
		q.SliderStep = *patch.SliderStep
	}
	return out, nil
}

// ChangeQuestionType switches a question's tag. Fields belonging to the old
// tag are retained as-is; fields the new tag activates are seeded from the
// template only where still empty, so earlier input survives a round trip.
func ChangeQuestionType(s models.Survey, id string, tag models.QuestionType) (models.Survey, error) {
	out := s.Clone()
	i, err := questionIndex(out, id)
	if err != nil {
		return out, err
	}
	tpl, err := TemplateFor(tag)
	if err != nil {
		return s.Clone(), err
	}
	q := &out.Questions[i]
	q.Type = tag
	if len(q.Options) == 0 {
		q.Options = tpl.Options
	}
	if q.ScaleMin == 0 && q.ScaleMax == 0 {
		q.ScaleMin, q.ScaleMax = tpl.ScaleMin, tpl.ScaleMax
	}
	if len(q.ScaleLabels) == 0 {
		q.ScaleLabels = tpl.ScaleLabels
	}
	if len(q.MatrixRows) == 0 {
		q.MatrixRows = tpl.MatrixRows
	}
	if len(q.MatrixColumns) == 0 {
		q.MatrixColumns = tpl.MatrixColumns
	}
	if len(q.FileTypesAllowed) == 0 {
		q.FileTypesAllowed = tpl.FileTypesAllowed
	}
	if q.MaxFileSizeMB == 0 {
		q.MaxFileSizeMB = tpl.MaxFileSizeMB
	}
	if IsDateLike(tag) {
		if !containsString(DateFormatsFor(tag), q.DateFormat) {
			q.DateFormat = tpl.DateFormat
		}
	}
	if q.SliderStep == 0 {
		q.SliderStep = tpl.SliderStep
	}
	return out, nil
}

// RemoveQuestion deletes the question with the given id.
func RemoveQuestion(s models.Survey, id string) (models.Survey, error) {
	out := s.Clone()
	i, err := questionIndex(out, id)
	if err != nil {
		return out, err
	}
	out.Questions = append(out.Questions[:i], out.Questions[i+1:]...)
	return out, nil
}

// MoveQuestion swaps the question one position up or down. Moving the first
// question up or the last one down is a no-op, not an error.
func MoveQuestion(s models.Survey, id string, dir MoveDirection) (models.Survey, error) {
	out := s.Clone()
	i, err := questionIndex(out, id)
	if err != nil {
		return out, err
	}
	j := i
	switch dir {
	case MoveUp:
		j = i - 1
	case MoveDown:
		j = i + 1
	default:
		return out, NewInvalidError(fmt.Sprintf("unknown move direction %q", dir))
	}
	if j < 0 || j >= len(out.Questions) {
		return out, nil
	}
	out.Questions[i], out.Questions[j] = out.Questions[j], out.Questions[i]
	return out, nil
}

// AddOption appends an empty option to a choice-like question.
func AddOption(s models.Survey, id string) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		q.Options = append(q.Options, "")
		return nil
	})
}

// UpdateOption sets the option at index to value.
func UpdateOption(s models.Survey, id string, index int, value string) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		if index < 0 || index >= len(q.Options) {
			return NewOutOfRangeError(fmt.Sprintf("option index %d out of range [0,%d)", index, len(q.Options)))
		}
		q.Options[index] = value
		return nil
	})
}

// RemoveOption deletes the option at index.
func RemoveOption(s models.Survey, id string, index int) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		if index < 0 || index >= len(q.Options) {
			return NewOutOfRangeError(fmt.Sprintf("option index %d out of range [0,%d)", index, len(q.Options)))
		}
		q.Options = append(q.Options[:index], q.Options[index+1:]...)
		return nil
	})
}

// AddMatrixRow appends an empty row label to a matrix question.
func AddMatrixRow(s models.Survey, id string) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		q.MatrixRows = append(q.MatrixRows, "")
		return nil
	})
}

// UpdateMatrixRow sets the row label at index.
func UpdateMatrixRow(s models.Survey, id string, index int, value string) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		if index < 0 || index >= len(q.MatrixRows) {
			return NewOutOfRangeError(fmt.Sprintf("matrix row index %d out of range [0,%d)", index, len(q.MatrixRows)))
		}
		q.MatrixRows[index] = value
		return nil
	})
}

// RemoveMatrixRow deletes the row label at index.
func RemoveMatrixRow(s models.Survey, id string, index int) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		if index < 0 || index >= len(q.MatrixRows) {
			return NewOutOfRangeError(fmt.Sprintf("matrix row index %d out of range [0,%d)", index, len(q.MatrixRows)))
		}
		q.MatrixRows = append(q.MatrixRows[:index], q.MatrixRows[index+1:]...)
		return nil
	})
}

// AddMatrixColumn appends an empty column label to a matrix question.
func AddMatrixColumn(s models.Survey, id string) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		q.MatrixColumns = append(q.MatrixColumns, "")
		return nil
	})
}

// UpdateMatrixColumn sets the column label at index.
func UpdateMatrixColumn(s models.Survey, id string, index int, value string) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		if index < 0 || index >= len(q.MatrixColumns) {
			return NewOutOfRangeError(fmt.Sprintf("matrix column index %d out of range [0,%d)", index, len(q.MatrixColumns)))
		}
		q.MatrixColumns[index] = value
		return nil
	})
}

// RemoveMatrixColumn deletes the column label at index.
func RemoveMatrixColumn(s models.Survey, id string, index int) (models.Survey, error) {
	return withQuestion(s, id, func(q *models.Question) error {
		if index < 0 || index >= len(q.MatrixColumns) {
			return NewOutOfRangeError(fmt.Sprintf("matrix column index %d out of range [0,%d)", index, len(q.MatrixColumns)))
		}
		q.MatrixColumns = append(q.MatrixColumns[:index], q.MatrixColumns[index+1:]...)
		return nil
	})
}

func withQuestion(s models.Survey, id string, fn func(*models.Question) error) (models.Survey, error) {
	out := s.Clone()
	i, err := questionIndex(out, id)
	if err != nil {
		return out, err
	}
	if err := fn(&out.Questions[i]); err != nil {
		return s.Clone(), err
	}
	return out, nil
}

func questionIndex(s models.Survey, id string) (int, error) {
	for i, q := range s.Questions {
		if q.ID == id {
			return i, nil
		}
	}
	return -1, NewNotFoundError(fmt.Sprintf("question %s not found", id))
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
