package services

import (
	"reflect"
	"sort"
	"testing"

	"github.com/angemarius939/datarw-core/internal/models"
)

func buildSurvey(t *testing.T, tags ...models.QuestionType) models.Survey {
	t.Helper()
	s := models.Survey{Title: "Test"}
	for _, tag := range tags {
		var err error
		s, err = AddQuestion(s, tag)
		if err != nil {
			t.Fatalf("AddQuestion(%s): %v", tag, err)
		}
	}
	return s
}

func questionIDs(s models.Survey) []string {
	ids := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		ids[i] = q.ID
	}
	return ids
}

func TestAddQuestionAssignsUniqueIDs(t *testing.T) {
	s := buildSurvey(t, models.QuestionShortText, models.QuestionShortText, models.QuestionYesNo)
	seen := map[string]bool{}
	for _, id := range questionIDs(s) {
		if id == "" {
			t.Fatal("question id is empty")
		}
		if seen[id] {
			t.Fatalf("duplicate question id %s", id)
		}
		seen[id] = true
	}
}

func TestAddQuestionUnknownTag(t *testing.T) {
	s := models.Survey{Title: "Test"}
	out, err := AddQuestion(s, "telepathy")
	if !HasCode(err, ErrorUnknownVariant) {
		t.Fatalf("want unknown_variant, got %v", err)
	}
	if len(out.Questions) != 0 {
		t.Error("failed add still appended a question")
	}
}

func TestMoveQuestionPreservesIDSet(t *testing.T) {
	s := buildSurvey(t, models.QuestionShortText, models.QuestionYesNo, models.QuestionDropdown)
	before := append([]string(nil), questionIDs(s)...)

	// Shuffle the order around with a mix of moves, including boundary
	// no-ops; the id set must never change.
	moves := []struct {
		idx int
		dir MoveDirection
	}{
		{0, MoveUp},   // no-op
		{2, MoveDown}, // no-op
		{1, MoveUp},
		{0, MoveDown},
		{2, MoveUp},
	}
	cur := s
	for _, mv := range moves {
		var err error
		cur, err = MoveQuestion(cur, cur.Questions[mv.idx].ID, mv.dir)
		if err != nil {
			t.Fatalf("MoveQuestion: %v", err)
		}
	}

	got := append([]string(nil), questionIDs(cur)...)
	sort.Strings(before)
	sort.Strings(got)
	if !reflect.DeepEqual(before, got) {
		t.Errorf("id set changed: before %v, after %v", before, got)
	}
}

func TestMoveQuestionBoundaryNoOp(t *testing.T) {
	s := buildSurvey(t, models.QuestionShortText, models.QuestionYesNo)
	first := s.Questions[0].ID

	out, err := MoveQuestion(s, first, MoveUp)
	if err != nil {
		t.Fatalf("MoveQuestion up at top: %v", err)
	}
	if !reflect.DeepEqual(questionIDs(out), questionIDs(s)) {
		t.Error("moving first question up changed the order")
	}

	last := s.Questions[1].ID
	out, err = MoveQuestion(s, last, MoveDown)
	if err != nil {
		t.Fatalf("MoveQuestion down at bottom: %v", err)
	}
	if !reflect.DeepEqual(questionIDs(out), questionIDs(s)) {
		t.Error("moving last question down changed the order")
	}
}

func TestMoveQuestionSwapsNeighbors(t *testing.T) {
	s := buildSurvey(t, models.QuestionShortText, models.QuestionYesNo)
	a, b := s.Questions[0].ID, s.Questions[1].ID

	out, err := MoveQuestion(s, b, MoveUp)
	if err != nil {
		t.Fatal(err)
	}
	if got := questionIDs(out); got[0] != b || got[1] != a {
		t.Errorf("order after move = %v, want [%s %s]", got, b, a)
	}
}

func TestUpdateQuestionMergesPatch(t *testing.T) {
	s := buildSurvey(t, models.QuestionSingleChoice)
	id := s.Questions[0].ID

	text := "How satisfied are you?"
	req := true
	opts := []string{"Very", "Somewhat", "Not at all"}
	out, err := UpdateQuestion(s, id, QuestionPatch{Question: &text, Required: &req, Options: &opts})
	if err != nil {
		t.Fatal(err)
	}
	q := out.Questions[0]
	if q.Question != text || !q.Required {
		t.Errorf("patch not applied: %+v", q)
	}
	if !reflect.DeepEqual(q.Options, opts) {
		t.Errorf("options = %v, want %v", q.Options, opts)
	}
	// Unpatched fields stay.
	if q.Type != models.QuestionSingleChoice {
		t.Errorf("type changed to %s", q.Type)
	}
}

func TestUpdateQuestionStaleID(t *testing.T) {
	s := buildSurvey(t, models.QuestionShortText)
	text := "x"
	out, err := UpdateQuestion(s, "gone", QuestionPatch{Question: &text})
	if !HasCode(err, ErrorNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
	if !reflect.DeepEqual(out, s) {
		t.Error("failed update modified the survey")
	}
}

func TestRemoveQuestion(t *testing.T) {
	s := buildSurvey(t, models.QuestionShortText, models.QuestionYesNo)
	id := s.Questions[0].ID
	out, err := RemoveQuestion(s, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Questions) != 1 || out.Questions[0].ID == id {
		t.Errorf("question %s not removed: %v", id, questionIDs(out))
	}
	if _, err := RemoveQuestion(s, "gone"); !HasCode(err, ErrorNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestMutationsAreCopyOnWrite(t *testing.T) {
	s := buildSurvey(t, models.QuestionSingleChoice, models.QuestionYesNo)
	id := s.Questions[0].ID
	snapshot := s.Clone()

	if _, err := AddOption(s, id); err != nil {
		t.Fatal(err)
	}
	if _, err := UpdateOption(s, id, 0, "changed"); err != nil {
		t.Fatal(err)
	}
	if _, err := RemoveQuestion(s, id); err != nil {
		t.Fatal(err)
	}
	if _, err := MoveQuestion(s, id, MoveDown); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(s, snapshot) {
		t.Error("input survey was mutated")
	}
}

func TestOptionOperations(t *testing.T) {
	s := buildSurvey(t, models.QuestionSingleChoice)
	id := s.Questions[0].ID

	s2, err := AddOption(s, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(s2.Questions[0].Options) != 3 {
		t.Fatalf("options = %d, want 3", len(s2.Questions[0].Options))
	}

	s3, err := UpdateOption(s2, id, 2, "Maybe")
	if err != nil {
		t.Fatal(err)
	}
	if s3.Questions[0].Options[2] != "Maybe" {
		t.Errorf("option 2 = %q", s3.Questions[0].Options[2])
	}

	s4, err := RemoveOption(s3, id, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(s4.Questions[0].Options) != 2 {
		t.Fatalf("options = %d after remove, want 2", len(s4.Questions[0].Options))
	}
}

func TestOptionIndexOutOfRange(t *testing.T) {
	s := buildSurvey(t, models.QuestionSingleChoice)
	id := s.Questions[0].ID

	if _, err := UpdateOption(s, id, 5, "x"); !HasCode(err, ErrorOutOfRange) {
		t.Errorf("update: want out_of_range, got %v", err)
	}
	if _, err := RemoveOption(s, id, -1); !HasCode(err, ErrorOutOfRange) {
		t.Errorf("remove: want out_of_range, got %v", err)
	}
}

func TestMatrixOperations(t *testing.T) {
	s := buildSurvey(t, models.QuestionMatrixGrid)
	id := s.Questions[0].ID

	s2, err := AddMatrixRow(s, id)
	if err != nil {
		t.Fatal(err)
	}
	s2, err = UpdateMatrixRow(s2, id, 2, "Row 3")
	if err != nil {
		t.Fatal(err)
	}
	if got := s2.Questions[0].MatrixRows; len(got) != 3 || got[2] != "Row 3" {
		t.Errorf("rows = %v", got)
	}

	s3, err := AddMatrixColumn(s2, id)
	if err != nil {
		t.Fatal(err)
	}
	s3, err = RemoveMatrixColumn(s3, id, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s3.Questions[0].MatrixColumns; len(got) != 2 {
		t.Errorf("columns = %v", got)
	}

	if _, err := UpdateMatrixRow(s, id, 9, "x"); !HasCode(err, ErrorOutOfRange) {
		t.Errorf("want out_of_range, got %v", err)
	}
}

func TestChangeQuestionTypeKeepsEnteredValues(t *testing.T) {
	s := buildSurvey(t, models.QuestionSingleChoice)
	id := s.Questions[0].ID

	opts := []string{"Red", "Green", "Blue"}
	s, err := UpdateQuestion(s, id, QuestionPatch{Options: &opts})
	if err != nil {
		t.Fatal(err)
	}

	// Switch away and back: the entered options must survive.
	s, err = ChangeQuestionType(s, id, models.QuestionRatingScale)
	if err != nil {
		t.Fatal(err)
	}
	if s.Questions[0].ScaleMin != 1 || s.Questions[0].ScaleMax != 5 {
		t.Errorf("rating seeds missing: [%d,%d]", s.Questions[0].ScaleMin, s.Questions[0].ScaleMax)
	}
	s, err = ChangeQuestionType(s, id, models.QuestionDropdown)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Questions[0].Options, opts) {
		t.Errorf("options lost on type switch: %v", s.Questions[0].Options)
	}
}
