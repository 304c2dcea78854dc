// Package export writes the curriculum tree to a spreadsheet for reviewers.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
)

const (
	SheetEpochs     = "Epochs"
	SheetLessons    = "Lessons"
	SheetChallenges = "Challenges"
	SheetQuiz       = "Quiz"
)

var headers = map[string][]any{
	SheetEpochs:     {"Epoch ID", "Title", "Description", "Expected Lessons", "Lessons"},
	SheetLessons:    {"Epoch ID", "Lesson ID", "Title", "Minutes", "Blocks", "Challenges", "Quiz Questions"},
	SheetChallenges: {"Lesson ID", "Challenge ID", "Title", "Type", "Prompt", "Options", "Correct"},
	SheetQuiz:       {"Lesson ID", "#", "Prompt", "Choices", "Correct", "Explanation"},
}

// WriteWorkbook writes one sheet per entity type, rows in curriculum order.
func WriteWorkbook(w io.Writer, epochs []curriculum.Epoch) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetEpochs); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	for _, name := range []string{SheetLessons, SheetChallenges, SheetQuiz} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	sw := sheetWriter{f: f, next: map[string]int{}}
	for _, name := range []string{SheetEpochs, SheetLessons, SheetChallenges, SheetQuiz} {
		sw.row(name, headers[name]...)
	}

	for _, e := range epochs {
		sw.row(SheetEpochs, e.ID(), e.Title(), e.Description(), e.ExpectedLessonCount(), e.LessonCount())
		for _, l := range e.Lessons() {
			challenges := l.Challenges()
			quiz := l.QuizQuestions()
			sw.row(SheetLessons, e.ID(), l.ID(), l.Title(), l.EstimatedMinutes(), len(l.Blocks()), len(challenges), len(quiz))
			for _, c := range challenges {
				sw.row(SheetChallenges, l.ID(), c.ID(), c.Title(), string(c.Type()), c.Description(),
					strings.Join(c.Options(), "\n"), string(c.CorrectAnswer()))
			}
			for i, q := range quiz {
				sw.row(SheetQuiz, l.ID(), i+1, q.Prompt(), formatChoices(q.Choices()), string(q.CorrectChoice()), q.Explanation())
			}
		}
	}
	if sw.err != nil {
		return sw.err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func formatChoices(m curriculum.ChoiceMap) string {
	lines := make([]string, 0, m.Len())
	for _, k := range m.Keys() {
		text, _ := m.Text(k)
		lines = append(lines, fmt.Sprintf("%s) %s", k, text))
	}
	return strings.Join(lines, "\n")
}

type sheetWriter struct {
	f    *excelize.File
	next map[string]int
	err  error
}

func (s *sheetWriter) row(sheet string, values ...any) {
	if s.err != nil {
		return
	}
	s.next[sheet]++
	cell, err := excelize.CoordinatesToCellName(1, s.next[sheet])
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(sheet, cell, &values); err != nil {
		s.err = fmt.Errorf("writing %s row %d: %w", sheet, s.next[sheet], err)
	}
}
