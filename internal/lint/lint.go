// Package lint flags authoring mistakes that the builders accept but that are
// likely to break grading for real students, such as answer keys that differ
// only by case, width or stray whitespace.
package lint

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
)

// Code identifies the kind of warning.
type Code string

const (
	CodeNearMissOption Code = "near-miss-option"
	CodeUntrimmedKey   Code = "untrimmed-key"
	CodeLessonCount    Code = "lesson-count"
	CodeEmptyLesson    Code = "empty-lesson"
)

// Warning is one finding, addressed by the id of the entity it concerns.
type Warning struct {
	Code    Code   `json:"code"`
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s]: %s", w.Entity, w.Code, w.Message)
}

// Run checks every epoch and returns warnings in tree order.
func Run(epochs []curriculum.Epoch) []Warning {
	l := &linter{fold: cases.Fold()}
	for _, e := range epochs {
		l.epoch(e)
	}
	return l.warnings
}

type linter struct {
	fold     cases.Caser
	warnings []Warning
}

func (l *linter) add(code Code, entity, format string, args ...any) {
	l.warnings = append(l.warnings, Warning{Code: code, Entity: entity, Message: fmt.Sprintf(format, args...)})
}

func (l *linter) epoch(e curriculum.Epoch) {
	if want := e.ExpectedLessonCount(); want > 0 && want != e.LessonCount() {
		l.add(CodeLessonCount, e.ID(), "declares %d lessons, has %d", want, e.LessonCount())
	}
	for _, lesson := range e.Lessons() {
		l.lesson(lesson)
	}
}

func (l *linter) lesson(lesson curriculum.Lesson) {
	challenges := lesson.Challenges()
	quiz := lesson.QuizQuestions()
	if len(lesson.Blocks()) == 0 && len(challenges) == 0 && len(quiz) == 0 {
		l.add(CodeEmptyLesson, lesson.ID(), "lesson has no content")
	}

	for _, c := range challenges {
		l.keys(c.ID(), c.OptionKeys())
		l.untrimmed(c.ID(), "correct answer", c.CorrectAnswer())
	}
	for i, q := range quiz {
		entity := fmt.Sprintf("%s#quiz-%d", lesson.ID(), i+1)
		l.keys(entity, q.Choices().Keys())
		l.untrimmed(entity, "correct choice", q.CorrectChoice())
	}
}

// keys reports pairs of distinct keys that collapse to the same folded form.
func (l *linter) keys(entity string, keys []curriculum.AnswerKey) {
	seen := make(map[string]curriculum.AnswerKey, len(keys))
	for _, k := range keys {
		l.untrimmed(entity, "key", k)
		f := l.canonical(k)
		if prev, ok := seen[f]; ok && prev != k {
			l.add(CodeNearMissOption, entity, "keys %q and %q differ only by case, width or spacing", prev, k)
			continue
		}
		seen[f] = k
	}
}

func (l *linter) untrimmed(entity, what string, k curriculum.AnswerKey) {
	if s := string(k); s != strings.TrimSpace(s) {
		l.add(CodeUntrimmedKey, entity, "%s %q has surrounding whitespace", what, s)
	}
}

// canonical folds a key for comparison: compatibility normalization (so
// full-width "Ａ" matches "A"), whitespace trimming and case folding.
func (l *linter) canonical(k curriculum.AnswerKey) string {
	s := norm.NFKC.String(string(k))
	return l.fold.String(strings.TrimSpace(s))
}
