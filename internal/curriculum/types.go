// Package curriculum holds the course content model: epochs, lessons and the
// assessment items they own. Entities are only produced by the builders and the
// Registry, and are read-only once returned.
package curriculum

import (
	"encoding/json"
	"strings"
)

// AnswerKey identifies a choice within a challenge or quiz question ("A", "B", ...).
// Keys compare by exact, case-sensitive equality.
type AnswerKey string

// BlockKind tags a content block. It only affects rendering.
type BlockKind string

const (
	BlockTheory   BlockKind = "theory"
	BlockExample  BlockKind = "example"
	BlockAnalogy  BlockKind = "analogy"
	BlockKeyPoint BlockKind = "key_point"
	BlockWarning  BlockKind = "warning"
)

// Valid reports whether k is one of the known block kinds.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockTheory, BlockExample, BlockAnalogy, BlockKeyPoint, BlockWarning:
		return true
	}
	return false
}

// ChallengeType enumerates challenge formats.
type ChallengeType string

const (
	ChallengeMultipleChoice ChallengeType = "multiple_choice"
)

// Valid reports whether t is a supported challenge type.
func (t ChallengeType) Valid() bool {
	return t == ChallengeMultipleChoice
}

// ContentBlock is one explanatory section of a lesson.
type ContentBlock struct {
	Kind    BlockKind `json:"kind" yaml:"kind"`
	Heading string    `json:"heading" yaml:"heading"`
	Body    string    `json:"body" yaml:"body"`
}

// Epoch is a top-level course module with an ordered list of lessons.
type Epoch struct {
	id                  string
	title               string
	description         string
	expectedLessonCount int
	lessons             []Lesson
}

func (e Epoch) ID() string          { return e.id }
func (e Epoch) Title() string       { return e.title }
func (e Epoch) Description() string { return e.description }

// ExpectedLessonCount is the declared target; it is not enforced.
func (e Epoch) ExpectedLessonCount() int { return e.expectedLessonCount }

// Lessons returns the epoch's lessons in curriculum order.
func (e Epoch) Lessons() []Lesson {
	return append([]Lesson(nil), e.lessons...)
}

// LessonCount returns the number of lessons without copying them.
func (e Epoch) LessonCount() int { return len(e.lessons) }

// Lesson is a unit of instructional content.
type Lesson struct {
	id               string
	title            string
	blocks           []ContentBlock
	challenges       []Challenge
	quiz             []QuizQuestion
	estimatedMinutes int
}

func (l Lesson) ID() string            { return l.id }
func (l Lesson) Title() string         { return l.title }
func (l Lesson) EstimatedMinutes() int { return l.estimatedMinutes }

// Blocks returns the content blocks in authored order.
func (l Lesson) Blocks() []ContentBlock {
	return append([]ContentBlock(nil), l.blocks...)
}

// Challenges returns the lesson's challenges in authored order.
func (l Lesson) Challenges() []Challenge {
	return append([]Challenge(nil), l.challenges...)
}

// QuizQuestions returns copies of the lesson's quiz questions. Mutating a
// returned question does not affect the lesson.
func (l Lesson) QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(l.quiz))
	for i, q := range l.quiz {
		out[i] = q.clone()
	}
	return out
}

// Challenge is a multiple-choice assessment item with one correct option.
type Challenge struct {
	id            string
	title         string
	typ           ChallengeType
	description   string
	options       []string
	correctAnswer AnswerKey
}

func (c Challenge) ID() string               { return c.id }
func (c Challenge) Title() string            { return c.title }
func (c Challenge) Type() ChallengeType      { return c.typ }
func (c Challenge) Description() string      { return c.description }
func (c Challenge) CorrectAnswer() AnswerKey { return c.correctAnswer }

// Options returns the option strings, each carrying its label prefix.
func (c Challenge) Options() []string {
	return append([]string(nil), c.options...)
}

// OptionKeys returns the label of every option in order.
func (c Challenge) OptionKeys() []AnswerKey {
	keys := make([]AnswerKey, 0, len(c.options))
	for _, opt := range c.options {
		if k, ok := OptionLabel(opt); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// OptionLabel extracts the label of an option string: the text before the
// first ")". "B) some text" yields "B". Surrounding whitespace is kept so that
// authoring mistakes stay visible.
func OptionLabel(option string) (AnswerKey, bool) {
	i := strings.Index(option, ")")
	if i <= 0 {
		return "", false
	}
	return AnswerKey(option[:i]), true
}

type epochJSON struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	ExpectedLessonCount int      `json:"expected_lesson_count"`
	Lessons             []Lesson `json:"lessons"`
}

func (e Epoch) MarshalJSON() ([]byte, error) {
	return json.Marshal(epochJSON{
		ID:                  e.id,
		Title:               e.title,
		Description:         e.description,
		ExpectedLessonCount: e.expectedLessonCount,
		Lessons:             e.lessons,
	})
}

type lessonJSON struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Blocks           []ContentBlock `json:"blocks"`
	Challenges       []Challenge    `json:"challenges"`
	Quiz             []QuizQuestion `json:"quiz"`
}

func (l Lesson) MarshalJSON() ([]byte, error) {
	return json.Marshal(lessonJSON{
		ID:               l.id,
		Title:            l.title,
		EstimatedMinutes: l.estimatedMinutes,
		Blocks:           nonNil(l.blocks),
		Challenges:       nonNil(l.challenges),
		Quiz:             nonNil(l.quiz),
	})
}

type challengeJSON struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Type          ChallengeType `json:"type"`
	Description   string        `json:"description"`
	Options       []string      `json:"options"`
	CorrectAnswer AnswerKey     `json:"correct_answer"`
}

func (c Challenge) MarshalJSON() ([]byte, error) {
	return json.Marshal(challengeJSON{
		ID:            c.id,
		Title:         c.title,
		Type:          c.typ,
		Description:   c.description,
		Options:       nonNil(c.options),
		CorrectAnswer: c.correctAnswer,
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
