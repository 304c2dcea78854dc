package curriculum

import (
	"encoding/json"
	"strings"
)

// ChoiceMap maps answer keys to choice text. Iteration order is insertion order,
// which is also the display order.
type ChoiceMap struct {
	keys []AnswerKey
	text map[AnswerKey]string
}

// Len returns the number of choices.
func (m ChoiceMap) Len() int { return len(m.keys) }

// Keys returns the keys in display order.
func (m ChoiceMap) Keys() []AnswerKey {
	return append([]AnswerKey(nil), m.keys...)
}

// Has reports whether key is present.
func (m ChoiceMap) Has(key AnswerKey) bool {
	_, ok := m.text[key]
	return ok
}

// Text returns the choice text for key.
func (m ChoiceMap) Text(key AnswerKey) (string, bool) {
	t, ok := m.text[key]
	return t, ok
}

func (m *ChoiceMap) add(key AnswerKey, text string) bool {
	if m.text == nil {
		m.text = make(map[AnswerKey]string)
	}
	if _, dup := m.text[key]; dup {
		return false
	}
	m.keys = append(m.keys, key)
	m.text[key] = text
	return true
}

func (m ChoiceMap) clone() ChoiceMap {
	out := ChoiceMap{
		keys: append([]AnswerKey(nil), m.keys...),
		text: make(map[AnswerKey]string, len(m.text)),
	}
	for k, v := range m.text {
		out.text[k] = v
	}
	return out
}

type choiceJSON struct {
	Key  AnswerKey `json:"key"`
	Text string    `json:"text"`
}

// MarshalJSON encodes the map as an ordered list so display order survives.
func (m ChoiceMap) MarshalJSON() ([]byte, error) {
	out := make([]choiceJSON, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, choiceJSON{Key: k, Text: m.text[k]})
	}
	return json.Marshal(out)
}

// QuizQuestion is an assessment item graded by choice key, with an explanation
// shown after grading. It is accumulated through its mutators and then handed to
// LessonBuilder.AddQuizQuestion, which validates and copies it.
type QuizQuestion struct {
	prompt      string
	correct     AnswerKey
	explanation string
	choices     ChoiceMap

	// first duplicate key passed to AddChoice, reported by Validate
	duplicate *AnswerKey
}

// NewQuizQuestion starts a question with its prompt and the key of the correct choice.
func NewQuizQuestion(prompt string, correct AnswerKey) *QuizQuestion {
	return &QuizQuestion{prompt: prompt, correct: correct}
}

// AddChoice appends a choice. A repeated key is kept out of the map and
// reported by Validate.
func (q *QuizQuestion) AddChoice(key AnswerKey, text string) *QuizQuestion {
	if !q.choices.add(key, text) && q.duplicate == nil {
		k := key
		q.duplicate = &k
	}
	return q
}

// SetExplanation sets the rationale shown after grading.
func (q *QuizQuestion) SetExplanation(text string) *QuizQuestion {
	q.explanation = text
	return q
}

func (q QuizQuestion) Prompt() string           { return q.prompt }
func (q QuizQuestion) CorrectChoice() AnswerKey { return q.correct }
func (q QuizQuestion) Explanation() string      { return q.explanation }

// Choices returns a copy of the choice map.
func (q QuizQuestion) Choices() ChoiceMap { return q.choices.clone() }

// Validate checks the question's invariants: a prompt, at least one choice,
// non-blank unique keys, and a correct key present among the choices.
func (q QuizQuestion) Validate() error {
	if q.prompt == "" {
		return newError(KindMissingField, "", "quiz question prompt is empty")
	}
	if q.duplicate != nil {
		return newError(KindDuplicateOption, "", "quiz choice key %q repeated in %q", *q.duplicate, q.prompt)
	}
	for _, k := range q.choices.keys {
		if strings.TrimSpace(string(k)) == "" {
			return newError(KindMalformedOption, "", "quiz question %q has a choice with a blank key", q.prompt)
		}
	}
	if q.choices.Len() == 0 {
		return newError(KindNoOptions, "", "quiz question %q has no choices", q.prompt)
	}
	if !q.choices.Has(q.correct) {
		return newError(KindDanglingCorrectAnswer, "", "quiz question %q: correct key %q is not among choices %v",
			q.prompt, q.correct, q.choices.keys)
	}
	return nil
}

func (q QuizQuestion) clone() QuizQuestion {
	out := q
	out.choices = q.choices.clone()
	if q.duplicate != nil {
		k := *q.duplicate
		out.duplicate = &k
	}
	return out
}

type quizJSON struct {
	Prompt        string    `json:"prompt"`
	CorrectChoice AnswerKey `json:"correct_choice"`
	Explanation   string    `json:"explanation"`
	Choices       ChoiceMap `json:"choices"`
}

func (q QuizQuestion) MarshalJSON() ([]byte, error) {
	return json.Marshal(quizJSON{
		Prompt:        q.prompt,
		CorrectChoice: q.correct,
		Explanation:   q.explanation,
		Choices:       q.choices,
	})
}
