// Package content defines the built-in curriculum: one function per lesson,
// grouped into epochs in their canonical order.
package content

import (
	"fmt"

	"github.com/p-n-ai/pai-curriculum/internal/content/yamlsource"
	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
)

// Epochs returns the built-in epoch definitions in curriculum order.
func Epochs() []curriculum.EpochDefinition {
	return []curriculum.EpochDefinition{
		epoch0(),
		epoch1(),
		epoch2(),
	}
}

// mc builds a multiple-choice challenge. Lesson functions use it so that a
// malformed challenge fails the lesson instead of panicking.
func mc(id, title, prompt string, correct curriculum.AnswerKey, options ...string) (curriculum.Challenge, error) {
	b := curriculum.NewChallengeBuilder(id, title, curriculum.ChallengeMultipleChoice).
		Description(prompt).
		CorrectAnswer(correct)
	for _, opt := range options {
		b.AddMultipleChoiceOption(opt)
	}
	return b.Build()
}

// quiz builds a quiz question from alternating key/text pairs. It panics on an
// odd number of pair arguments, which is a typo in the content source.
func quiz(prompt string, correct curriculum.AnswerKey, explanation string, choices ...string) *curriculum.QuizQuestion {
	if len(choices)%2 != 0 {
		panic(fmt.Sprintf("content: quiz %q: choices must be key/text pairs, got %d values", prompt, len(choices)))
	}
	q := curriculum.NewQuizQuestion(prompt, correct).SetExplanation(explanation)
	for i := 0; i < len(choices); i += 2 {
		q.AddChoice(curriculum.AnswerKey(choices[i]), choices[i+1])
	}
	return q
}

// NewRegistry returns a registry over the built-in epochs followed by any
// *.epoch.yaml epochs under dir. An empty dir means built-in content only.
// The registry is not loaded yet.
func NewRegistry(dir string) (*curriculum.Registry, error) {
	defs := Epochs()
	if dir != "" {
		loader, err := yamlsource.NewLoader(dir)
		if err != nil {
			return nil, err
		}
		extra, err := loader.Load()
		if err != nil {
			return nil, err
		}
		defs = append(defs, extra...)
	}
	return curriculum.NewRegistry(defs...), nil
}
