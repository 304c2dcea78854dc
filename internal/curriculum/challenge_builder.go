package curriculum

import "strings"

// ChallengeBuilder accumulates a Challenge. Each step validates what it can;
// the first failure is kept and returned from Build, and later steps are
// ignored. Build may be called more than once and returns independent values.
type ChallengeBuilder struct {
	c      Challenge
	labels map[AnswerKey]struct{}
	err    error
}

// NewChallengeBuilder starts a challenge. An empty id or title, or an unknown
// type, is reported by Build.
func NewChallengeBuilder(id, title string, typ ChallengeType) *ChallengeBuilder {
	b := &ChallengeBuilder{
		c:      Challenge{id: id, title: title, typ: typ},
		labels: make(map[AnswerKey]struct{}),
	}
	switch {
	case id == "":
		b.err = newError(KindInvalidIdentity, title, "challenge id is empty")
	case title == "":
		b.err = newError(KindInvalidIdentity, id, "challenge title is empty")
	case !typ.Valid():
		b.err = newError(KindUnsupportedType, id, "challenge type %q", typ)
	}
	return b
}

// Description sets the prompt.
func (b *ChallengeBuilder) Description(text string) *ChallengeBuilder {
	if b.err != nil {
		return b
	}
	b.c.description = text
	return b
}

// AddMultipleChoiceOption appends an option such as "B) a heap". The label
// before ")" must be non-empty and unique within the challenge.
func (b *ChallengeBuilder) AddMultipleChoiceOption(option string) *ChallengeBuilder {
	if b.err != nil {
		return b
	}
	label, ok := OptionLabel(option)
	if !ok {
		b.err = newError(KindMalformedOption, b.c.id, "option %q has no label prefix", option)
		return b
	}
	if _, dup := b.labels[label]; dup {
		b.err = newError(KindDuplicateOption, b.c.id, "option label %q repeated", label)
		return b
	}
	b.labels[label] = struct{}{}
	b.c.options = append(b.c.options, option)
	return b
}

// CorrectAnswer records the label of the correct option.
func (b *ChallengeBuilder) CorrectAnswer(key AnswerKey) *ChallengeBuilder {
	if b.err != nil {
		return b
	}
	b.c.correctAnswer = key
	return b
}

// Build validates the accumulated challenge. The correct answer must name
// exactly one supplied option; there is no way to obtain a Challenge that
// violates this.
func (b *ChallengeBuilder) Build() (Challenge, error) {
	if b.err != nil {
		return Challenge{}, b.err
	}
	if strings.TrimSpace(b.c.description) == "" {
		return Challenge{}, newError(KindMissingField, b.c.id, "challenge description is empty")
	}
	if len(b.c.options) == 0 {
		return Challenge{}, newError(KindNoOptions, b.c.id, "challenge has no options")
	}
	matches := 0
	for _, opt := range b.c.options {
		if label, _ := OptionLabel(opt); label == b.c.correctAnswer {
			matches++
		}
	}
	if matches != 1 {
		return Challenge{}, newError(KindDanglingCorrectAnswer, b.c.id,
			"correct answer %q does not match any of %v", b.c.correctAnswer, b.c.options)
	}

	out := b.c
	out.options = append([]string(nil), b.c.options...)
	return out, nil
}
