package curriculum

import "fmt"

// ErrorKind classifies a ConstructionError.
type ErrorKind string

const (
	KindInvalidIdentity       ErrorKind = "invalid_identity"
	KindInvalidDuration       ErrorKind = "invalid_duration"
	KindInvalidBlock          ErrorKind = "invalid_block"
	KindMissingField          ErrorKind = "missing_field"
	KindUnsupportedType       ErrorKind = "unsupported_type"
	KindMalformedOption       ErrorKind = "malformed_option"
	KindNoOptions             ErrorKind = "no_options"
	KindDuplicateOption       ErrorKind = "duplicate_option"
	KindDanglingCorrectAnswer ErrorKind = "dangling_correct_answer"
	KindDuplicateEpochID      ErrorKind = "duplicate_epoch_id"
	KindDuplicateLessonID     ErrorKind = "duplicate_lesson_id"
	KindDuplicateChallengeID  ErrorKind = "duplicate_challenge_id"
)

// Sentinels for errors.Is matching against a ConstructionError's kind.
var (
	ErrInvalidIdentity       = &ConstructionError{Kind: KindInvalidIdentity}
	ErrInvalidDuration       = &ConstructionError{Kind: KindInvalidDuration}
	ErrInvalidBlock          = &ConstructionError{Kind: KindInvalidBlock}
	ErrMissingField          = &ConstructionError{Kind: KindMissingField}
	ErrUnsupportedType       = &ConstructionError{Kind: KindUnsupportedType}
	ErrMalformedOption       = &ConstructionError{Kind: KindMalformedOption}
	ErrNoOptions             = &ConstructionError{Kind: KindNoOptions}
	ErrDuplicateOption       = &ConstructionError{Kind: KindDuplicateOption}
	ErrDanglingCorrectAnswer = &ConstructionError{Kind: KindDanglingCorrectAnswer}
	ErrDuplicateEpochID      = &ConstructionError{Kind: KindDuplicateEpochID}
	ErrDuplicateLessonID     = &ConstructionError{Kind: KindDuplicateLessonID}
	ErrDuplicateChallengeID  = &ConstructionError{Kind: KindDuplicateChallengeID}
)

// ConstructionError reports an entity whose invariants were violated while it
// was being built or assembled.
type ConstructionError struct {
	Kind   ErrorKind
	Entity string // id of the entity under construction, if known
	Detail string
}

func newError(kind ErrorKind, entity, format string, args ...any) *ConstructionError {
	return &ConstructionError{Kind: kind, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

func (e *ConstructionError) Error() string {
	msg := "curriculum: " + string(e.Kind)
	if e.Entity != "" {
		msg += " (" + e.Entity + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches any ConstructionError of the same kind, so the Err* sentinels work
// with errors.Is regardless of entity or detail.
func (e *ConstructionError) Is(target error) bool {
	t, ok := target.(*ConstructionError)
	return ok && t.Kind == e.Kind
}
