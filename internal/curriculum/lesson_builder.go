package curriculum

// LessonBuilder accumulates a Lesson. Like ChallengeBuilder it keeps the first
// failure and returns it from Build. Build copies everything it returns, so a
// builder may keep being used afterwards without touching earlier lessons.
type LessonBuilder struct {
	l       Lesson
	minutes bool
	err     error
}

// NewLessonBuilder starts a lesson. Both id and title are required.
func NewLessonBuilder(id, title string) *LessonBuilder {
	b := &LessonBuilder{l: Lesson{id: id, title: title}}
	switch {
	case id == "":
		b.err = newError(KindInvalidIdentity, title, "lesson id is empty")
	case title == "":
		b.err = newError(KindInvalidIdentity, id, "lesson title is empty")
	}
	return b
}

func (b *LessonBuilder) AddTheory(heading, body string) *LessonBuilder {
	return b.AddBlock(BlockTheory, heading, body)
}

func (b *LessonBuilder) AddExample(heading, body string) *LessonBuilder {
	return b.AddBlock(BlockExample, heading, body)
}

func (b *LessonBuilder) AddAnalogy(heading, body string) *LessonBuilder {
	return b.AddBlock(BlockAnalogy, heading, body)
}

func (b *LessonBuilder) AddKeyPoint(heading, body string) *LessonBuilder {
	return b.AddBlock(BlockKeyPoint, heading, body)
}

func (b *LessonBuilder) AddWarning(heading, body string) *LessonBuilder {
	return b.AddBlock(BlockWarning, heading, body)
}

// AddBlock appends a content block of the given kind. Heading and body are
// both required.
func (b *LessonBuilder) AddBlock(kind BlockKind, heading, body string) *LessonBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case !kind.Valid():
		b.err = newError(KindInvalidBlock, b.l.id, "unknown block kind %q", kind)
	case heading == "":
		b.err = newError(KindInvalidBlock, b.l.id, "%s block %d has no heading", kind, len(b.l.blocks)+1)
	case body == "":
		b.err = newError(KindInvalidBlock, b.l.id, "%s block %q has no body", kind, heading)
	default:
		b.l.blocks = append(b.l.blocks, ContentBlock{Kind: kind, Heading: heading, Body: body})
	}
	return b
}

// AddChallenge appends a challenge produced by ChallengeBuilder. A zero
// Challenge, which only a failed Build returns, is rejected.
func (b *LessonBuilder) AddChallenge(c Challenge) *LessonBuilder {
	if b.err != nil {
		return b
	}
	if c.id == "" {
		b.err = newError(KindInvalidIdentity, b.l.id, "challenge %d was not built", len(b.l.challenges)+1)
		return b
	}
	b.l.challenges = append(b.l.challenges, c)
	return b
}

// AddQuizQuestion validates q and appends a copy of it.
func (b *LessonBuilder) AddQuizQuestion(q *QuizQuestion) *LessonBuilder {
	if b.err != nil {
		return b
	}
	if q == nil {
		b.err = newError(KindMissingField, b.l.id, "quiz question %d is nil", len(b.l.quiz)+1)
		return b
	}
	if err := q.Validate(); err != nil {
		ce := err.(*ConstructionError)
		ce.Entity = b.l.id
		b.err = ce
		return b
	}
	b.l.quiz = append(b.l.quiz, q.clone())
	return b
}

// EstimatedMinutes sets the expected duration; n must be positive.
func (b *LessonBuilder) EstimatedMinutes(n int) *LessonBuilder {
	if b.err != nil {
		return b
	}
	if n <= 0 {
		b.err = newError(KindInvalidDuration, b.l.id, "estimated minutes must be positive, got %d", n)
		return b
	}
	b.l.estimatedMinutes = n
	b.minutes = true
	return b
}

// Build returns the finished lesson or the first recorded error.
func (b *LessonBuilder) Build() (Lesson, error) {
	if b.err != nil {
		return Lesson{}, b.err
	}
	if !b.minutes {
		return Lesson{}, newError(KindInvalidDuration, b.l.id, "estimated minutes not set")
	}

	out := b.l
	out.blocks = append([]ContentBlock(nil), b.l.blocks...)
	out.challenges = make([]Challenge, len(b.l.challenges))
	for i, c := range b.l.challenges {
		c.options = append([]string(nil), c.options...)
		out.challenges[i] = c
	}
	out.quiz = make([]QuizQuestion, len(b.l.quiz))
	for i, q := range b.l.quiz {
		out.quiz[i] = q.clone()
	}
	return out, nil
}
