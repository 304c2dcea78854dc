package curriculum_test

import (
	"errors"
	"testing"

	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
)

func TestChallengeBuilder_Build(t *testing.T) {
	c, err := curriculum.NewChallengeBuilder("ch-1", "Primitive types", curriculum.ChallengeMultipleChoice).
		Description("Which type holds a single 16-bit Unicode character?").
		AddMultipleChoiceOption("A) byte").
		AddMultipleChoiceOption("B) char").
		AddMultipleChoiceOption("C) short").
		CorrectAnswer("B").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c.CorrectAnswer() != "B" {
		t.Errorf("CorrectAnswer() = %q, want B", c.CorrectAnswer())
	}
	if got := len(c.Options()); got != 3 {
		t.Errorf("Options() len = %d, want 3", got)
	}
	keys := c.OptionKeys()
	want := []curriculum.AnswerKey{"A", "B", "C"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("OptionKeys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestChallengeBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (curriculum.Challenge, error)
		wantErr error
	}{
		{
			name: "dangling correct answer",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					Description("d").
					AddMultipleChoiceOption("A) x").
					AddMultipleChoiceOption("B) y").
					CorrectAnswer("C").
					Build()
			},
			wantErr: curriculum.ErrDanglingCorrectAnswer,
		},
		{
			name: "correct answer differs in case",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					Description("d").
					AddMultipleChoiceOption("A) x").
					CorrectAnswer("a").
					Build()
			},
			wantErr: curriculum.ErrDanglingCorrectAnswer,
		},
		{
			name: "correct answer never set",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					Description("d").
					AddMultipleChoiceOption("A) x").
					Build()
			},
			wantErr: curriculum.ErrDanglingCorrectAnswer,
		},
		{
			name: "duplicate option label",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					Description("d").
					AddMultipleChoiceOption("A) x").
					AddMultipleChoiceOption("A) y").
					CorrectAnswer("A").
					Build()
			},
			wantErr: curriculum.ErrDuplicateOption,
		},
		{
			name: "no options",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					Description("d").
					CorrectAnswer("A").
					Build()
			},
			wantErr: curriculum.ErrNoOptions,
		},
		{
			name: "missing description",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					AddMultipleChoiceOption("A) x").
					CorrectAnswer("A").
					Build()
			},
			wantErr: curriculum.ErrMissingField,
		},
		{
			name: "option without label",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
					Description("d").
					AddMultipleChoiceOption("just text").
					CorrectAnswer("A").
					Build()
			},
			wantErr: curriculum.ErrMalformedOption,
		},
		{
			name: "empty id",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("", "T", curriculum.ChallengeMultipleChoice).Build()
			},
			wantErr: curriculum.ErrInvalidIdentity,
		},
		{
			name: "empty title",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "", curriculum.ChallengeMultipleChoice).Build()
			},
			wantErr: curriculum.ErrInvalidIdentity,
		},
		{
			name: "unknown type",
			build: func() (curriculum.Challenge, error) {
				return curriculum.NewChallengeBuilder("ch", "T", "essay").Build()
			},
			wantErr: curriculum.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			var ce *curriculum.ConstructionError
			if !errors.As(err, &ce) {
				t.Fatalf("Build() error %T is not a *ConstructionError", err)
			}
		})
	}
}

func TestChallengeBuilder_ReuseAfterBuild(t *testing.T) {
	b := curriculum.NewChallengeBuilder("ch", "T", curriculum.ChallengeMultipleChoice).
		Description("d").
		AddMultipleChoiceOption("A) x").
		CorrectAnswer("A")

	first, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b.AddMultipleChoiceOption("B) y")
	second, err := b.Build()
	if err != nil {
		t.Fatalf("second Build() error = %v", err)
	}

	if len(first.Options()) != 1 {
		t.Errorf("first Options() len = %d, want 1 after builder reuse", len(first.Options()))
	}
	if len(second.Options()) != 2 {
		t.Errorf("second Options() len = %d, want 2", len(second.Options()))
	}
}

func TestLessonBuilder_BlocksRoundTrip(t *testing.T) {
	type triple struct {
		kind          curriculum.BlockKind
		heading, body string
	}
	want := []triple{
		{curriculum.BlockTheory, "What is a variable?", "A named box for a value."},
		{curriculum.BlockAnalogy, "Labelled jars", "Each jar has a label and holds one thing."},
		{curriculum.BlockExample, "Declaring an int", "int count = 3;"},
		{curriculum.BlockWarning, "Uninitialized locals", "The compiler rejects reads before assignment."},
		{curriculum.BlockKeyPoint, "Types are fixed", "A variable's type never changes."},
		{curriculum.BlockTheory, "Scope", "Variables live inside their block."},
	}

	b := curriculum.NewLessonBuilder("l-1", "Variables").EstimatedMinutes(15)
	for _, w := range want {
		switch w.kind {
		case curriculum.BlockTheory:
			b.AddTheory(w.heading, w.body)
		case curriculum.BlockExample:
			b.AddExample(w.heading, w.body)
		case curriculum.BlockAnalogy:
			b.AddAnalogy(w.heading, w.body)
		case curriculum.BlockKeyPoint:
			b.AddKeyPoint(w.heading, w.body)
		case curriculum.BlockWarning:
			b.AddWarning(w.heading, w.body)
		}
	}

	lesson, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	got := lesson.Blocks()
	if len(got) != len(want) {
		t.Fatalf("Blocks() len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Heading != w.heading || got[i].Body != w.body {
			t.Errorf("Blocks()[%d] = %+v, want %+v", i, got[i], w)
		}
	}
	if lesson.EstimatedMinutes() != 15 {
		t.Errorf("EstimatedMinutes() = %d, want 15", lesson.EstimatedMinutes())
	}
}

func TestLessonBuilder_EmptyBodyIsLegal(t *testing.T) {
	lesson, err := curriculum.NewLessonBuilder("l-empty", "Coming soon").EstimatedMinutes(5).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(lesson.Blocks()) != 0 || len(lesson.Challenges()) != 0 || len(lesson.QuizQuestions()) != 0 {
		t.Error("expected an empty lesson body")
	}
}

func TestLessonBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *curriculum.LessonBuilder
		wantErr error
	}{
		{"empty id", curriculum.NewLessonBuilder("", "T").EstimatedMinutes(1), curriculum.ErrInvalidIdentity},
		{"empty title", curriculum.NewLessonBuilder("l", "").EstimatedMinutes(1), curriculum.ErrInvalidIdentity},
		{"zero minutes", curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(0), curriculum.ErrInvalidDuration},
		{"negative minutes", curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(-4), curriculum.ErrInvalidDuration},
		{"minutes unset", curriculum.NewLessonBuilder("l", "T"), curriculum.ErrInvalidDuration},
		{"empty heading", curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).AddTheory("", "body"), curriculum.ErrInvalidBlock},
		{"empty body", curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).AddWarning("heading", ""), curriculum.ErrInvalidBlock},
		{"unknown kind", curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).AddBlock("aside", "h", "b"), curriculum.ErrInvalidBlock},
		{"unbuilt challenge", curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).AddChallenge(curriculum.Challenge{}), curriculum.ErrInvalidIdentity},
		{
			"dangling quiz key",
			curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).
				AddQuizQuestion(curriculum.NewQuizQuestion("Q?", "C").AddChoice("A", "a").AddChoice("B", "b")),
			curriculum.ErrDanglingCorrectAnswer,
		},
		{
			"duplicate quiz key",
			curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).
				AddQuizQuestion(curriculum.NewQuizQuestion("Q?", "A").AddChoice("A", "a").AddChoice("A", "again")),
			curriculum.ErrDuplicateOption,
		},
		{
			"blank quiz key",
			curriculum.NewLessonBuilder("l", "T").EstimatedMinutes(1).
				AddQuizQuestion(curriculum.NewQuizQuestion("Q?", "").AddChoice("", "blank")),
			curriculum.ErrMalformedOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLessonBuilder_FirstErrorWins(t *testing.T) {
	_, err := curriculum.NewLessonBuilder("l", "T").
		EstimatedMinutes(-1).
		AddTheory("", "").
		Build()
	if !errors.Is(err, curriculum.ErrInvalidDuration) {
		t.Errorf("Build() error = %v, want invalid duration", err)
	}
}

func TestLessonBuilder_SnapshotIsolation(t *testing.T) {
	q := curriculum.NewQuizQuestion("Which keyword declares a constant?", "B").
		AddChoice("A", "static").
		AddChoice("B", "final").
		SetExplanation("final prevents reassignment.")

	b := curriculum.NewLessonBuilder("l-iso", "Constants").
		EstimatedMinutes(10).
		AddTheory("final", "Marks a variable as assign-once.").
		AddQuizQuestion(q)

	first, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Mutate both the question and the builder after the first build.
	q.AddChoice("C", "const").SetExplanation("changed")
	b.AddWarning("const", "Reserved but unused.")

	if got := len(first.Blocks()); got != 1 {
		t.Errorf("first Blocks() len = %d, want 1", got)
	}
	fq := first.QuizQuestions()[0]
	if fq.Choices().Len() != 2 {
		t.Errorf("first quiz choices = %d, want 2", fq.Choices().Len())
	}
	if fq.Explanation() != "final prevents reassignment." {
		t.Errorf("first quiz explanation = %q, leaked mutation", fq.Explanation())
	}

	second, err := b.Build()
	if err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	if got := len(second.Blocks()); got != 2 {
		t.Errorf("second Blocks() len = %d, want 2", got)
	}
}

func TestQuizQuestion_ValidateKeys(t *testing.T) {
	tests := []struct {
		name    string
		q       *curriculum.QuizQuestion
		wantErr error
	}{
		{"empty key", curriculum.NewQuizQuestion("Q?", "").AddChoice("", "blank"), curriculum.ErrMalformedOption},
		{"whitespace key", curriculum.NewQuizQuestion("Q?", "A").AddChoice("A", "a").AddChoice("  ", "blank"), curriculum.ErrMalformedOption},
		{"valid", curriculum.NewQuizQuestion("Q?", "A").AddChoice("A", "a").AddChoice("B", "b"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuizQuestion_ChoiceOrder(t *testing.T) {
	q := curriculum.NewQuizQuestion("Pick one", "Z").
		AddChoice("Z", "last letter").
		AddChoice("A", "first letter").
		AddChoice("M", "middle")

	if err := q.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	keys := q.Choices().Keys()
	want := []curriculum.AnswerKey{"Z", "A", "M"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if text, ok := q.Choices().Text("A"); !ok || text != "first letter" {
		t.Errorf("Text(A) = %q, %v", text, ok)
	}
}

func TestOptionLabel(t *testing.T) {
	tests := []struct {
		option string
		want   curriculum.AnswerKey
		ok     bool
	}{
		{"A) x", "A", true},
		{"B) f(x) returns", "B", true},
		{"10) ten", "10", true},
		{") nothing", "", false},
		{"no label", "", false},
	}
	for _, tt := range tests {
		got, ok := curriculum.OptionLabel(tt.option)
		if got != tt.want || ok != tt.ok {
			t.Errorf("OptionLabel(%q) = %q, %v, want %q, %v", tt.option, got, ok, tt.want, tt.ok)
		}
	}
}
