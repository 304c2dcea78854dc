package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/p-n-ai/pai-curriculum/internal/content"
	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
	"github.com/p-n-ai/pai-curriculum/internal/grading"
)

func TestEpochs_Load(t *testing.T) {
	reg := curriculum.NewRegistry(content.Epochs()...)

	epochs, err := reg.Epochs()
	if err != nil {
		t.Fatalf("Epochs() error = %v", err)
	}
	if len(epochs) == 0 {
		t.Fatal("Epochs() returned empty")
	}
	if epochs[0].ID() != "epoch-0" {
		t.Errorf("first epoch = %q, want epoch-0", epochs[0].ID())
	}
}

func TestEpochs_Epoch0HasFirstLesson(t *testing.T) {
	reg := curriculum.NewRegistry(content.Epochs()...)

	epoch, found, err := reg.EpochByID("epoch-0")
	if err != nil || !found {
		t.Fatalf("EpochByID(epoch-0) = %v, %v", found, err)
	}
	lessons := epoch.Lessons()
	if len(lessons) == 0 || lessons[0].ID() != "epoch-0-lesson-1" {
		t.Error("epoch-0 should start with epoch-0-lesson-1")
	}
}

func TestEpochs_EveryChallengeGradesItsOwnAnswer(t *testing.T) {
	reg := curriculum.NewRegistry(content.Epochs()...)
	epochs, err := reg.Epochs()
	if err != nil {
		t.Fatalf("Epochs() error = %v", err)
	}

	for _, e := range epochs {
		for _, l := range e.Lessons() {
			for _, c := range l.Challenges() {
				if !grading.GradeChallenge(c, c.CorrectAnswer()) {
					t.Errorf("%s: correct answer does not grade as correct", c.ID())
				}
				for _, k := range c.OptionKeys() {
					if k != c.CorrectAnswer() && grading.GradeChallenge(c, k) {
						t.Errorf("%s: option %q graded as correct", c.ID(), k)
					}
				}
			}
			for i, q := range l.QuizQuestions() {
				if !grading.GradeQuizQuestion(q, q.CorrectChoice()).Correct {
					t.Errorf("%s quiz %d: correct choice does not grade as correct", l.ID(), i)
				}
				if q.Explanation() == "" {
					t.Errorf("%s quiz %d: missing explanation", l.ID(), i)
				}
			}
		}
	}
}

func TestNewRegistry_AppendsYAMLEpochs(t *testing.T) {
	dir := t.TempDir()
	doc := `
id: epoch-9
title: "Extras"
expected_lesson_count: 1
lessons:
  - id: epoch-9-lesson-1
    title: "Extra lesson"
    estimated_minutes: 5
    blocks:
      - {kind: key_point, heading: "Remember", body: "Keys are case sensitive."}
`
	if err := os.WriteFile(filepath.Join(dir, "extras.epoch.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := content.NewRegistry(dir)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	epochs, err := reg.Epochs()
	if err != nil {
		t.Fatalf("Epochs() error = %v", err)
	}
	if got, want := len(epochs), len(content.Epochs())+1; got != want {
		t.Fatalf("len(epochs) = %d, want %d", got, want)
	}
	if last := epochs[len(epochs)-1]; last.ID() != "epoch-9" {
		t.Errorf("last epoch = %q, want epoch-9", last.ID())
	}
}

func TestNewRegistry_MissingDir(t *testing.T) {
	if _, err := content.NewRegistry(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("NewRegistry() should fail for a missing directory")
	}
}
