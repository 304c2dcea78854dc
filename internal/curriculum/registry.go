package curriculum

import (
	"fmt"
	"log/slog"
	"sync"
)

// LessonFunc is a content-definition function: it builds one lesson.
type LessonFunc func() (Lesson, error)

// EpochDefinition describes how to assemble one epoch. Lessons run in order.
type EpochDefinition struct {
	ID                  string
	Title               string
	Description         string
	ExpectedLessonCount int
	Lessons             []LessonFunc
}

// Registry holds the full epoch tree. It is built at most once, either
// explicitly through Load or on the first read; the outcome, success or
// failure, is shared by every caller. After a successful load the tree is
// immutable and reads need no locking.
type Registry struct {
	defs []EpochDefinition

	once   sync.Once
	epochs []Epoch
	err    error

	lessons    map[string]lessonRef
	challenges map[string]challengeRef
	byEpoch    map[string]int
}

type lessonRef struct {
	epoch, lesson int
}

type challengeRef struct {
	lessonRef
	challenge int
	lessonID  string
}

// NewRegistry returns a registry that will assemble defs in the given order.
func NewRegistry(defs ...EpochDefinition) *Registry {
	return &Registry{defs: append([]EpochDefinition(nil), defs...)}
}

// Load builds the tree if it has not been built yet and returns the
// initialization error, if any. Concurrent callers block until the first one
// finishes and then observe the same result.
func (r *Registry) Load() error {
	r.once.Do(func() {
		epochs, err := r.assemble()
		if err != nil {
			r.err = fmt.Errorf("loading curriculum: %w", err)
			return
		}
		r.epochs = epochs
		slog.Info("curriculum loaded",
			"epochs", len(epochs),
			"lessons", len(r.lessons),
			"challenges", len(r.challenges),
		)
	})
	return r.err
}

// Epochs returns every epoch in canonical order. The returned slice is a copy.
func (r *Registry) Epochs() ([]Epoch, error) {
	if err := r.Load(); err != nil {
		return nil, err
	}
	return append([]Epoch(nil), r.epochs...), nil
}

// EpochByID looks up an epoch by exact id. A missing id is reported through
// the bool, not the error; the error is only set when loading failed.
func (r *Registry) EpochByID(id string) (Epoch, bool, error) {
	if err := r.Load(); err != nil {
		return Epoch{}, false, err
	}
	i, ok := r.byEpoch[id]
	if !ok {
		return Epoch{}, false, nil
	}
	return r.epochs[i], true, nil
}

// LessonByID looks up a lesson anywhere in the tree.
func (r *Registry) LessonByID(id string) (Lesson, bool, error) {
	if err := r.Load(); err != nil {
		return Lesson{}, false, err
	}
	ref, ok := r.lessons[id]
	if !ok {
		return Lesson{}, false, nil
	}
	return r.epochs[ref.epoch].lessons[ref.lesson], true, nil
}

// ChallengeByID looks up a challenge anywhere in the tree.
func (r *Registry) ChallengeByID(id string) (Challenge, bool, error) {
	if err := r.Load(); err != nil {
		return Challenge{}, false, err
	}
	ref, ok := r.challenges[id]
	if !ok {
		return Challenge{}, false, nil
	}
	return r.epochs[ref.epoch].lessons[ref.lesson].challenges[ref.challenge], true, nil
}

func (r *Registry) assemble() ([]Epoch, error) {
	r.byEpoch = make(map[string]int, len(r.defs))
	r.lessons = make(map[string]lessonRef)
	r.challenges = make(map[string]challengeRef)

	epochs := make([]Epoch, 0, len(r.defs))
	for ei, def := range r.defs {
		if def.ID == "" || def.Title == "" {
			return nil, newError(KindInvalidIdentity, def.ID, "epoch %d needs an id and a title", ei+1)
		}
		if _, dup := r.byEpoch[def.ID]; dup {
			return nil, newError(KindDuplicateEpochID, def.ID, "epoch id defined twice")
		}
		r.byEpoch[def.ID] = ei

		epoch := Epoch{
			id:                  def.ID,
			title:               def.Title,
			description:         def.Description,
			expectedLessonCount: def.ExpectedLessonCount,
			lessons:             make([]Lesson, 0, len(def.Lessons)),
		}
		for li, fn := range def.Lessons {
			lesson, err := fn()
			if err != nil {
				return nil, fmt.Errorf("epoch %s lesson %d: %w", def.ID, li+1, err)
			}
			if lesson.id == "" {
				return nil, newError(KindInvalidIdentity, def.ID, "lesson %d was not built", li+1)
			}
			if prev, dup := r.lessons[lesson.id]; dup {
				return nil, newError(KindDuplicateLessonID, lesson.id,
					"defined in %s and %s", r.defs[prev.epoch].ID, def.ID)
			}
			r.lessons[lesson.id] = lessonRef{epoch: ei, lesson: li}

			for ci, c := range lesson.challenges {
				if prev, dup := r.challenges[c.id]; dup {
					return nil, newError(KindDuplicateChallengeID, c.id,
						"used in lessons %s and %s", prev.lessonID, lesson.id)
				}
				r.challenges[c.id] = challengeRef{
					lessonRef: lessonRef{epoch: ei, lesson: li},
					challenge: ci,
					lessonID:  lesson.id,
				}
			}
			epoch.lessons = append(epoch.lessons, lesson)
		}
		epochs = append(epochs, epoch)
	}
	return epochs, nil
}
