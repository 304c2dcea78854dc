// Package yamlsource reads additional epochs from *.epoch.yaml files. Each
// document is checked against a JSON Schema, then every lesson becomes a
// content-definition function that runs the builders when the registry loads.
package yamlsource

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
)

type epochDoc struct {
	ID                  string      `yaml:"id"`
	Title               string      `yaml:"title"`
	Description         string      `yaml:"description"`
	ExpectedLessonCount int         `yaml:"expected_lesson_count"`
	Lessons             []lessonDoc `yaml:"lessons"`
}

type lessonDoc struct {
	ID               string                    `yaml:"id"`
	Title            string                    `yaml:"title"`
	EstimatedMinutes int                       `yaml:"estimated_minutes"`
	Blocks           []curriculum.ContentBlock `yaml:"blocks"`
	Challenges       []challengeDoc            `yaml:"challenges"`
	Quiz             []quizDoc                 `yaml:"quiz"`
}

type challengeDoc struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Type          string   `yaml:"type"`
	Description   string   `yaml:"description"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correct_answer"`
}

type quizDoc struct {
	Prompt      string `yaml:"prompt"`
	Correct     string `yaml:"correct"`
	Explanation string `yaml:"explanation"`
	Choices     []struct {
		Key  string `yaml:"key"`
		Text string `yaml:"text"`
	} `yaml:"choices"`
}

// Loader reads epoch documents from a directory tree.
type Loader struct {
	rootDir string
	schema  *gojsonschema.Schema
}

// NewLoader compiles the document schema for rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(epochSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling epoch schema: %w", err)
	}
	return &Loader{rootDir: rootDir, schema: schema}, nil
}

// Load returns one definition per *.epoch.yaml file, ordered by path. Any
// unreadable or invalid document fails the whole load.
func (l *Loader) Load() ([]curriculum.EpochDefinition, error) {
	var defs []curriculum.EpochDefinition
	err := filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isEpochFile(path) {
			return nil
		}
		def, err := l.loadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading yaml epochs: %w", err)
	}

	slog.Info("yaml epochs loaded", "dir", l.rootDir, "epochs", len(defs))
	return defs, nil
}

func isEpochFile(path string) bool {
	return strings.HasSuffix(path, ".epoch.yaml") || strings.HasSuffix(path, ".epoch.yml")
}

func (l *Loader) loadFile(path string) (curriculum.EpochDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return curriculum.EpochDefinition{}, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return curriculum.EpochDefinition{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := l.validate(raw); err != nil {
		return curriculum.EpochDefinition{}, err
	}

	var doc epochDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return curriculum.EpochDefinition{}, fmt.Errorf("decoding epoch: %w", err)
	}
	return doc.definition(), nil
}

func (l *Loader) validate(raw map[string]any) error {
	result, err := l.schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("validating schema: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
}

func (d epochDoc) definition() curriculum.EpochDefinition {
	def := curriculum.EpochDefinition{
		ID:                  d.ID,
		Title:               d.Title,
		Description:         d.Description,
		ExpectedLessonCount: d.ExpectedLessonCount,
	}
	for _, ld := range d.Lessons {
		def.Lessons = append(def.Lessons, ld.build)
	}
	return def
}

func (d lessonDoc) build() (curriculum.Lesson, error) {
	b := curriculum.NewLessonBuilder(d.ID, d.Title).EstimatedMinutes(d.EstimatedMinutes)
	for _, blk := range d.Blocks {
		b.AddBlock(blk.Kind, blk.Heading, blk.Body)
	}
	for _, cd := range d.Challenges {
		c, err := cd.build()
		if err != nil {
			return curriculum.Lesson{}, err
		}
		b.AddChallenge(c)
	}
	for _, qd := range d.Quiz {
		q := curriculum.NewQuizQuestion(qd.Prompt, curriculum.AnswerKey(qd.Correct)).SetExplanation(qd.Explanation)
		for _, ch := range qd.Choices {
			q.AddChoice(curriculum.AnswerKey(ch.Key), ch.Text)
		}
		b.AddQuizQuestion(q)
	}
	return b.Build()
}

func (d challengeDoc) build() (curriculum.Challenge, error) {
	typ := curriculum.ChallengeType(d.Type)
	if typ == "" {
		typ = curriculum.ChallengeMultipleChoice
	}
	b := curriculum.NewChallengeBuilder(d.ID, d.Title, typ).
		Description(d.Description).
		CorrectAnswer(curriculum.AnswerKey(d.CorrectAnswer))
	for _, opt := range d.Options {
		b.AddMultipleChoiceOption(opt)
	}
	return b.Build()
}
