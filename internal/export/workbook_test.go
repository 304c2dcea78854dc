package export_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/pai-curriculum/internal/content"
	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
	"github.com/p-n-ai/pai-curriculum/internal/export"
)

func TestWriteWorkbook(t *testing.T) {
	epochs, err := curriculum.NewRegistry(content.Epochs()...).Epochs()
	if err != nil {
		t.Fatalf("Epochs() error = %v", err)
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, epochs); err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	var lessons, challenges, quiz int
	for _, e := range epochs {
		for _, l := range e.Lessons() {
			lessons++
			challenges += len(l.Challenges())
			quiz += len(l.QuizQuestions())
		}
	}

	tests := []struct {
		sheet string
		want  int
	}{
		{export.SheetEpochs, len(epochs)},
		{export.SheetLessons, lessons},
		{export.SheetChallenges, challenges},
		{export.SheetQuiz, quiz},
	}
	for _, tt := range tests {
		rows, err := f.GetRows(tt.sheet)
		if err != nil {
			t.Fatalf("GetRows(%s) error = %v", tt.sheet, err)
		}
		if got := len(rows) - 1; got != tt.want {
			t.Errorf("%s data rows = %d, want %d", tt.sheet, got, tt.want)
		}
	}

	rows, _ := f.GetRows(export.SheetEpochs)
	if rows[1][0] != "epoch-0" {
		t.Errorf("first epoch row id = %q, want epoch-0", rows[1][0])
	}
}
