package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 30 * time.Second

const schemaSQL = `
CREATE TABLE IF NOT EXISTS curriculum_snapshots (
	fingerprint  TEXT PRIMARY KEY,
	payload      JSONB NOT NULL,
	published_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS curriculum_epochs (
	fingerprint           TEXT NOT NULL REFERENCES curriculum_snapshots(fingerprint) ON DELETE CASCADE,
	id                    TEXT NOT NULL,
	position              INT  NOT NULL,
	title                 TEXT NOT NULL,
	description           TEXT NOT NULL,
	expected_lesson_count INT  NOT NULL,
	PRIMARY KEY (fingerprint, id)
);
CREATE TABLE IF NOT EXISTS curriculum_lessons (
	fingerprint       TEXT NOT NULL REFERENCES curriculum_snapshots(fingerprint) ON DELETE CASCADE,
	id                TEXT NOT NULL,
	epoch_id          TEXT NOT NULL,
	position          INT  NOT NULL,
	title             TEXT NOT NULL,
	estimated_minutes INT  NOT NULL,
	PRIMARY KEY (fingerprint, id)
);
CREATE TABLE IF NOT EXISTS curriculum_challenges (
	fingerprint    TEXT NOT NULL REFERENCES curriculum_snapshots(fingerprint) ON DELETE CASCADE,
	id             TEXT NOT NULL,
	lesson_id      TEXT NOT NULL,
	position       INT  NOT NULL,
	title          TEXT NOT NULL,
	correct_answer TEXT NOT NULL,
	PRIMARY KEY (fingerprint, id)
);`

// PostgresPublisher writes snapshots into the curriculum_* tables.
type PostgresPublisher struct {
	pool *pgxpool.Pool
}

// NewPostgresPublisher creates the tables if needed.
func NewPostgresPublisher(ctx context.Context, pool *pgxpool.Pool) (*PostgresPublisher, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("create curriculum tables: %w", err)
	}
	return &PostgresPublisher{pool: pool}, nil
}

// Publish inserts the snapshot and its rows in one transaction. A fingerprint
// that already exists is left untouched.
func (p *PostgresPublisher) Publish(ctx context.Context, snap Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin publish: %w", err)
	}
	defer tx.Rollback(ctx)

	var inserted string
	err = tx.QueryRow(ctx,
		`INSERT INTO curriculum_snapshots (fingerprint, payload)
		 VALUES ($1, $2::jsonb)
		 ON CONFLICT (fingerprint) DO NOTHING
		 RETURNING fingerprint`,
		snap.Fingerprint,
		string(snap.Payload),
	).Scan(&inserted)
	if errors.Is(err, pgx.ErrNoRows) {
		slog.Info("curriculum snapshot already published", "fingerprint", snap.Fingerprint)
		return nil
	}
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	var lessonRows, challengeRows [][]any
	for ei, e := range snap.Epochs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO curriculum_epochs (fingerprint, id, position, title, description, expected_lesson_count)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			snap.Fingerprint, e.ID(), ei, e.Title(), e.Description(), e.ExpectedLessonCount(),
		); err != nil {
			return fmt.Errorf("insert epoch %s: %w", e.ID(), err)
		}
		for li, l := range e.Lessons() {
			lessonRows = append(lessonRows, []any{snap.Fingerprint, l.ID(), e.ID(), li, l.Title(), l.EstimatedMinutes()})
			for ci, c := range l.Challenges() {
				challengeRows = append(challengeRows, []any{snap.Fingerprint, c.ID(), l.ID(), ci, c.Title(), string(c.CorrectAnswer())})
			}
		}
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"curriculum_lessons"},
		[]string{"fingerprint", "id", "epoch_id", "position", "title", "estimated_minutes"},
		pgx.CopyFromRows(lessonRows),
	); err != nil {
		return fmt.Errorf("copy lessons: %w", err)
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"curriculum_challenges"},
		[]string{"fingerprint", "id", "lesson_id", "position", "title", "correct_answer"},
		pgx.CopyFromRows(challengeRows),
	); err != nil {
		return fmt.Errorf("copy challenges: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}

	slog.Info("curriculum snapshot published",
		"store", "postgres",
		"fingerprint", snap.Fingerprint,
		"lessons", len(lessonRows),
		"challenges", len(challengeRows),
	)
	return nil
}
