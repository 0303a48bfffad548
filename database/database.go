package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/mbolis/survei-haji/model"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// brings its schema up to date.
func OpenSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return nil, err
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	sub.ID = newSubmissionID()
	sub.CreatedAt = time.Now().UTC()

	doc, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO surveys (id, created_at, document) VALUES (?, ?, ?)",
		sub.ID,
		sub.CreatedAt.UnixNano(),
		doc,
	)
	return sqliteErr(err)
}

func (s *sqliteStore) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT document FROM surveys ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, sqliteErr(err)
	}
	defer rows.Close()

	subs := []model.Submission{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}

		var sub model.Submission
		if err := json.Unmarshal(doc, &sub); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *sqliteStore) GetSubmission(ctx context.Context, id string) (sub model.Submission, err error) {
	var doc []byte
	err = s.db.
		QueryRowContext(ctx, "SELECT document FROM surveys WHERE id = ?", id).
		Scan(&doc)
	if err != nil {
		return sub, sqliteErr(err)
	}

	err = json.Unmarshal(doc, &sub)
	return
}

func (s *sqliteStore) DeleteSubmission(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM surveys WHERE id = ?", id)
	if err != nil {
		return sqliteErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) ReadConfig(ctx context.Context) (cfg model.QuestionConfig, version int, err error) {
	var doc []byte
	err = s.db.
		QueryRowContext(ctx, "SELECT version, document FROM config WHERE id = ?", configID).
		Scan(&version, &doc)
	if err != nil {
		err = sqliteErr(err)
		return
	}

	err = json.Unmarshal(doc, &cfg)
	return
}

func (s *sqliteStore) WriteConfig(ctx context.Context, cfg model.QuestionConfig, version int) (int, error) {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return 0, err
	}

	var row *sql.Row
	if version == 0 {
		row = s.db.QueryRowContext(ctx, `
			INSERT INTO config (id, version, document) VALUES (?, 1, ?)
			ON CONFLICT (id) DO UPDATE
				SET version = config.version + 1, document = excluded.document
			RETURNING version`,
			configID,
			doc,
		)
	} else {
		row = s.db.QueryRowContext(ctx, `
			UPDATE config
			SET version = version + 1, document = ?
			WHERE id = ? AND version = ?
			RETURNING version`,
			doc,
			configID,
			version,
		)
	}

	var next int
	err = row.Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrConflict
	}
	if err != nil {
		return 0, sqliteErr(err)
	}
	return next, nil
}

func (s *sqliteStore) SaveToken(ctx context.Context, credential, tokenID, refreshTokenID string, expiration time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO token (username, token_id, refresh_token_id, expiration) VALUES (?, ?, ?, ?)",
		credential,
		tokenID,
		refreshTokenID,
		expiration.Unix(),
	)
	return sqliteErr(err)
}

func (s *sqliteStore) ConsumeToken(ctx context.Context, credential, tokenID, refreshTokenID string) (time.Time, error) {
	var expiration int64
	err := s.db.
		QueryRowContext(ctx, `
			DELETE FROM token
			WHERE username = ?
				AND token_id = ?
				AND refresh_token_id = ?
			RETURNING expiration`,
			credential,
			tokenID,
			refreshTokenID,
		).
		Scan(&expiration)
	if err != nil {
		return time.Time{}, sqliteErr(err)
	}
	return time.Unix(expiration, 0), nil
}

func sqliteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.Code {
		case sqlite3.ErrReadonly, sqlite3.ErrPerm, sqlite3.ErrAuth, sqlite3.ErrCantOpen:
			return errors.Join(ErrPermission, err)
		}
	}
	return err
}
