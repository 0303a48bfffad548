package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbolis/survei-haji/model"
)

const configID = "questions"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a versioned config overwrite lost the race.
	ErrConflict = errors.New("version conflict")
	// ErrPermission is returned when the backing store rejected the operation.
	ErrPermission = errors.New("permission denied")
)

// Store is the backing document store: append-only submissions, the
// singleton question configuration and refresh tokens.
type Store interface {
	// CreateSubmission assigns ID and CreatedAt and appends the record.
	CreateSubmission(ctx context.Context, sub *model.Submission) error
	// ListSubmissions returns every submission, newest first.
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	GetSubmission(ctx context.Context, id string) (model.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error

	ReadConfig(ctx context.Context) (cfg model.QuestionConfig, version int, err error)
	// WriteConfig overwrites the whole document. Version 0 overwrites
	// unconditionally; otherwise the stored version must match.
	WriteConfig(ctx context.Context, cfg model.QuestionConfig, version int) (int, error)

	SaveToken(ctx context.Context, credential, tokenID, refreshTokenID string, expiration time.Time) error
	// ConsumeToken deletes a refresh token and returns its expiration.
	ConsumeToken(ctx context.Context, credential, tokenID, refreshTokenID string) (time.Time, error)

	Close() error
}

// Open connects to MongoDB for mongodb:// URLs, to a SQLite file otherwise.
func Open(ctx context.Context, url string) (Store, error) {
	if strings.HasPrefix(url, "mongodb://") || strings.HasPrefix(url, "mongodb+srv://") {
		return OpenMongo(ctx, url)
	}
	return OpenSQLite(url)
}

func newSubmissionID() string {
	return uuid.NewString()
}
