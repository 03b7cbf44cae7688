// Package assignment links professionals to jobs while capping how many applications a job
// receives per UTC calendar day.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"juggle-backend/internal/model"
)

// DefaultDailyLimit is the number of applications a job accepts per UTC day.
const DefaultDailyLimit = 5

// LimitReachedMessage is the client-facing message for ErrApplicationLimitReached.
const LimitReachedMessage = "The limit of applications for the current job was reached. Please try again tomorrow."

var (
	// ErrNotFound is matched by both not-found errors below.
	ErrNotFound = errors.New("not found")
	// ErrJobNotFound means the target job does not exist.
	ErrJobNotFound = fmt.Errorf("job %w", ErrNotFound)
	// ErrProfessionalNotFound means the applying professional does not exist.
	ErrProfessionalNotFound = fmt.Errorf("professional %w", ErrNotFound)
	// ErrApplicationLimitReached means the job already has its daily quota of applications.
	ErrApplicationLimitReached = errors.New(LimitReachedMessage)
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs the logger used by this package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Tx is the store view available inside one assignment transaction.
type Tx interface {
	// LockJob takes an exclusive lock on the job row until the transaction ends.
	// It returns ErrJobNotFound when the job does not exist.
	LockJob(ctx context.Context, jobID uint) error
	// CheckProfessional returns ErrProfessionalNotFound when the professional does not exist.
	CheckProfessional(ctx context.Context, professionalID uint) error
	// Now reads the store clock.
	Now(ctx context.Context) (time.Time, error)
	// CountApplications counts applications to jobID created in [from, to).
	CountApplications(ctx context.Context, jobID uint, from, to time.Time) (int64, error)
	// InsertApplication stores a new application created at createdAt.
	InsertApplication(ctx context.Context, professionalID, jobID uint, createdAt time.Time) (model.Application, error)
}

// Store runs fn in a transaction that commits when fn returns nil and rolls back otherwise.
type Store interface {
	WithinTransaction(ctx context.Context, fn func(tx Tx) error) error
}

// Assigner applies professionals to jobs.
type Assigner struct {
	store Store
	limit int
}

// NewAssigner returns an Assigner enforcing limit applications per job per day.
// A non-positive limit falls back to DefaultDailyLimit.
func NewAssigner(store Store, limit int) *Assigner {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Assigner{store: store, limit: limit}
}

// DayWindow returns the UTC calendar day containing t as [start, end).
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Apply links the professional to the job. The job row stays locked from the count to the
// insert, so concurrent calls for one job never exceed the cap. Re-applying is allowed and
// counts again.
func (a *Assigner) Apply(ctx context.Context, professionalID, jobID uint) (model.Application, error) {
	var app model.Application
	var count int64

	err := a.store.WithinTransaction(ctx, func(tx Tx) error {
		if err := tx.LockJob(ctx, jobID); err != nil {
			return err
		}
		if err := tx.CheckProfessional(ctx, professionalID); err != nil {
			return err
		}

		now, err := tx.Now(ctx)
		if err != nil {
			return fmt.Errorf("read store clock: %w", err)
		}
		from, to := DayWindow(now)

		count, err = tx.CountApplications(ctx, jobID, from, to)
		if err != nil {
			return fmt.Errorf("count applications: %w", err)
		}
		if count >= int64(a.limit) {
			return ErrApplicationLimitReached
		}

		app, err = tx.InsertApplication(ctx, professionalID, jobID, now)
		if err != nil {
			return fmt.Errorf("insert application: %w", err)
		}
		return nil
	})

	attrs := []any{"job_id", jobID, "professional_id", professionalID, "count", count}
	switch {
	case err == nil:
		logger.Info("application created", append(attrs, "application_id", app.ID)...)
	case errors.Is(err, ErrApplicationLimitReached):
		logger.Info("application rejected, daily limit reached", attrs...)
	case errors.Is(err, ErrNotFound):
		logger.Debug("application target missing", append(attrs, "error", err)...)
	default:
		logger.Error("application failed", append(attrs, "error", err)...)
	}

	if err != nil {
		return model.Application{}, err
	}
	return app, nil
}
