package assignment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"juggle-backend/internal/model"
)

// GormStore is the PostgreSQL Store.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore returns a Store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// WithinTransaction implements Store. gorm rolls back on error and on panic.
func (s *GormStore) WithinTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) LockJob(ctx context.Context, jobID uint) error {
	var job model.Job
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Take(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrJobNotFound
	}
	return err
}

func (t *gormTx) CheckProfessional(ctx context.Context, professionalID uint) error {
	var p model.Professional
	// FOR SHARE keeps the professional from being deleted before commit
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id").
		Take(&p, professionalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProfessionalNotFound
	}
	return err
}

func (t *gormTx) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	// clock_timestamp, unlike now(), is not frozen at transaction start
	if err := t.db.WithContext(ctx).Raw("SELECT clock_timestamp()").Row().Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now.UTC(), nil
}

func (t *gormTx) CountApplications(ctx context.Context, jobID uint, from, to time.Time) (int64, error) {
	var n int64
	err := t.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("job_id = ? AND created_at >= ? AND created_at < ?", jobID, from, to).
		Count(&n).Error
	return n, err
}

func (t *gormTx) InsertApplication(ctx context.Context, professionalID, jobID uint, createdAt time.Time) (model.Application, error) {
	app := model.Application{
		ProfessionalID: professionalID,
		JobID:          jobID,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
	err := t.db.WithContext(ctx).Create(&app).Error
	return app, err
}
