package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"course_leads_backend/models"
)

// ErrNotFound is returned when an update targets an id with no row.
var ErrNotFound = errors.New("row not found")

// Store runs exactly one statement per call against the database.
type Store interface {
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id *int64, req models.UpdateCourseRequest) (*models.Course, error)

	CreateLead(ctx context.Context, courseID *int64, req models.CreateLeadRequest) (*models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id *int64, req models.UpdateLeadStatusRequest) (*models.Lead, error)
	SearchLeads(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error)

	CreateComment(ctx context.Context, leadID *int64, req models.CreateCommentRequest) (*models.Comment, error)
}

type store struct {
	db *sqlx.DB
}

// New returns a Store backed by db. A nil id passed to any method is bound as
// NULL.
func New(db *sqlx.DB) Store {
	return &store{db: db}
}

// getOne runs a single-row RETURNING statement and scans it into dest.
func (s *store) getOne(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := s.db.QueryRowxContext(ctx, query, args...).StructScan(dest)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
