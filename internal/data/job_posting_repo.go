package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lodestone-games/studio-site/internal/data/pgxutil"
	"github.com/lodestone-games/studio-site/internal/domain/model"
)

const jobPostingColumns = `id, slug, title, team, location, description, open, created_at, updated_at`

const (
	jobPostingGetByIDQuery   = `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE id = $1`
	jobPostingGetBySlugQuery = `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE slug = $1`
	jobPostingListQuery      = `SELECT ` + jobPostingColumns + ` FROM job_postings
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	jobPostingListOpenQuery = `SELECT ` + jobPostingColumns + ` FROM job_postings
		WHERE open ORDER BY created_at DESC LIMIT $1 OFFSET $2`
)

// JobPostingRepo provides database operations for job postings.
type JobPostingRepo struct {
	DB *sql.DB
}

// NewJobPostingRepo creates a new JobPostingRepo.
func NewJobPostingRepo(db *sql.DB) *JobPostingRepo {
	return &JobPostingRepo{DB: db}
}

// Create inserts a new job posting.
func (r *JobPostingRepo) Create(ctx context.Context, req *model.CreateJobPostingRequest) (*model.JobPosting, error) {
	if req == nil {
		return nil, errors.New("create job posting request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Default open to true if not specified (matches DB default)
	open := true
	if req.Open != nil {
		open = *req.Open
	}

	var out model.JobPosting
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO job_postings (
				slug, title, team, location, description, open
			) VALUES (
				$1, $2, $3, $4, $5, $6
			) RETURNING `+jobPostingColumns,
			req.Slug,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Team),
			strings.TrimSpace(req.Location),
			req.Description,
			open,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a job posting by ID.
func (r *JobPostingRepo) GetByID(ctx context.Context, id string) (*model.JobPosting, error) {
	return r.getByQuery(ctx, jobPostingGetByIDQuery, "failed to get job posting by ID", id)
}

// GetBySlug retrieves a job posting by slug.
func (r *JobPostingRepo) GetBySlug(ctx context.Context, slug string) (*model.JobPosting, error) {
	return r.getByQuery(ctx, jobPostingGetBySlugQuery, "failed to get job posting by slug", slug)
}

// List retrieves job postings with pagination, newest first, closed included.
func (r *JobPostingRepo) List(ctx context.Context, limit, offset int) ([]*model.JobPosting, error) {
	return r.listByQuery(ctx, jobPostingListQuery, limit, offset)
}

// ListOpen retrieves open job postings with pagination, newest first.
func (r *JobPostingRepo) ListOpen(ctx context.Context, limit, offset int) ([]*model.JobPosting, error) {
	return r.listByQuery(ctx, jobPostingListOpenQuery, limit, offset)
}

// Update applies a partial update to a job posting.
func (r *JobPostingRepo) Update(ctx context.Context, id string, req model.UpdateJobPostingRequest) (*model.JobPosting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := buildJobPostingUpdateClause(req)
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE job_postings SET %s WHERE id = $%d RETURNING %s`,
		setClause, len(args), jobPostingColumns,
	)

	var out model.JobPosting
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete removes a job posting by ID. Returns false when no row matched.
func (r *JobPostingRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job posting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func buildJobPostingUpdateClause(req model.UpdateJobPostingRequest) (string, []any) {
	setParts := make([]string, 0, 7)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Slug != nil {
		setParts = append(setParts, fmt.Sprintf("slug = $%d", nextIdx()))
		args = append(args, *req.Slug)
	}
	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Team != nil {
		setParts = append(setParts, fmt.Sprintf("team = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Team))
	}
	if req.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Location))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Open != nil {
		setParts = append(setParts, fmt.Sprintf("open = $%d", nextIdx()))
		args = append(args, *req.Open)
	}
	setParts = append(setParts, "updated_at = now()")
	return strings.Join(setParts, ", "), args
}

func (r *JobPostingRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.JobPosting, error) {
	var posting model.JobPosting
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		posting, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobPostingNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &posting, nil
}

func (r *JobPostingRepo) listByQuery(ctx context.Context, q string, limit, offset int) ([]*model.JobPosting, error) {
	limit, offset = normalizePage(limit, offset)

	var rowsOut []model.JobPosting
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	res := make([]*model.JobPosting, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *JobPostingRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrJobPostingNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrJobPostingSlugExists
	}
	return err
}
