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

const newsColumns = `id, slug, title, body, excerpt, published, published_at, created_at, updated_at`

const (
	newsGetByIDQuery   = `SELECT ` + newsColumns + ` FROM news_posts WHERE id = $1`
	newsGetBySlugQuery = `SELECT ` + newsColumns + ` FROM news_posts WHERE slug = $1`
	newsListQuery      = `SELECT ` + newsColumns + ` FROM news_posts
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	newsListPublishedQuery = `SELECT ` + newsColumns + ` FROM news_posts
		WHERE published ORDER BY published_at DESC LIMIT $1 OFFSET $2`
)

// NewsRepo provides database operations for news posts.
type NewsRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewNewsRepo creates a new NewsRepo with real time provider.
func NewNewsRepo(db *sql.DB) *NewsRepo {
	return &NewsRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewNewsRepoWithTimeProvider creates a new NewsRepo with a custom time provider (useful for tests).
func NewNewsRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *NewsRepo {
	return &NewsRepo{DB: db, timeProvider: tp}
}

// Create inserts a new news post. The excerpt is derived from the body.
func (r *NewsRepo) Create(ctx context.Context, req *model.CreateNewsPostRequest) (*model.NewsPost, error) {
	if req == nil {
		return nil, errors.New("create news post request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	published := false
	if req.Published != nil {
		published = *req.Published
	}

	now := r.timeProvider.Now().UTC()
	var out model.NewsPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO news_posts (
				slug, title, body, excerpt, published, published_at, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			) RETURNING `+newsColumns,
			req.Slug,
			strings.TrimSpace(req.Title),
			req.Body,
			model.DeriveExcerpt(req.Body),
			published,
			publishedAtFor(published, now),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewsPost])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a news post by ID.
func (r *NewsRepo) GetByID(ctx context.Context, id string) (*model.NewsPost, error) {
	return r.getByQuery(ctx, newsGetByIDQuery, "failed to get news post by ID", id)
}

// GetBySlug retrieves a news post by slug.
func (r *NewsRepo) GetBySlug(ctx context.Context, slug string) (*model.NewsPost, error) {
	return r.getByQuery(ctx, newsGetBySlugQuery, "failed to get news post by slug", slug)
}

// List retrieves news posts with pagination, newest first, drafts included.
func (r *NewsRepo) List(ctx context.Context, limit, offset int) ([]*model.NewsPost, error) {
	return r.listByQuery(ctx, newsListQuery, limit, offset)
}

// ListPublished retrieves published news posts with pagination, newest first.
func (r *NewsRepo) ListPublished(ctx context.Context, limit, offset int) ([]*model.NewsPost, error) {
	return r.listByQuery(ctx, newsListPublishedQuery, limit, offset)
}

// Update applies a partial update to a news post. Changing the body re-derives
// the excerpt; flipping published on stamps published_at.
func (r *NewsRepo) Update(ctx context.Context, id string, req model.UpdateNewsPostRequest) (*model.NewsPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE news_posts SET %s WHERE id = $%d RETURNING %s`,
		setClause, len(args), newsColumns,
	)

	var out model.NewsPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewsPost])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete removes a news post by ID. Returns false when no row matched.
func (r *NewsRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM news_posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete news post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a news post.
func (r *NewsRepo) buildUpdateClause(req model.UpdateNewsPostRequest) (string, []any) {
	setParts := make([]string, 0, 6)
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
	if req.Body != nil {
		setParts = append(setParts, fmt.Sprintf("body = $%d", nextIdx()))
		args = append(args, *req.Body)
		setParts = append(setParts, fmt.Sprintf("excerpt = $%d", nextIdx()))
		args = append(args, model.DeriveExcerpt(*req.Body))
	}
	if req.Published != nil {
		setParts = append(setParts, fmt.Sprintf("published = $%d", nextIdx()))
		args = append(args, *req.Published)
		if *req.Published {
			setParts = append(setParts, fmt.Sprintf("published_at = COALESCE(published_at, $%d)", nextIdx()))
			args = append(args, r.timeProvider.Now().UTC())
		}
	}
	setParts = append(setParts, "updated_at = now()")
	return strings.Join(setParts, ", "), args
}

// getByQuery executes a query expected to return a single news post.
func (r *NewsRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.NewsPost, error) {
	var post model.NewsPost
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		post, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.NewsPost])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &post, nil
}

func (r *NewsRepo) listByQuery(ctx context.Context, q string, limit, offset int) ([]*model.NewsPost, error) {
	limit, offset = normalizePage(limit, offset)

	var rowsOut []model.NewsPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.NewsPost])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list news posts: %w", err)
	}

	res := make([]*model.NewsPost, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *NewsRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrNewsNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrNewsSlugExists
	}
	return err
}
