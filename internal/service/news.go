package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lodestone-games/studio-site/internal/core"
	"github.com/lodestone-games/studio-site/internal/domain/model"
)

const publishedNewsCacheKey = "news:published"

// publishedCacheSpan is how many posts a cache fill fetches. It matches the
// largest first page the public handler serves, so one entry covers every
// offset-0 request regardless of the limit that triggered the fill.
const publishedCacheSpan = 100

// NewsServiceOptions groups dependencies for NewsService.
type NewsServiceOptions struct {
	NewsRepo core.NewsRepository
	Cache    core.CacheRepository
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// NewsService orchestrates news post CRUD with a cached published listing.
type NewsService struct {
	news     core.NewsRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewNewsService constructs a new NewsService. Cache is optional; without it
// every published listing hits the database.
func NewNewsService(opts NewsServiceOptions) *NewsService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsService{
		news:     opts.NewsRepo,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger.With("component", "news_service"),
	}
}

// Create creates a news post and invalidates the published cache.
func (s *NewsService) Create(ctx context.Context, req *model.CreateNewsPostRequest) (*model.NewsPost, error) {
	post, err := s.news.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidatePublished(ctx)
	return post, nil
}

// Update updates a news post and invalidates the published cache.
func (s *NewsService) Update(ctx context.Context, id string, req model.UpdateNewsPostRequest) (*model.NewsPost, error) {
	post, err := s.news.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidatePublished(ctx)
	return post, nil
}

// Delete deletes a news post and invalidates the published cache.
func (s *NewsService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.news.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.invalidatePublished(ctx)
	return ok, nil
}

// GetByID retrieves a news post by ID.
func (s *NewsService) GetByID(ctx context.Context, id string) (*model.NewsPost, error) {
	return s.news.GetByID(ctx, id)
}

// GetBySlug retrieves a news post by slug.
func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*model.NewsPost, error) {
	return s.news.GetBySlug(ctx, slug)
}

// List returns a page of news posts, drafts included.
func (s *NewsService) List(ctx context.Context, limit, offset int) ([]*model.NewsPost, error) {
	return s.news.List(ctx, limit, offset)
}

// ListPublished returns a page of published news posts. The default page is
// served from cache when available; cache failures fall through to the
// database.
func (s *NewsService) ListPublished(ctx context.Context, limit, offset int) ([]*model.NewsPost, error) {
	if s.cache == nil || offset != 0 || limit > publishedCacheSpan {
		return s.news.ListPublished(ctx, limit, offset)
	}

	if posts, ok := s.cachedPublished(ctx, limit); ok {
		return posts, nil
	}

	// Fill with the full span rather than the requested page size so a
	// small-limit request cannot prime a short entry that later, larger
	// requests would be served from.
	posts, err := s.news.ListPublished(ctx, publishedCacheSpan, 0)
	if err != nil {
		return nil, err
	}
	s.storePublished(ctx, posts)

	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *NewsService) cachedPublished(ctx context.Context, limit int) ([]*model.NewsPost, bool) {
	raw, err := s.cache.Get(ctx, publishedNewsCacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "published news cache read failed", "err", err)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var posts []*model.NewsPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		s.logger.WarnContext(ctx, "published news cache entry malformed", "err", err)
		s.invalidatePublished(ctx)
		return nil, false
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, true
}

func (s *NewsService) storePublished(ctx context.Context, posts []*model.NewsPost) {
	raw, err := json.Marshal(posts)
	if err != nil {
		s.logger.WarnContext(ctx, "published news cache encode failed", "err", err)
		return
	}
	if err := s.cache.Set(ctx, publishedNewsCacheKey, raw, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "published news cache write failed", "err", err)
	}
}

func (s *NewsService) invalidatePublished(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, publishedNewsCacheKey); err != nil {
		s.logger.WarnContext(ctx, "published news cache invalidation failed",
			"err", fmt.Errorf("delete %s: %w", publishedNewsCacheKey, err))
	}
}
