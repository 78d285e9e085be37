package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/domain/model"
	"github.com/lodestone-games/studio-site/internal/mocks"
	mockauth "github.com/lodestone-games/studio-site/internal/mocks/auth"
	"github.com/lodestone-games/studio-site/internal/service"
)

type routerFixture struct {
	handler http.Handler
	codec   *mockauth.MockTokenCodec
	news    *mocks.MockNewsRepository
	jobs    *mocks.MockJobPostingRepository
	contact *mocks.MockContactRepository
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	codec := mockauth.NewMockTokenCodec()
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewMockIdentityProvider(),
		Codec:    codec,
		GuildID:  "GUILD1",
	})

	newsRepo := mocks.NewMockNewsRepository(ctrl)
	jobsRepo := mocks.NewMockJobPostingRepository(ctrl)
	contactRepo := mocks.NewMockContactRepository(ctrl)

	handler := NewRouter(RouterServices{
		Auth:    authSvc,
		News:    service.NewNewsService(service.NewsServiceOptions{NewsRepo: newsRepo}),
		Jobs:    service.NewJobPostingService(service.JobPostingServiceOptions{JobRepo: jobsRepo}),
		Contact: service.NewContactService(service.ContactServiceOptions{ContactRepo: contactRepo}),
	})

	return &routerFixture{
		handler: handler,
		codec:   codec,
		news:    newsRepo,
		jobs:    jobsRepo,
		contact: contactRepo,
	}
}

func (f *routerFixture) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := f.codec.Issue(domainauth.Principal{ID: "discord-555", IsAdmin: true})
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_AdminRoutesGated(t *testing.T) {
	f := newRouterFixture(t)

	adminRoutes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/admin/news"},
		{http.MethodPost, "/api/admin/news"},
		{http.MethodDelete, "/api/admin/news/n1"},
		{http.MethodGet, "/api/admin/jobs"},
		{http.MethodGet, "/api/admin/contact"},
		{http.MethodDelete, "/api/admin/contact/c1"},
	}

	for _, route := range adminRoutes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, httptest.NewRequest(route.method, route.target, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "no cookie")

			r := httptest.NewRequest(route.method, route.target, nil)
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "mock:bogus"})
			rec = httptest.NewRecorder()
			f.handler.ServeHTTP(rec, r)
			assert.Equal(t, http.StatusForbidden, rec.Code, "forged token")
		})
	}
}

func TestRouter_AdminRouteWithValidSession(t *testing.T) {
	f := newRouterFixture(t)
	f.news.EXPECT().List(gomock.Any(), 20, 0).Return([]*model.NewsPost{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/admin/news", nil)
	r.AddCookie(f.adminCookie(t))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicRoutesOpen(t *testing.T) {
	f := newRouterFixture(t)
	f.news.EXPECT().ListPublished(gomock.Any(), 20, 0).Return([]*model.NewsPost{}, nil)
	f.jobs.EXPECT().ListOpen(gomock.Any(), 20, 0).Return([]*model.JobPosting{}, nil)

	for _, target := range []string{"/api/news", "/api/jobs"} {
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}
