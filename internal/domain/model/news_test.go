package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewsPostRequest_Validate(t *testing.T) {
	valid := func() CreateNewsPostRequest {
		return CreateNewsPostRequest{Slug: "launch-day", Title: "Launch Day", Body: "<p>We shipped.</p>"}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
	})

	t.Run("slug normalized", func(t *testing.T) {
		req := valid()
		req.Slug = "  Launch-Day "
		require.NoError(t, req.Validate())
		assert.Equal(t, "launch-day", req.Slug)
	})

	tests := []struct {
		name   string
		mutate func(*CreateNewsPostRequest)
	}{
		{"missing slug", func(r *CreateNewsPostRequest) { r.Slug = "" }},
		{"slug with spaces", func(r *CreateNewsPostRequest) { r.Slug = "launch day" }},
		{"slug with leading hyphen", func(r *CreateNewsPostRequest) { r.Slug = "-launch" }},
		{"missing title", func(r *CreateNewsPostRequest) { r.Title = "  " }},
		{"title too long", func(r *CreateNewsPostRequest) { r.Title = strings.Repeat("x", 256) }},
		{"missing body", func(r *CreateNewsPostRequest) { r.Body = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestUpdateNewsPostRequest_Validate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		var req UpdateNewsPostRequest
		assert.Error(t, req.Validate())
	})

	t.Run("publish flag alone", func(t *testing.T) {
		published := true
		req := UpdateNewsPostRequest{Published: &published}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		title := " "
		req := UpdateNewsPostRequest{Title: &title}
		assert.Error(t, req.Validate())
	})
}

func TestDeriveExcerpt(t *testing.T) {
	t.Run("strips markup", func(t *testing.T) {
		got := DeriveExcerpt(`<h1>Big News</h1><p>We are <strong>hiring</strong>.</p>`)
		assert.Equal(t, "Big News We are hiring .", got)
	})

	t.Run("drops script and style content", func(t *testing.T) {
		got := DeriveExcerpt(`<p>Hello</p><script>alert("x")</script><style>p{}</style><p>world</p>`)
		assert.Equal(t, "Hello world", got)
	})

	t.Run("truncates long bodies", func(t *testing.T) {
		got := DeriveExcerpt("<p>" + strings.Repeat("word ", 200) + "</p>")
		assert.LessOrEqual(t, len([]rune(got)), excerptMaxRunes+1)
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "Just text.", DeriveExcerpt("Just text."))
	})
}
