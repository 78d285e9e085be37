package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lodestone-games/studio-site/internal/domain/model"
	"github.com/lodestone-games/studio-site/internal/mocks"
)

func TestContactService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactRepository(ctrl)

	req := &model.CreateContactMessageRequest{
		Name:    "Sam Player",
		Email:   "sam@example.com",
		Subject: "Press inquiry",
		Body:    "Hello!",
	}
	msg := &model.ContactMessage{
		ID:        "7b9f7a58-6ad0-4f4e-9f0a-1f2d3c4b5a69",
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	repo.EXPECT().Create(gomock.Any(), req).Return(msg, nil)

	svc := NewContactService(ContactServiceOptions{ContactRepo: repo})
	got, err := svc.Submit(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestContactService_Submit_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactRepository(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	svc := NewContactService(ContactServiceOptions{ContactRepo: repo})
	_, err := svc.Submit(t.Context(), &model.CreateContactMessageRequest{})
	require.Error(t, err)
}

func TestContactService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactRepository(ctrl)

	msgs := []*model.ContactMessage{{ID: "a"}, {ID: "b"}}
	repo.EXPECT().List(gomock.Any(), 25, 0).Return(msgs, nil)
	repo.EXPECT().Delete(gomock.Any(), "a").Return(true, nil)

	svc := NewContactService(ContactServiceOptions{ContactRepo: repo})

	got, err := svc.List(t.Context(), 25, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	ok, err := svc.Delete(t.Context(), "a")
	require.NoError(t, err)
	assert.True(t, ok)
}
