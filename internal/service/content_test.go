package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trungle-dev/content-planner/internal/domain"
)

func TestContentService_Create(t *testing.T) {
	ctx := context.Background()
	workspaceID := uuid.New()
	ws := &domain.Workspace{ID: workspaceID}

	t.Run("applies defaults and invalidates the cache", func(t *testing.T) {
		contentRepo := new(MockContentStore)
		workspaceRepo := new(MockWorkspaceStore)
		cache := new(MockReportCache)
		svc := NewContentService(contentRepo, workspaceRepo, cache)

		workspaceRepo.On("GetByID", ctx, workspaceID).Return(ws, nil)
		contentRepo.On("Create", ctx, mock.AnythingOfType("*domain.ContentItem")).Return(nil)
		cache.On("Invalidate", ctx, workspaceID).Return(nil)

		item, err := svc.Create(ctx, &domain.ContentCreate{
			WorkspaceID: workspaceID,
			Title:       "Bài viết",
			FunnelStage: domain.StageAwareness,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.FormatImagePost, item.Format)
		assert.Equal(t, domain.StatusDraft, item.Status)
		assert.False(t, item.ScheduledDate.IsZero())
		cache.AssertCalled(t, "Invalidate", ctx, workspaceID)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		contentRepo := new(MockContentStore)
		workspaceRepo := new(MockWorkspaceStore)
		svc := NewContentService(contentRepo, workspaceRepo, nil)

		workspaceRepo.On("GetByID", ctx, workspaceID).Return(nil, nil)

		_, err := svc.Create(ctx, &domain.ContentCreate{WorkspaceID: workspaceID, Title: "x", FunnelStage: domain.StageAwareness})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		contentRepo.AssertNotCalled(t, "Create")
	})
}

func TestContentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	workspaceID := uuid.New()
	existing := &domain.ContentItem{ID: id, WorkspaceID: workspaceID, Title: "old", Status: domain.StatusDraft}

	t.Run("partial update round-trips through the store", func(t *testing.T) {
		contentRepo := new(MockContentStore)
		cache := new(MockReportCache)
		svc := NewContentService(contentRepo, new(MockWorkspaceStore), cache)

		newStatus := domain.StatusPublished
		update := &domain.ContentUpdate{Status: &newStatus}
		updated := &domain.ContentItem{ID: id, WorkspaceID: workspaceID, Title: "old", Status: newStatus}

		contentRepo.On("GetByID", ctx, id).Return(existing, nil).Once()
		contentRepo.On("Update", ctx, id, update).Return(nil)
		cache.On("Invalidate", ctx, workspaceID).Return(nil)
		contentRepo.On("GetByID", ctx, id).Return(updated, nil).Once()

		item, err := svc.Update(ctx, id, update)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, item.Status)
		cache.AssertCalled(t, "Invalidate", ctx, workspaceID)
	})

	t.Run("missing item", func(t *testing.T) {
		contentRepo := new(MockContentStore)
		svc := NewContentService(contentRepo, new(MockWorkspaceStore), nil)

		contentRepo.On("GetByID", ctx, id).Return(nil, nil)

		_, err := svc.Update(ctx, id, &domain.ContentUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		contentRepo.AssertNotCalled(t, "Update")
	})
}

func TestContentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	workspaceID := uuid.New()

	t.Run("deletes and invalidates", func(t *testing.T) {
		contentRepo := new(MockContentStore)
		cache := new(MockReportCache)
		svc := NewContentService(contentRepo, new(MockWorkspaceStore), cache)

		contentRepo.On("GetByID", ctx, id).Return(&domain.ContentItem{ID: id, WorkspaceID: workspaceID}, nil)
		contentRepo.On("Delete", ctx, id).Return(nil)
		cache.On("Invalidate", ctx, workspaceID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, id))
		cache.AssertCalled(t, "Invalidate", ctx, workspaceID)
	})

	t.Run("missing item", func(t *testing.T) {
		contentRepo := new(MockContentStore)
		svc := NewContentService(contentRepo, new(MockWorkspaceStore), nil)

		contentRepo.On("GetByID", ctx, id).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, id), domain.ErrNotFound)
		contentRepo.AssertNotCalled(t, "Delete")
	})
}

func TestContentService_List(t *testing.T) {
	ctx := context.Background()
	contentRepo := new(MockContentStore)
	svc := NewContentService(contentRepo, new(MockWorkspaceStore), nil)

	scheduled := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	expected := []domain.ContentItem{{Title: "a", ScheduledDate: scheduled}}
	contentRepo.On("List", ctx, (*uuid.UUID)(nil)).Return(expected, nil)

	items, err := svc.List(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
}
