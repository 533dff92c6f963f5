package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/analytics"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// ReportCache holds computed reports keyed by workspace; a nil workspace id
// addresses the all-workspaces report.
type ReportCache interface {
	Get(ctx context.Context, workspaceID *uuid.UUID) (*analytics.Report, error)
	Set(ctx context.Context, workspaceID *uuid.UUID, report *analytics.Report) error
	Invalidate(ctx context.Context, workspaceID uuid.UUID) error
}

// ContentService handles content item operations
type ContentService struct {
	contentRepo   domain.ContentStore
	workspaceRepo domain.WorkspaceReader
	cache         ReportCache
}

// NewContentService creates a new content service
func NewContentService(contentRepo domain.ContentStore, workspaceRepo domain.WorkspaceReader, cache ReportCache) *ContentService {
	return &ContentService{
		contentRepo:   contentRepo,
		workspaceRepo: workspaceRepo,
		cache:         cache,
	}
}

// invalidateReports drops cached reports after a content write
func (s *ContentService) invalidateReports(ctx context.Context, workspaceID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, workspaceID); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate report cache")
	}
}

// Create creates a content item in a workspace
func (s *ContentService) Create(ctx context.Context, in *domain.ContentCreate) (*domain.ContentItem, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}

	format := in.Format
	if format == "" {
		format = domain.FormatImagePost
	}
	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}
	scheduled := in.ScheduledDate
	if scheduled.IsZero() {
		scheduled = time.Now()
	}

	now := time.Now()
	item := &domain.ContentItem{
		ID:            uuid.New(),
		WorkspaceID:   in.WorkspaceID,
		Title:         in.Title,
		Body:          in.Body,
		Format:        format,
		FunnelStage:   in.FunnelStage,
		Platform:      in.Platform,
		ScheduledDate: scheduled,
		Status:        status,
		AIImagePrompt: in.AIImagePrompt,
		Metadata:      in.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, in.WorkspaceID)
	return item, nil
}

// Get retrieves a content item
func (s *ContentService) Get(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	item, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List retrieves content items, optionally scoped to a workspace
func (s *ContentService) List(ctx context.Context, workspaceID *uuid.UUID) ([]domain.ContentItem, error) {
	return s.contentRepo.List(ctx, workspaceID)
}

// Update applies a partial update to a content item
func (s *ContentService) Update(ctx context.Context, id uuid.UUID, update *domain.ContentUpdate) (*domain.ContentItem, error) {
	existing, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.contentRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, existing.WorkspaceID)
	return s.contentRepo.GetByID(ctx, id)
}

// Delete deletes a content item
func (s *ContentService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx, existing.WorkspaceID)
	return nil
}
