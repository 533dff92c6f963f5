package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/ai"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// PlanRequest asks for an AI-drafted content calendar over a date range
type PlanRequest struct {
	WorkspaceID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	PostsPerDay int
}

// PlanResult reports per-item outcomes of a plan generation run. Items that
// failed to persist do not fail the run.
type PlanResult struct {
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	Items   []domain.ContentItem `json:"items"`
	Failed  int                  `json:"failed"`
}

// PlannerService orchestrates AI plan generation
type PlannerService struct {
	workspaceRepo domain.WorkspaceReader
	brandRepo     domain.BrandReader
	funnelRepo    domain.FunnelReader
	campaignRepo  domain.CampaignReader
	contentRepo   domain.ContentStore
	gateway       ai.Gateway
	cache         ReportCache
	maxRangeDays  int
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	workspaceRepo domain.WorkspaceReader,
	brandRepo domain.BrandReader,
	funnelRepo domain.FunnelReader,
	campaignRepo domain.CampaignReader,
	contentRepo domain.ContentStore,
	gateway ai.Gateway,
	cache ReportCache,
	maxRangeDays int,
) *PlannerService {
	return &PlannerService{
		workspaceRepo: workspaceRepo,
		brandRepo:     brandRepo,
		funnelRepo:    funnelRepo,
		campaignRepo:  campaignRepo,
		contentRepo:   contentRepo,
		gateway:       gateway,
		cache:         cache,
		maxRangeDays:  maxRangeDays,
	}
}

// GeneratePlan drafts one content item per day across the range and persists
// the drafts. The workspace must have a brand voice and funnel config.
func (s *PlannerService) GeneratePlan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidInput)
	}
	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if s.maxRangeDays > 0 && days > s.maxRangeDays {
		return nil, fmt.Errorf("%w: date range exceeds %d days", domain.ErrInvalidInput, s.maxRangeDays)
	}
	if req.PostsPerDay < 0 || req.PostsPerDay > 10 {
		return nil, fmt.Errorf("%w: posts per day out of range", domain.ErrInvalidInput)
	}

	ws, err := s.workspaceRepo.GetByID(ctx, req.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}

	brand, err := s.brandRepo.Get(ctx, req.WorkspaceID)
	if err != nil {
		return nil, err
	}
	funnel, err := s.funnelRepo.Get(ctx, req.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if brand == nil || funnel == nil {
		return nil, domain.ErrPreconditionMissing
	}

	campaigns, err := s.campaignRepo.ListOverlapping(ctx, req.WorkspaceID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	campaignNames := make([]string, len(campaigns))
	for i, c := range campaigns {
		campaignNames[i] = c.Name
	}

	pc := ai.PlanContext{
		BrandName:    brand.BrandName,
		Industry:     brand.Industry,
		CoreProducts: brand.CoreProducts,
		ToneStyle:    brand.ToneStyle,
		Audience:     brand.Audience(),
		Funnel:       funnel,
		RangeStart:   req.StartDate.Format("2006-01-02"),
		RangeEnd:     req.EndDate.Format("2006-01-02"),
		Campaigns:    campaignNames,
		Holidays:     domain.HolidaysInRange(req.StartDate, req.EndDate),
		PostsPerDay:  req.PostsPerDay,
	}

	start := time.Now()
	var drafts []ai.PlanItem
	if err := s.gateway.GenerateJSON(ctx, ai.BuildPlanPrompt(pc), ai.PlanSystemPrompt, &drafts); err != nil {
		log.Error().Err(err).Str("workspace_id", req.WorkspaceID.String()).Msg("plan generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	log.Info().
		Int("drafts", len(drafts)).
		Dur("latency", time.Since(start)).
		Str("workspace_id", req.WorkspaceID.String()).
		Msg("plan drafts generated")

	result := s.persistDrafts(ctx, req.WorkspaceID, drafts)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, req.WorkspaceID); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate report cache")
		}
	}

	return result, nil
}

// persistDrafts creates the drafted items concurrently and collects per-item
// outcomes. Drafts with unparseable dates or unknown stages count as failed.
func (s *PlannerService) persistDrafts(ctx context.Context, workspaceID uuid.UUID, drafts []ai.PlanItem) *PlanResult {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		items  []domain.ContentItem
		failed int
	)

	for _, draft := range drafts {
		wg.Add(1)
		go func(d ai.PlanItem) {
			defer wg.Done()

			item, err := s.draftToItem(workspaceID, d)
			if err == nil {
				err = s.contentRepo.Create(ctx, item)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Str("title", d.Title).Msg("failed to persist plan draft")
				failed++
				return
			}
			items = append(items, *item)
		}(draft)
	}
	wg.Wait()

	return &PlanResult{
		Success: true,
		Count:   len(items),
		Items:   items,
		Failed:  failed,
	}
}

// draftToItem converts a model draft to a persistable content item
func (s *PlannerService) draftToItem(workspaceID uuid.UUID, d ai.PlanItem) (*domain.ContentItem, error) {
	scheduled, err := time.Parse("2006-01-02", d.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("bad scheduled date %q: %w", d.ScheduledDate, err)
	}

	stage := domain.FunnelStage(d.FunnelStage)
	if !domain.IsValidStage(stage) {
		return nil, fmt.Errorf("unknown funnel stage %q", d.FunnelStage)
	}

	format := domain.ContentFormat(d.Format)
	if format == "" {
		format = domain.FormatImagePost
	}

	var metadata *domain.ContentMetadata
	if len(d.Hashtags) > 0 {
		metadata = &domain.ContentMetadata{Hashtags: d.Hashtags}
	}

	now := time.Now()
	return &domain.ContentItem{
		ID:            uuid.New(),
		WorkspaceID:   workspaceID,
		Title:         d.Title,
		Body:          d.Summary,
		Format:        format,
		FunnelStage:   stage,
		ScheduledDate: scheduled,
		Status:        domain.StatusDraft,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
