package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/analytics"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// AuditResult is the workspace health view
type AuditResult struct {
	Score  int                       `json:"score"`
	Rating analytics.Rating          `json:"rating"`
	Stats  *analytics.DashboardStats `json:"stats"`
}

// StrategistResult pairs the composite score with the report it was computed from
type StrategistResult struct {
	Score  analytics.StrategistScore `json:"score"`
	Report *analytics.Report         `json:"report"`
}

// ReportService computes dashboard aggregates
type ReportService struct {
	contentRepo   domain.ContentStore
	workspaceRepo domain.WorkspaceReader
	funnelRepo    domain.FunnelReader
	cache         ReportCache
}

// NewReportService creates a new report service
func NewReportService(
	contentRepo domain.ContentStore,
	workspaceRepo domain.WorkspaceReader,
	funnelRepo domain.FunnelReader,
	cache ReportCache,
) *ReportService {
	return &ReportService{
		contentRepo:   contentRepo,
		workspaceRepo: workspaceRepo,
		funnelRepo:    funnelRepo,
		cache:         cache,
	}
}

// Stats builds the dashboard aggregate view. The independent aggregation
// reads run concurrently and join before responding.
func (s *ReportService) Stats(ctx context.Context) (*analytics.DashboardStats, error) {
	var (
		total, scheduled, published, drafts, pending, workspaces int
		byStage                                                  map[domain.FunnelStage]int
		recent                                                   []domain.ContentItem
	)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	run(func() (err error) { total, err = s.contentRepo.CountAll(ctx); return })
	run(func() (err error) { scheduled, err = s.contentRepo.CountByStatus(ctx, domain.StatusScheduled); return })
	run(func() (err error) { published, err = s.contentRepo.CountByStatus(ctx, domain.StatusPublished); return })
	run(func() (err error) { drafts, err = s.contentRepo.CountByStatus(ctx, domain.StatusDraft); return })
	run(func() (err error) { pending, err = s.contentRepo.CountByStatus(ctx, domain.StatusPendingReview); return })
	run(func() (err error) { workspaces, err = s.workspaceRepo.Count(ctx); return })
	run(func() (err error) { byStage, err = s.contentRepo.GroupByStage(ctx); return })
	run(func() (err error) { recent, err = s.contentRepo.Recent(ctx, 8); return })

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	// Stable stage order for the distribution
	distribution := make([]analytics.StageCount, 0, len(byStage))
	for _, stage := range domain.FunnelStages {
		if count, ok := byStage[stage]; ok {
			distribution = append(distribution, analytics.StageCount{FunnelStage: stage, Count: count})
		}
	}

	return &analytics.DashboardStats{
		TotalContent:       total,
		Scheduled:          scheduled,
		Published:          published,
		Drafts:             drafts,
		Pending:            pending,
		WorkspaceCount:     workspaces,
		FunnelDistribution: distribution,
		RecentItems:        recent,
	}, nil
}

// Report builds the content-mix report, optionally scoped to a workspace.
// Cached results are served when fresh.
func (s *ReportService) Report(ctx context.Context, workspaceID *uuid.UUID) (*analytics.Report, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, workspaceID); err == nil && cached != nil {
			return cached, nil
		}
	}

	if workspaceID != nil {
		ws, err := s.workspaceRepo.GetByID(ctx, *workspaceID)
		if err != nil {
			return nil, err
		}
		if ws == nil {
			return nil, domain.ErrNotFound
		}
	}

	items, err := s.contentRepo.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	report := analytics.BuildReport(items)

	if s.cache != nil {
		if err := s.cache.Set(ctx, workspaceID, report); err != nil {
			log.Warn().Err(err).Msg("failed to cache report")
		}
	}

	return report, nil
}

// Audit scores overall content health against the workspace funnel targets.
// Workspaces without a funnel config are scored against the default targets.
func (s *ReportService) Audit(ctx context.Context, workspaceID uuid.UUID) (*AuditResult, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	targets := domain.DefaultFunnelTargets
	if funnel, err := s.funnelRepo.Get(ctx, workspaceID); err == nil && funnel != nil {
		targets = funnel.Targets()
	}

	score := analytics.HealthScore(stats, targets)
	return &AuditResult{
		Score:  score,
		Rating: analytics.RatingFor(score),
		Stats:  stats,
	}, nil
}

// Strategist computes the composite strategist score for a workspace
func (s *ReportService) Strategist(ctx context.Context, workspaceID uuid.UUID) (*StrategistResult, error) {
	report, err := s.Report(ctx, &workspaceID)
	if err != nil {
		return nil, err
	}
	return &StrategistResult{
		Score:  analytics.Strategize(report),
		Report: report,
	}, nil
}
