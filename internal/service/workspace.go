package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/domain"
)

const (
	defaultWorkspaceName = "Default Workspace"
	defaultWorkspaceSlug = "default-workspace"
)

// WorkspaceService handles workspace operations and their 1:1 attachments
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceStore
	brandRepo     domain.BrandStore
	funnelRepo    domain.FunnelStore
	campaignRepo  domain.CampaignStore

	bootstrapMu sync.Mutex
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	workspaceRepo domain.WorkspaceStore,
	brandRepo domain.BrandStore,
	funnelRepo domain.FunnelStore,
	campaignRepo domain.CampaignStore,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		brandRepo:     brandRepo,
		funnelRepo:    funnelRepo,
		campaignRepo:  campaignRepo,
	}
}

// vietnameseFold maps Vietnamese letters onto their base ASCII form
var vietnameseFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
	'đ': 'd',
}

// slugify folds a name to a lowercase hyphenated slug
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if folded, ok := vietnameseFold[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "workspace"
	}
	return slug
}

// uniqueSlug resolves slug collisions with a numeric suffix
func (s *WorkspaceService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.workspaceRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Create creates a workspace and seeds its funnel config with the default targets
func (s *WorkspaceService) Create(ctx context.Context, in *domain.WorkspaceCreate) (*domain.Workspace, error) {
	slug, err := s.uniqueSlug(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ws := &domain.Workspace{
		ID:          uuid.New(),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.workspaceRepo.Create(ctx, ws); err != nil {
		return nil, err
	}

	if err := s.funnelRepo.Upsert(ctx, domain.DefaultFunnelConfig(ws.ID)); err != nil {
		log.Error().Err(err).Str("workspace_id", ws.ID.String()).Msg("failed to seed funnel config")
	}

	log.Info().Str("workspace_id", ws.ID.String()).Str("slug", slug).Msg("workspace created")
	return ws, nil
}

// EnsureDefault guarantees at least one workspace exists and returns the
// oldest one. Safe to call concurrently; only the first caller creates.
func (s *WorkspaceService) EnsureDefault(ctx context.Context) (*domain.Workspace, error) {
	ws, err := s.workspaceRepo.FindOldest(ctx)
	if err != nil {
		return nil, err
	}
	if ws != nil {
		return ws, nil
	}

	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	// Re-check under the lock
	ws, err = s.workspaceRepo.FindOldest(ctx)
	if err != nil {
		return nil, err
	}
	if ws != nil {
		return ws, nil
	}

	created, err := s.Create(ctx, &domain.WorkspaceCreate{Name: defaultWorkspaceName})
	if err != nil {
		return nil, err
	}
	log.Info().Str("workspace_id", created.ID.String()).Msg("default workspace bootstrapped")
	return created, nil
}

// Get retrieves a workspace with its brand voice, funnel config and campaigns
func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*domain.WorkspaceDetail, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}

	detail := &domain.WorkspaceDetail{Workspace: *ws}

	if detail.Brand, err = s.brandRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	if detail.Funnel, err = s.funnelRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	if detail.Campaigns, err = s.campaignRepo.ListByWorkspace(ctx, id); err != nil {
		return nil, err
	}

	return detail, nil
}

// List retrieves all workspaces
func (s *WorkspaceService) List(ctx context.Context) ([]domain.Workspace, error) {
	return s.workspaceRepo.List(ctx)
}

// Delete deletes a workspace; brand voice, funnel config, campaigns and
// content items cascade.
func (s *WorkspaceService) Delete(ctx context.Context, id uuid.UUID) error {
	ws, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ws == nil {
		return domain.ErrNotFound
	}
	return s.workspaceRepo.Delete(ctx, id)
}

// UpsertBrand writes the brand voice for a workspace
func (s *WorkspaceService) UpsertBrand(ctx context.Context, workspaceID uuid.UUID, in *domain.BrandVoiceUpsert) (*domain.BrandVoice, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}
	return s.brandRepo.Upsert(ctx, workspaceID, in)
}

// GetBrand retrieves the brand voice for a workspace
func (s *WorkspaceService) GetBrand(ctx context.Context, workspaceID uuid.UUID) (*domain.BrandVoice, error) {
	bv, err := s.brandRepo.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if bv == nil {
		return nil, domain.ErrNotFound
	}
	return bv, nil
}

// UpsertFunnel writes the funnel allocation for a workspace
func (s *WorkspaceService) UpsertFunnel(ctx context.Context, workspaceID uuid.UUID, in *domain.FunnelConfigUpsert) (*domain.FunnelConfig, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}

	cfg := &domain.FunnelConfig{
		WorkspaceID:   workspaceID,
		Awareness:     in.Awareness,
		Consideration: in.Consideration,
		Conversion:    in.Conversion,
		Loyalty:       in.Loyalty,
		Advocacy:      in.Advocacy,
	}
	if err := s.funnelRepo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return s.funnelRepo.Get(ctx, workspaceID)
}

// GetFunnel retrieves the funnel config for a workspace
func (s *WorkspaceService) GetFunnel(ctx context.Context, workspaceID uuid.UUID) (*domain.FunnelConfig, error) {
	cfg, err := s.funnelRepo.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

// CreateCampaign creates a campaign within a workspace
func (s *WorkspaceService) CreateCampaign(ctx context.Context, workspaceID uuid.UUID, in *domain.CampaignCreate) (*domain.Campaign, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidInput)
	}

	status := in.Status
	if status == "" {
		status = domain.CampaignPlanned
	}

	now := time.Now()
	c := &domain.Campaign{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns retrieves a workspace's campaigns
func (s *WorkspaceService) ListCampaigns(ctx context.Context, workspaceID uuid.UUID) ([]domain.Campaign, error) {
	return s.campaignRepo.ListByWorkspace(ctx, workspaceID)
}

// DeleteCampaign deletes a campaign
func (s *WorkspaceService) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return s.campaignRepo.Delete(ctx, id)
}
