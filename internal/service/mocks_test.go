package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/trungle-dev/content-planner/internal/analytics"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// MockWorkspaceStore mocks domain.WorkspaceStore
type MockWorkspaceStore struct {
	mock.Mock
}

func (m *MockWorkspaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkspaceStore) Create(ctx context.Context, ws *domain.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkspaceStore) List(ctx context.Context) ([]domain.Workspace, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceStore) FindOldest(ctx context.Context) (*domain.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkspaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBrandStore mocks domain.BrandStore
type MockBrandStore struct {
	mock.Mock
}

func (m *MockBrandStore) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.BrandVoice, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrandVoice), args.Error(1)
}

func (m *MockBrandStore) Upsert(ctx context.Context, workspaceID uuid.UUID, in *domain.BrandVoiceUpsert) (*domain.BrandVoice, error) {
	args := m.Called(ctx, workspaceID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BrandVoice), args.Error(1)
}

// MockFunnelStore mocks domain.FunnelStore
type MockFunnelStore struct {
	mock.Mock
}

func (m *MockFunnelStore) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.FunnelConfig, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FunnelConfig), args.Error(1)
}

func (m *MockFunnelStore) Upsert(ctx context.Context, cfg *domain.FunnelConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockCampaignStore mocks domain.CampaignStore
type MockCampaignStore struct {
	mock.Mock
}

func (m *MockCampaignStore) ListOverlapping(ctx context.Context, workspaceID uuid.UUID, start, end time.Time) ([]domain.Campaign, error) {
	args := m.Called(ctx, workspaceID, start, end)
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignStore) Create(ctx context.Context, c *domain.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Campaign, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentStore mocks domain.ContentStore
type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) Create(ctx context.Context, item *domain.ContentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockContentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentStore) List(ctx context.Context, workspaceID *uuid.UUID) ([]domain.ContentItem, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.ContentItem), args.Error(1)
}

func (m *MockContentStore) Update(ctx context.Context, id uuid.UUID, update *domain.ContentUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockContentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentStore) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockContentStore) CountByStatus(ctx context.Context, status domain.ContentStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockContentStore) GroupByStage(ctx context.Context) (map[domain.FunnelStage]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.FunnelStage]int), args.Error(1)
}

func (m *MockContentStore) Recent(ctx context.Context, limit int) ([]domain.ContentItem, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.ContentItem), args.Error(1)
}

// MockGateway mocks ai.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGateway) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGateway) GenerateText(ctx context.Context, prompt, system string) (string, error) {
	args := m.Called(ctx, prompt, system)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) GenerateJSON(ctx context.Context, prompt, system string, out any) error {
	args := m.Called(ctx, prompt, system, out)
	return args.Error(0)
}

// MockReportCache mocks ReportCache
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, workspaceID *uuid.UUID) (*analytics.Report, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Report), args.Error(1)
}

func (m *MockReportCache) Set(ctx context.Context, workspaceID *uuid.UUID, report *analytics.Report) error {
	args := m.Called(ctx, workspaceID, report)
	return args.Error(0)
}

func (m *MockReportCache) Invalidate(ctx context.Context, workspaceID uuid.UUID) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}
