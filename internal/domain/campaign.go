package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is a manually managed status field; no lifecycle
// transitions are enforced.
type CampaignStatus string

const (
	CampaignPlanned   CampaignStatus = "PLANNED"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// Campaign is a named date-ranged marketing push, used as contextual input
// to plan generation
type Campaign struct {
	ID          uuid.UUID      `json:"id"`
	WorkspaceID uuid.UUID      `json:"workspace_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CampaignCreate represents campaign creation data
type CampaignCreate struct {
	Name        string         `json:"name" validate:"required,max=255"`
	Description string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartDate   time.Time      `json:"start_date" validate:"required"`
	EndDate     time.Time      `json:"end_date" validate:"required"`
	Status      CampaignStatus `json:"status,omitempty" validate:"omitempty,oneof=PLANNED ACTIVE COMPLETED CANCELLED"`
}
