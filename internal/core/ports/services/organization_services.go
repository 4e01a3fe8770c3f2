package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// OrganizationGuardSvc validates that an organization exists and is active
// before any org-scoped computation begins.
type OrganizationGuardSvc interface {
	EnsureOrganization(ctx context.Context, organizationID string) error
}

// OrganizationSvcFacade covers the minimal tenant surface this core needs.
// Full provisioning (members, roles, billing) lives outside this service.
type OrganizationSvcFacade interface {
	OrganizationGuardSvc

	// CreateOrganization persists a new organization.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)

	// GetOrganizationByID retrieves an organization.
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizations retrieves a paginated list of organizations.
	ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error)
}
