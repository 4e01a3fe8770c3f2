package repositories

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// OrganizationReader defines read operations for tenant data
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization by its identifier.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizations retrieves a paginated list of organizations.
	ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for tenant data
type OrganizationWriter interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines all organization repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
