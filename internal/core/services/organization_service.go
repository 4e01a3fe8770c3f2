package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &organizationService{orgRepo: orgRepo}
}

// Ensure organizationService implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// EnsureOrganization verifies that the organization exists and is active.
// Every org-scoped service calls this before touching tenant data.
func (s *organizationService) EnsureOrganization(ctx context.Context, organizationID string) error {
	if organizationID == "" {
		return fmt.Errorf("%w: organization id is required", apperrors.ErrValidation)
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return err
	}
	if !org.IsActive {
		return fmt.Errorf("organization %s is inactive: %w", organizationID, apperrors.ErrForbidden)
	}
	return nil
}

// CreateOrganization persists a new organization.
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if org.Name == "" {
		return nil, fmt.Errorf("%w: organization name is required", apperrors.ErrValidation)
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("name", org.Name))
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("name", org.Name))
	return &org, nil
}

// GetOrganizationByID retrieves an organization.
func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.orgRepo.FindOrganizationByID(ctx, organizationID)
}

// ListOrganizations retrieves a paginated list of organizations.
func (s *organizationService) ListOrganizations(ctx context.Context, limit int, offset int) ([]domain.Organization, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.orgRepo.ListOrganizations(ctx, limit, offset)
}
