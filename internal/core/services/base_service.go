package services

import (
	"context"
	"log/slog"

	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	OrganizationGuard portssvc.OrganizationGuardSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// EnsureOrganization validates the organization before any org-scoped work.
// Services constructed without a guard (unit tests, internal callers that
// already validated) skip the check.
func (s *BaseService) EnsureOrganization(ctx context.Context, organizationID string) error {
	if s.OrganizationGuard == nil {
		s.LogDebug(ctx, "No organization guard provided, organization accepted by default",
			slog.String("organization_id", organizationID))
		return nil
	}
	return s.OrganizationGuard.EnsureOrganization(ctx, organizationID)
}
