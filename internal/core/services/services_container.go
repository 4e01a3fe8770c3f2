package services

import (
	"time"

	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
)

// ContainerConfig carries the tunables the service layer needs from the
// application configuration.
type ContainerConfig struct {
	ReportWorkerLimit    int
	FiscalYearStartMonth time.Month
}

// NewServiceContainer wires every service against the repository provider.
// The balance calculator is shared: the report and statement services depend
// on it instead of folding entries themselves, so there is exactly one
// balance code path in the system.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg ContainerConfig) *portssvc.ServiceContainer {
	orgSvc := NewOrganizationService(repos.OrganizationRepo)

	balanceSvc := NewBalanceService(repos.AccountRepo, repos.LedgerRepo,
		WithBalanceOrganizationGuard(orgSvc))

	return &portssvc.ServiceContainer{
		Organization: orgSvc,
		Account: NewAccountService(repos.AccountRepo, repos.LedgerRepo,
			WithAccountOrganizationGuard(orgSvc)),
		Ledger: NewLedgerService(repos.AccountRepo, repos.LedgerRepo,
			WithLedgerOrganizationGuard(orgSvc),
			WithFiscalStartMonth(cfg.FiscalYearStartMonth)),
		Balance: balanceSvc,
		Reporting: NewReportingService(repos.AccountRepo, balanceSvc,
			WithReportingOrganizationGuard(orgSvc),
			WithReportWorkerLimit(cfg.ReportWorkerLimit)),
		Statement: NewStatementService(repos.AccountRepo, repos.LedgerRepo, balanceSvc,
			WithStatementOrganizationGuard(orgSvc)),
	}
}
