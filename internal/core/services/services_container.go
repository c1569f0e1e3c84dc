package services

import (
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit store comes first since verification writes through it
	container.Audit = NewAuditStore(
		repos.AuditRepo,
		WithAuditPageLimits(cfg.AuditDefaultPageSize, cfg.AuditMaxPageSize),
	)

	container.Verification = NewVerificationService(repos.LedgerLookup, container.Audit)

	container.Activity = NewActivityReporter(
		container.Audit,
		WithReporterPageLimits(cfg.AuditDefaultPageSize, cfg.AuditMaxPageSize),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuditStoreSvc       = (*auditStore)(nil)
	_ portssvc.VerificationSvc     = (*verificationService)(nil)
	_ portssvc.ActivityReporterSvc = (*activityReporter)(nil)
)
