package services

import (
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user service resolves roles for every other service.
	container.User = NewUserService(repos.UserRepo, repos.TeamRepo)
	authorizer := container.User.(portssvc.OrganizationAuthorizerSvc)

	container.IDAllocator = NewIDAllocator(repos.SequenceRepo)

	container.Team = NewTeamService(repos.TeamRepo, repos.UserRepo, container.IDAllocator, authorizer)
	container.Client = NewClientService(repos.ClientRepo, container.IDAllocator, authorizer)
	container.Deal = NewDealService(repos.DealRepo, repos.ClientRepo, repos.CatalogRepo, container.IDAllocator, authorizer, cfg.ReportLocation)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.DealRepo,
		WithPaymentAuthorizer(authorizer),
		WithPaymentLocation(cfg.ReportLocation),
	)
	container.Catalog = NewCatalogService(repos.CatalogRepo, authorizer)
	container.Sales = NewSalesService(repos.SalesRepo, repos.UserRepo, repos.TeamRepo, repos.CatalogRepo,
		WithSalesAuthorizer(authorizer),
		WithReportLocation(cfg.ReportLocation),
		WithTopPerformersLimit(cfg.TopPerformersLimit),
	)
	container.Commission = NewCommissionService(repos.CommissionRepo, authorizer, cfg.ReportLocation)
	container.Offer = NewOfferService(repos.OfferRepo, repos.TeamRepo, repos.SalesRepo, authorizer, cfg.ReportLocation)

	return container
}
