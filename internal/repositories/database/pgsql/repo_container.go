package pgsql

import (
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SequenceRepo:   newPgxSequenceRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		TeamRepo:       newPgxTeamRepository(dbPool),
		ClientRepo:     newPgxClientRepository(dbPool),
		DealRepo:       newPgxDealRepository(dbPool),
		PaymentRepo:    newPgxPaymentRepository(dbPool),
		CatalogRepo:    newPgxCatalogRepository(dbPool),
		SalesRepo:      newPgxSalesRepository(dbPool),
		CommissionRepo: newPgxCommissionRepository(dbPool),
		OfferRepo:      newPgxOfferRepository(dbPool),
	}
}
