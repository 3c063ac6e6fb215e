package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SequenceRepo   SequenceRepository
	UserRepo       UserRepositoryFacade
	TeamRepo       TeamRepositoryFacade
	ClientRepo     ClientRepositoryFacade
	DealRepo       DealRepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	CatalogRepo    CatalogRepository
	SalesRepo      SalesRepository
	CommissionRepo CommissionRepository
	OfferRepo      OfferRepositoryFacade
}
