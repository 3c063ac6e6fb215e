package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	IDAllocator IDAllocatorSvc
	User        UserSvcFacade
	Team        TeamSvcFacade
	Client      ClientSvcFacade
	Deal        DealSvcFacade
	Payment     PaymentSvcFacade
	Catalog     CatalogSvc
	Sales       SalesSvc
	Commission  CommissionSvc
	Offer       OfferSvcFacade
}
