package repositories

// Provider bundles every persistence port the application needs. Concrete
// database packages return one of these from their constructor so wiring in
// main stays a single call.
type Provider struct {
	Clients   ClientRepository
	Contracts ContractRepository
	Payments  PaymentRepository
	Lists     ShipmentListRepository
	Events    ContractEventRepository
	Expenses  ExpenseRepository
	Users     UserRepository
}
