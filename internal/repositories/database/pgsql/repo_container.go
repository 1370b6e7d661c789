package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
)

// NewRepositories wires every pgx repository against one connection pool.
func NewRepositories(pool *pgxpool.Pool) portsrepo.Provider {
	return portsrepo.Provider{
		Clients:   NewClientRepository(pool),
		Contracts: NewContractRepository(pool),
		Payments:  NewPaymentRepository(pool),
		Lists:     NewShipmentListRepository(pool),
		Events:    NewContractEventRepository(pool),
		Expenses:  NewExpenseRepository(pool),
		Users:     NewUserRepository(pool),
	}
}
