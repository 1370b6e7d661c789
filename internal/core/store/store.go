// Package store implements the domain store: an in-memory mirror of one
// operator's collections (clients, contracts, payments, shipment lists,
// contract events, expenses) plus the contract lifecycle state machine and
// the derived balance/statistics computations.
//
// Every mutation is applied optimistically to the mirror, sent to the
// persistence layer, and reconciled or rolled back depending on the outcome.
// Reads are served from the mirror.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
)

// Store mirrors one user's collections. All access goes through its lock:
// mutations from concurrent requests of the same session serialize here,
// which is the strongest guarantee the system offers (cross-session writes
// remain last-write-wins at the database).
type Store struct {
	userID string
	repos  portsrepo.Provider
	logger *slog.Logger

	mu        sync.RWMutex
	clients   []domain.Client
	contracts []domain.Contract
	payments  []domain.Payment
	lists     []domain.ShipmentList
	events    []domain.ContractEvent
	expenses  []domain.Expense
}

// New creates an uninitialized store for the given user.
func New(userID string, repos portsrepo.Provider, logger *slog.Logger) *Store {
	return &Store{
		userID: userID,
		repos:  repos,
		logger: logger.With(slog.String("store_user_id", userID)),
	}
}

// Initialize loads all collections from persistence and recomputes the
// per-list item counts. It must be called once before any other method.
func (s *Store) Initialize(ctx context.Context) error {
	clients, err := s.repos.Clients.ListClientsByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	contracts, err := s.repos.Contracts.ListContractsByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load contracts: %w", err)
	}
	payments, err := s.repos.Payments.ListPaymentsByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}
	lists, err := s.repos.Lists.ListListsByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load shipment lists: %w", err)
	}
	events, err := s.repos.Events.ListEventsByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load contract events: %w", err)
	}
	expenses, err := s.repos.Expenses.ListExpensesByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = clients
	s.contracts = contracts
	s.payments = payments
	s.lists = lists
	s.events = events
	s.expenses = expenses
	s.recountListItemsLocked()

	s.logger.Info("Domain store initialized",
		slog.Int("clients", len(clients)),
		slog.Int("contracts", len(contracts)),
		slog.Int("payments", len(payments)),
		slog.Int("lists", len(lists)),
		slog.Int("events", len(events)),
		slog.Int("expenses", len(expenses)),
	)
	return nil
}

// UserID returns the owning user of this store.
func (s *Store) UserID() string {
	return s.userID
}

// Clients returns a snapshot of the client collection.
func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Client returns the client with the given id, if present.
func (s *Store) Client(clientID string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ClientID == clientID {
			return c, true
		}
	}
	return domain.Client{}, false
}

// Contracts returns a snapshot of the contract collection.
func (s *Store) Contracts() []domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

// Contract returns the contract with the given id, if present.
func (s *Store) Contract(contractID string) (domain.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contracts {
		if c.ContractID == contractID {
			return c, true
		}
	}
	return domain.Contract{}, false
}

// ContractsForClient returns the contracts owned by one client.
func (s *Store) ContractsForClient(clientID string) []domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Contract
	for _, c := range s.contracts {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out
}

// Payments returns a snapshot of the payment collection.
func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// PaymentsForContract returns the payments recorded against one contract.
func (s *Store) PaymentsForContract(contractID string) []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Payment
	for _, p := range s.payments {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out
}

// Lists returns a snapshot of the shipment list collection.
func (s *Store) Lists() []domain.ShipmentList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ShipmentList, len(s.lists))
	copy(out, s.lists)
	return out
}

// List returns the shipment list with the given id, if present.
func (s *Store) List(listID string) (domain.ShipmentList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lists {
		if l.ListID == listID {
			return l, true
		}
	}
	return domain.ShipmentList{}, false
}

// ContractsInList returns the contracts currently linked to the list.
func (s *Store) ContractsInList(listID string) []domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Contract
	for _, c := range s.contracts {
		if c.ListID == listID {
			out = append(out, c)
		}
	}
	return out
}

// Events returns a snapshot of the contract event collection.
func (s *Store) Events() []domain.ContractEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ContractEvent, len(s.events))
	copy(out, s.events)
	return out
}

// EventsForContract returns the audit trail of one contract.
func (s *Store) EventsForContract(contractID string) []domain.ContractEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ContractEvent
	for _, e := range s.events {
		if e.ContractID == contractID {
			out = append(out, e)
		}
	}
	return out
}

// Expenses returns a snapshot of the expense collection.
func (s *Store) Expenses() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// recountListItemsLocked recomputes every list's ItemsCount projection from
// the contracts collection. Callers must hold the write lock.
func (s *Store) recountListItemsLocked() {
	counts := make(map[string]int, len(s.lists))
	for _, c := range s.contracts {
		if c.ListID != "" {
			counts[c.ListID]++
		}
	}
	for i := range s.lists {
		s.lists[i].ItemsCount = counts[s.lists[i].ListID]
	}
}

func (s *Store) indexOfContractLocked(contractID string) int {
	for i, c := range s.contracts {
		if c.ContractID == contractID {
			return i
		}
	}
	return -1
}

func (s *Store) indexOfListLocked(listID string) int {
	for i, l := range s.lists {
		if l.ListID == listID {
			return i
		}
	}
	return -1
}
