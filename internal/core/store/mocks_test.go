package store_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/limpanome/crm_backend/internal/core/domain"
	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
)

// MockClientRepository is a mock type for the ClientRepository interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) InsertClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	args := m.Called(ctx, client)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string, userID string) error {
	args := m.Called(ctx, clientID, userID)
	return args.Error(0)
}

func (m *MockClientRepository) ListClientsByUser(ctx context.Context, userID string) ([]domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// MockContractRepository is a mock type for the ContractRepository interface
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) InsertContract(ctx context.Context, contract domain.Contract) (domain.Contract, error) {
	args := m.Called(ctx, contract)
	return args.Get(0).(domain.Contract), args.Error(1)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) CompleteListMembers(ctx context.Context, listID string, userID string) error {
	args := m.Called(ctx, listID, userID)
	return args.Error(0)
}

func (m *MockContractRepository) ResetListMembers(ctx context.Context, listID string, userID string) error {
	args := m.Called(ctx, listID, userID)
	return args.Error(0)
}

func (m *MockContractRepository) ListContractsByUser(ctx context.Context, userID string) ([]domain.Contract, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockPaymentRepository is a mock type for the PaymentRepository interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) InsertPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string, userID string) error {
	args := m.Called(ctx, paymentID, userID)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockShipmentListRepository is a mock type for the ShipmentListRepository interface
type MockShipmentListRepository struct {
	mock.Mock
}

func (m *MockShipmentListRepository) InsertList(ctx context.Context, list domain.ShipmentList) (domain.ShipmentList, error) {
	args := m.Called(ctx, list)
	return args.Get(0).(domain.ShipmentList), args.Error(1)
}

func (m *MockShipmentListRepository) UpdateList(ctx context.Context, list domain.ShipmentList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockShipmentListRepository) DeleteList(ctx context.Context, listID string, userID string) error {
	args := m.Called(ctx, listID, userID)
	return args.Error(0)
}

func (m *MockShipmentListRepository) ListListsByUser(ctx context.Context, userID string) ([]domain.ShipmentList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShipmentList), args.Error(1)
}

// MockContractEventRepository is a mock type for the ContractEventRepository
// interface. InsertEvent and InsertEvents echo their input so tests can
// assert on the events the store records.
type MockContractEventRepository struct {
	mock.Mock
}

func (m *MockContractEventRepository) InsertEvent(ctx context.Context, event domain.ContractEvent) (domain.ContractEvent, error) {
	args := m.Called(ctx, event)
	if args.Error(1) != nil {
		return domain.ContractEvent{}, args.Error(1)
	}
	return event, nil
}

func (m *MockContractEventRepository) InsertEvents(ctx context.Context, events []domain.ContractEvent) ([]domain.ContractEvent, error) {
	args := m.Called(ctx, events)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return events, nil
}

func (m *MockContractEventRepository) ListEventsByUser(ctx context.Context, userID string) ([]domain.ContractEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractEvent), args.Error(1)
}

// MockExpenseRepository is a mock type for the ExpenseRepository interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) InsertExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	args := m.Called(ctx, expense)
	return args.Get(0).(domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	args := m.Called(ctx, expenseID, userID)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID string, name string, email string, now time.Time) error {
	args := m.Called(ctx, userID, name, email, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

func newMockProvider(
	clients *MockClientRepository,
	contracts *MockContractRepository,
	payments *MockPaymentRepository,
	lists *MockShipmentListRepository,
	events *MockContractEventRepository,
	expenses *MockExpenseRepository,
) portsrepo.Provider {
	return portsrepo.Provider{
		Clients:   clients,
		Contracts: contracts,
		Payments:  payments,
		Lists:     lists,
		Events:    events,
		Expenses:  expenses,
		Users:     new(MockUserRepository),
	}
}
