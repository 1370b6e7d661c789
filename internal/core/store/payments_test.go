package store_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

func (suite *StoreTestSuite) TestAddPayment_PromotesToEligibleAtThreshold() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusInProgress)},
	})
	suite.allowEvents()

	persisted := suite.payment("p1", "c1", "500")
	suite.paymentRepo.On("InsertPayment", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(persisted, nil).Once()
	suite.contractRepo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "c1" && c.Status == domain.StatusEligible
	})).Return(nil).Once()

	created, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "c1",
		Amount:     decimal.RequireFromString("500"),
	})

	suite.Require().NoError(err)
	suite.Equal("p1", created.PaymentID)

	contract, ok := suite.store.Contract("c1")
	suite.Require().True(ok)
	suite.Equal(domain.StatusEligible, contract.Status)

	var descriptions []string
	for _, e := range suite.store.EventsForContract("c1") {
		descriptions = append(descriptions, e.Description)
	}
	suite.Contains(descriptions, "Contrato atingiu 50% e tornou-se Elegível para envio")

	suite.contractRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestAddPayment_BelowThresholdKeepsInProgress() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusInProgress)},
	})
	suite.allowEvents()

	suite.paymentRepo.On("InsertPayment", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(suite.payment("p1", "c1", "499.99"), nil).Once()

	_, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "c1",
		Amount:     decimal.RequireFromString("499.99"),
	})

	suite.Require().NoError(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusInProgress, contract.Status)
	suite.contractRepo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestAddPayment_ZeroTotalValueNeverPromotes() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "0", domain.StatusInProgress)},
	})
	suite.allowEvents()

	suite.paymentRepo.On("InsertPayment", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(suite.payment("p1", "c1", "10000"), nil).Once()

	_, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "c1",
		Amount:     decimal.RequireFromString("10000"),
	})

	suite.Require().NoError(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusInProgress, contract.Status)
	suite.contractRepo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestAddPayment_AlreadyEligibleStaysEligible() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusEligible)},
		payments:  []domain.Payment{suite.payment("p1", "c1", "500")},
	})
	suite.allowEvents()

	suite.paymentRepo.On("InsertPayment", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(suite.payment("p2", "c1", "100"), nil).Once()

	_, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "c1",
		Amount:     decimal.RequireFromString("100"),
	})

	suite.Require().NoError(err)
	// No status write: the promotion only fires from in_progress or draft.
	suite.contractRepo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestAddPayment_RejectsNonPositiveAmount() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusInProgress)},
	})

	_, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "c1",
		Amount:     decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.paymentRepo.AssertNotCalled(suite.T(), "InsertPayment", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestAddPayment_UnknownContract() {
	suite.initStore(seedData{})

	_, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "missing",
		Amount:     decimal.RequireFromString("100"),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestAddPayment_RemoteFailureRollsBack() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusInProgress)},
	})

	suite.paymentRepo.On("InsertPayment", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(domain.Payment{}, assert.AnError).Once()

	_, err := suite.store.AddPayment(context.Background(), store.NewPayment{
		ContractID: "c1",
		Amount:     decimal.RequireFromString("500"),
	})

	suite.Require().Error(err)
	suite.Empty(suite.store.Payments())
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusInProgress, contract.Status)
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvent", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestDeletePayment_DoesNotDemoteEligible() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusEligible)},
		payments:  []domain.Payment{suite.payment("p1", "c1", "500")},
	})
	suite.allowEvents()

	suite.paymentRepo.On("DeletePayment", mock.Anything, "p1", suite.userID).Return(nil).Once()

	err := suite.store.DeletePayment(context.Background(), "p1")

	suite.Require().NoError(err)
	suite.Empty(suite.store.PaymentsForContract("c1"))
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusEligible, contract.Status, "eligibility is monotonic")
	suite.contractRepo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestDeletePayment_RecordsRemovalEvent() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusEligible)},
		payments:  []domain.Payment{suite.payment("p1", "c1", "500")},
	})
	suite.allowEvents()

	suite.paymentRepo.On("DeletePayment", mock.Anything, "p1", suite.userID).Return(nil).Once()

	suite.Require().NoError(suite.store.DeletePayment(context.Background(), "p1"))

	events := suite.store.EventsForContract("c1")
	suite.Require().Len(events, 1)
	suite.Equal(domain.EventPayment, events[0].Type)
	suite.Equal("Pagamento removido: R$ 500.00", events[0].Description)
}

func (suite *StoreTestSuite) TestDeletePayment_RemoteFailureResyncs() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusEligible)},
		payments:  []domain.Payment{suite.payment("p1", "c1", "500")},
	})

	suite.paymentRepo.On("DeletePayment", mock.Anything, "p1", suite.userID).
		Return(assert.AnError).Once()
	// Recovery path reloads the whole collection from persistence.
	suite.paymentRepo.On("ListPaymentsByUser", mock.Anything, suite.userID).
		Return([]domain.Payment{suite.payment("p1", "c1", "500")}, nil).Once()

	err := suite.store.DeletePayment(context.Background(), "p1")

	suite.Require().Error(err)
	suite.Len(suite.store.PaymentsForContract("c1"), 1)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestDeletePayment_NotFound() {
	suite.initStore(seedData{})

	err := suite.store.DeletePayment(context.Background(), "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}
