package store_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

func (suite *StoreTestSuite) seedClient() domain.Client {
	return domain.Client{
		ClientID: "client-1",
		UserID:   suite.userID,
		Name:     "Maria dos Santos",
	}
}

func (suite *StoreTestSuite) TestAddContract_StartsInProgressWithCreatedEvent() {
	suite.initStore(seedData{clients: []domain.Client{suite.seedClient()}})
	suite.allowEvents()

	persisted := suite.contract("c1", "1500", domain.StatusInProgress)
	suite.contractRepo.On("InsertContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.Status == domain.StatusInProgress && strings.HasPrefix(c.ContractID, "temp-")
	})).Return(persisted, nil).Once()

	created, err := suite.store.AddContract(context.Background(), store.NewContract{
		ClientID:     "client-1",
		TotalValue:   decimal.RequireFromString("1500"),
		Installments: 12,
	})

	suite.Require().NoError(err)
	suite.Equal("c1", created.ContractID)
	suite.Equal(domain.StatusInProgress, created.Status)

	events := suite.store.EventsForContract("c1")
	suite.Require().Len(events, 1)
	suite.Equal(domain.EventCreated, events[0].Type)
	suite.Equal("Contrato criado no valor de R$ 1500.00", events[0].Description)
}

func (suite *StoreTestSuite) TestAddContract_UnknownClient() {
	suite.initStore(seedData{})

	_, err := suite.store.AddContract(context.Background(), store.NewContract{
		ClientID:     "missing",
		TotalValue:   decimal.RequireFromString("1000"),
		Installments: 10,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestAddContract_RejectsNegativeValues() {
	suite.initStore(seedData{clients: []domain.Client{suite.seedClient()}})

	_, err := suite.store.AddContract(context.Background(), store.NewContract{
		ClientID:     "client-1",
		TotalValue:   decimal.RequireFromString("-1"),
		Installments: 10,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StoreTestSuite) TestAddContract_RemoteFailureRollsBack() {
	suite.initStore(seedData{clients: []domain.Client{suite.seedClient()}})

	suite.contractRepo.On("InsertContract", mock.Anything, mock.AnythingOfType("domain.Contract")).
		Return(domain.Contract{}, assert.AnError).Once()

	_, err := suite.store.AddContract(context.Background(), store.NewContract{
		ClientID:     "client-1",
		TotalValue:   decimal.RequireFromString("1000"),
		Installments: 10,
	})

	suite.Require().Error(err)
	suite.Empty(suite.store.Contracts())
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvent", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestUpdateContract_TotalValueChangeRecordsEvent() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusInProgress)},
		payments:  []domain.Payment{suite.payment("p1", "c1", "400")},
	})
	suite.allowEvents()

	suite.contractRepo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "c1" && c.TotalValue.Equal(decimal.RequireFromString("800"))
	})).Return(nil).Once()

	newTotal := decimal.RequireFromString("800")
	updated, err := suite.store.UpdateContract(context.Background(), "c1", store.ContractPatch{
		TotalValue: &newTotal,
	})

	suite.Require().NoError(err)
	suite.True(updated.TotalValue.Equal(newTotal))

	// 400 of 800 is 50%, but editing the total never re-runs the
	// eligibility check.
	suite.Equal(domain.StatusInProgress, updated.Status)

	events := suite.store.EventsForContract("c1")
	suite.Require().Len(events, 1)
	suite.Equal(domain.EventStatusChange, events[0].Type)
	suite.Equal("Valor do contrato alterado de R$ 1000.00 para R$ 800.00", events[0].Description)
}

func (suite *StoreTestSuite) TestUpdateContract_SameValueWritesNoEvent() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusInProgress)},
	})

	suite.contractRepo.On("UpdateContract", mock.Anything, mock.AnythingOfType("domain.Contract")).
		Return(nil).Once()

	sameTotal := decimal.RequireFromString("1000")
	_, err := suite.store.UpdateContract(context.Background(), "c1", store.ContractPatch{
		TotalValue: &sameTotal,
	})

	suite.Require().NoError(err)
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvent", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestReturnContract_RequiresReason() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusCompleted)},
	})

	_, err := suite.store.ReturnContract(context.Background(), "c1", "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StoreTestSuite) TestReturnContract_RecordsReason() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusCompleted)},
	})
	suite.allowEvents()

	suite.contractRepo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "c1" && c.Status == domain.StatusReturned
	})).Return(nil).Once()

	updated, err := suite.store.ReturnContract(context.Background(), "c1", "Nome voltou a constar no Serasa")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusReturned, updated.Status)

	events := suite.store.EventsForContract("c1")
	suite.Require().Len(events, 1)
	suite.Equal(domain.EventReturned, events[0].Type)
	suite.Equal("Retorno registrado: Nome voltou a constar no Serasa", events[0].Description)
}

func (suite *StoreTestSuite) TestReturnContract_RollbackOnRemoteFailure() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusCompleted)},
	})

	suite.contractRepo.On("UpdateContract", mock.Anything, mock.AnythingOfType("domain.Contract")).
		Return(assert.AnError).Once()

	_, err := suite.store.ReturnContract(context.Background(), "c1", "Retorno de teste")

	suite.Require().Error(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusCompleted, contract.Status)
}
