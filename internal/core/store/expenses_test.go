package store_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

func (suite *StoreTestSuite) TestAddExpense_Success() {
	suite.initStore(seedData{})

	persisted := domain.Expense{
		ExpenseID: "e1",
		UserID:    suite.userID,
		Category:  domain.ExpenseTraffic,
		Amount:    decimal.RequireFromString("250"),
		Date:      time.Now().UTC(),
	}
	suite.expenseRepo.On("InsertExpense", mock.Anything, mock.AnythingOfType("domain.Expense")).
		Return(persisted, nil).Once()

	created, err := suite.store.AddExpense(context.Background(), store.NewExpense{
		Category: domain.ExpenseTraffic,
		Amount:   decimal.RequireFromString("250"),
	})

	suite.Require().NoError(err)
	suite.Equal("e1", created.ExpenseID)
	suite.Len(suite.store.Expenses(), 1)
}

func (suite *StoreTestSuite) TestAddExpense_RejectsNonPositiveAmount() {
	suite.initStore(seedData{})

	_, err := suite.store.AddExpense(context.Background(), store.NewExpense{
		Category: domain.ExpenseOther,
		Amount:   decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StoreTestSuite) TestUpdateExpense_AppliesPatch() {
	seeded := domain.Expense{
		ExpenseID: "e1",
		UserID:    suite.userID,
		Category:  domain.ExpenseWithdrawal,
		Amount:    decimal.RequireFromString("100"),
	}
	suite.initStore(seedData{expenses: []domain.Expense{seeded}})

	suite.expenseRepo.On("UpdateExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ExpenseID == "e1" && e.WithdrawalPerson == "Carlos"
	})).Return(nil).Once()

	person := "Carlos"
	updated, err := suite.store.UpdateExpense(context.Background(), "e1", store.ExpensePatch{
		WithdrawalPerson: &person,
	})

	suite.Require().NoError(err)
	suite.Equal("Carlos", updated.WithdrawalPerson)
	suite.Equal(domain.ExpenseWithdrawal, updated.Category)
}

func (suite *StoreTestSuite) TestDeleteExpense_RollbackOnRemoteFailure() {
	seeded := domain.Expense{
		ExpenseID: "e1",
		UserID:    suite.userID,
		Category:  domain.ExpenseList,
		Amount:    decimal.RequireFromString("900"),
	}
	suite.initStore(seedData{expenses: []domain.Expense{seeded}})

	suite.expenseRepo.On("DeleteExpense", mock.Anything, "e1", suite.userID).
		Return(assert.AnError).Once()

	err := suite.store.DeleteExpense(context.Background(), "e1")

	suite.Require().Error(err)
	suite.Len(suite.store.Expenses(), 1)
}
