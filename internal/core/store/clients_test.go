package store_test

import (
	"context"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

func (suite *StoreTestSuite) TestAddClient_ReplacesTempIDOnReconcile() {
	suite.initStore(seedData{})

	persisted := domain.Client{
		ClientID: "client-1",
		UserID:   suite.userID,
		Name:     "João Pereira",
	}
	suite.clientRepo.On("InsertClient", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return strings.HasPrefix(c.ClientID, "temp-") && c.Name == "João Pereira"
	})).Return(persisted, nil).Once()

	created, err := suite.store.AddClient(context.Background(), store.NewClient{Name: "João Pereira"})

	suite.Require().NoError(err)
	suite.Equal("client-1", created.ClientID)

	clients := suite.store.Clients()
	suite.Require().Len(clients, 1)
	suite.Equal("client-1", clients[0].ClientID)
}

func (suite *StoreTestSuite) TestAddClient_RequiresName() {
	suite.initStore(seedData{})

	_, err := suite.store.AddClient(context.Background(), store.NewClient{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.clientRepo.AssertNotCalled(suite.T(), "InsertClient", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestAddClient_RollbackOnRemoteFailure() {
	suite.initStore(seedData{})

	suite.clientRepo.On("InsertClient", mock.Anything, mock.AnythingOfType("domain.Client")).
		Return(domain.Client{}, assert.AnError).Once()

	_, err := suite.store.AddClient(context.Background(), store.NewClient{Name: "João Pereira"})

	suite.Require().Error(err)
	suite.Empty(suite.store.Clients())
}

func (suite *StoreTestSuite) TestUpdateClient_NotFound() {
	suite.initStore(seedData{})

	name := "Novo Nome"
	_, err := suite.store.UpdateClient(context.Background(), "missing", store.ClientPatch{Name: &name})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestUpdateClient_AppliesPatch() {
	suite.initStore(seedData{clients: []domain.Client{suite.seedClient()}})

	suite.clientRepo.On("UpdateClient", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.ClientID == "client-1" && c.Phone == "11 99999-0000"
	})).Return(nil).Once()

	phone := "11 99999-0000"
	updated, err := suite.store.UpdateClient(context.Background(), "client-1", store.ClientPatch{Phone: &phone})

	suite.Require().NoError(err)
	suite.Equal("11 99999-0000", updated.Phone)
	suite.Equal("Maria dos Santos", updated.Name, "unpatched fields are kept")
}

func (suite *StoreTestSuite) TestDeleteClient_RemovesFromMirror() {
	suite.initStore(seedData{clients: []domain.Client{suite.seedClient()}})

	suite.clientRepo.On("DeleteClient", mock.Anything, "client-1", suite.userID).Return(nil).Once()

	suite.Require().NoError(suite.store.DeleteClient(context.Background(), "client-1"))
	suite.Empty(suite.store.Clients())
}

func (suite *StoreTestSuite) TestDeleteClient_RollbackOnRemoteFailure() {
	suite.initStore(seedData{clients: []domain.Client{suite.seedClient()}})

	suite.clientRepo.On("DeleteClient", mock.Anything, "client-1", suite.userID).
		Return(assert.AnError).Once()

	err := suite.store.DeleteClient(context.Background(), "client-1")

	suite.Require().Error(err)
	suite.Len(suite.store.Clients(), 1)
}
