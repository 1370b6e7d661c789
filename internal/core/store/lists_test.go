package store_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
)

func (suite *StoreTestSuite) openList(id string, name string) domain.ShipmentList {
	return domain.ShipmentList{
		ListID:    id,
		UserID:    suite.userID,
		Name:      name,
		Status:    domain.ListOpen,
		CreatedAt: time.Now().UTC(),
	}
}

func (suite *StoreTestSuite) TestCreateList_ReplacesTempID() {
	suite.initStore(seedData{})

	persisted := suite.openList("l1", "Lote A")
	suite.listRepo.On("InsertList", mock.Anything, mock.AnythingOfType("domain.ShipmentList")).
		Return(persisted, nil).Once()

	created, err := suite.store.CreateList(context.Background(), "Lote A", time.Time{})

	suite.Require().NoError(err)
	suite.Equal("l1", created.ListID)
	suite.Equal(domain.ListOpen, created.Status)

	lists := suite.store.Lists()
	suite.Require().Len(lists, 1)
	suite.Equal("l1", lists[0].ListID)
}

func (suite *StoreTestSuite) TestCreateList_RequiresName() {
	suite.initStore(seedData{})

	_, err := suite.store.CreateList(context.Background(), "", time.Time{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StoreTestSuite) TestAddContractToList_MovesToInList() {
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusEligible)},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})
	suite.allowEvents()

	suite.contractRepo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "c1" && c.Status == domain.StatusInList && c.ListID == "l1"
	})).Return(nil).Once()

	err := suite.store.AddContractToList(context.Background(), "l1", "c1")

	suite.Require().NoError(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusInList, contract.Status)
	suite.Equal("l1", contract.ListID)

	list, _ := suite.store.List("l1")
	suite.Equal(1, list.ItemsCount)

	events := suite.store.EventsForContract("c1")
	suite.Require().Len(events, 1)
	suite.Equal(domain.EventAddedToList, events[0].Type)
	suite.Equal("Adicionado à lista: Lote A", events[0].Description)
}

func (suite *StoreTestSuite) TestAddContractToList_ClosedListIsNoOp() {
	closed := suite.openList("l1", "Lote enviado")
	closed.Status = domain.ListSent
	suite.initStore(seedData{
		contracts: []domain.Contract{suite.contract("c1", "1000", domain.StatusEligible)},
		lists:     []domain.ShipmentList{closed},
	})

	err := suite.store.AddContractToList(context.Background(), "l1", "c1")

	suite.Require().NoError(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusEligible, contract.Status)
	suite.Empty(contract.ListID)
	suite.contractRepo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestAddContractToList_AlreadyInListIsNoOp() {
	inList := suite.contract("c1", "1000", domain.StatusInList)
	inList.ListID = "l1"
	suite.initStore(seedData{
		contracts: []domain.Contract{inList},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})

	err := suite.store.AddContractToList(context.Background(), "l1", "c1")

	suite.Require().NoError(err)
	suite.contractRepo.AssertNotCalled(suite.T(), "UpdateContract", mock.Anything, mock.Anything)
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvent", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestRemoveContractFromList_BackToEligible() {
	inList := suite.contract("c1", "1000", domain.StatusInList)
	inList.ListID = "l1"
	suite.initStore(seedData{
		contracts: []domain.Contract{inList},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})
	suite.allowEvents()

	suite.contractRepo.On("UpdateContract", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == "c1" && c.Status == domain.StatusEligible && c.ListID == ""
	})).Return(nil).Once()

	err := suite.store.RemoveContractFromList(context.Background(), "l1", "c1")

	suite.Require().NoError(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusEligible, contract.Status)
	suite.Empty(contract.ListID)

	list, _ := suite.store.List("l1")
	suite.Equal(0, list.ItemsCount)
}

func (suite *StoreTestSuite) TestCompleteList_CompletesMembersAndKeepsLink() {
	member := suite.contract("c1", "1000", domain.StatusInList)
	member.ListID = "l1"
	outsider := suite.contract("c2", "500", domain.StatusEligible)
	suite.initStore(seedData{
		contracts: []domain.Contract{member, outsider},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})
	suite.allowEvents()

	suite.listRepo.On("UpdateList", mock.Anything, mock.MatchedBy(func(l domain.ShipmentList) bool {
		return l.ListID == "l1" && l.Status == domain.ListCompleted
	})).Return(nil).Once()
	suite.contractRepo.On("CompleteListMembers", mock.Anything, "l1", suite.userID).Return(nil).Once()

	err := suite.store.CompleteList(context.Background(), "l1")

	suite.Require().NoError(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusCompleted, contract.Status)
	suite.Equal("l1", contract.ListID, "the list link is kept for history")

	untouched, _ := suite.store.Contract("c2")
	suite.Equal(domain.StatusEligible, untouched.Status)

	list, _ := suite.store.List("l1")
	suite.Equal(domain.ListCompleted, list.Status)

	events := suite.store.EventsForContract("c1")
	suite.Require().Len(events, 1)
	suite.Equal(domain.EventListCompleted, events[0].Type)
	suite.Equal("Processo concluído via lista: Lote A", events[0].Description)
	suite.Empty(suite.store.EventsForContract("c2"))
}

func (suite *StoreTestSuite) TestCompleteList_RemoteFailureRollsBack() {
	member := suite.contract("c1", "1000", domain.StatusInList)
	member.ListID = "l1"
	suite.initStore(seedData{
		contracts: []domain.Contract{member},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})

	suite.listRepo.On("UpdateList", mock.Anything, mock.AnythingOfType("domain.ShipmentList")).
		Return(nil).Once()
	suite.contractRepo.On("CompleteListMembers", mock.Anything, "l1", suite.userID).
		Return(assert.AnError).Once()

	err := suite.store.CompleteList(context.Background(), "l1")

	suite.Require().Error(err)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusInList, contract.Status)
	suite.Equal("l1", contract.ListID)
	list, _ := suite.store.List("l1")
	suite.Equal(domain.ListOpen, list.Status)
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvents", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestDeleteList_ResetsMembersSilently() {
	member := suite.contract("c1", "1000", domain.StatusInList)
	member.ListID = "l1"
	suite.initStore(seedData{
		contracts: []domain.Contract{member},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})

	suite.contractRepo.On("ResetListMembers", mock.Anything, "l1", suite.userID).Return(nil).Once()
	suite.listRepo.On("DeleteList", mock.Anything, "l1", suite.userID).Return(nil).Once()

	err := suite.store.DeleteList(context.Background(), "l1")

	suite.Require().NoError(err)
	_, found := suite.store.List("l1")
	suite.False(found)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusEligible, contract.Status)
	suite.Empty(contract.ListID)
	// The reset is silent: no audit entries are written.
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvent", mock.Anything, mock.Anything)
	suite.eventRepo.AssertNotCalled(suite.T(), "InsertEvents", mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestDeleteList_RemoteFailureRollsBack() {
	member := suite.contract("c1", "1000", domain.StatusInList)
	member.ListID = "l1"
	suite.initStore(seedData{
		contracts: []domain.Contract{member},
		lists:     []domain.ShipmentList{suite.openList("l1", "Lote A")},
	})

	suite.contractRepo.On("ResetListMembers", mock.Anything, "l1", suite.userID).
		Return(assert.AnError).Once()

	err := suite.store.DeleteList(context.Background(), "l1")

	suite.Require().Error(err)
	list, found := suite.store.List("l1")
	suite.Require().True(found)
	suite.Equal(1, list.ItemsCount)
	contract, _ := suite.store.Contract("c1")
	suite.Equal(domain.StatusInList, contract.Status)
	suite.Equal("l1", contract.ListID)
	suite.listRepo.AssertNotCalled(suite.T(), "DeleteList", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StoreTestSuite) TestRenameList_NotFound() {
	suite.initStore(seedData{})

	_, err := suite.store.RenameList(context.Background(), "missing", "Novo nome")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}
