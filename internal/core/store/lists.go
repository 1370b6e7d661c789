package store

import (
	"context"
	"fmt"
	"time"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
)

// CreateList opens a new shipment list. The creation date may be overridden
// to backfill lists that were sent before the system existed.
func (s *Store) CreateList(ctx context.Context, name string, createdAt time.Time) (domain.ShipmentList, error) {
	if name == "" {
		return domain.ShipmentList{}, fmt.Errorf("%w: list name is required", apperrors.ErrValidation)
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	optimistic := domain.ShipmentList{
		ListID:    tempID(),
		UserID:    s.userID,
		Name:      name,
		Status:    domain.ListOpen,
		CreatedAt: createdAt,
	}

	var created domain.ShipmentList
	err := run(ctx, s, "create_list", mutation[domain.ShipmentList]{
		apply: func() {
			s.lists = append([]domain.ShipmentList{optimistic}, s.lists...)
		},
		send: func(ctx context.Context) (domain.ShipmentList, error) {
			return s.repos.Lists.InsertList(ctx, optimistic)
		},
		reconcile: func(result domain.ShipmentList) {
			if i := s.indexOfListLocked(optimistic.ListID); i >= 0 {
				result.ItemsCount = 0
				s.lists[i] = result
			}
			created = result
		},
		revert: func() {
			s.lists = removeListLocked(s.lists, optimistic.ListID)
		},
	})
	if err != nil {
		return domain.ShipmentList{}, err
	}
	return created, nil
}

// RenameList changes a list's name.
func (s *Store) RenameList(ctx context.Context, listID string, name string) (domain.ShipmentList, error) {
	prior, ok := s.List(listID)
	if !ok {
		return domain.ShipmentList{}, fmt.Errorf("%w: list %s", apperrors.ErrNotFound, listID)
	}
	if name == "" {
		return domain.ShipmentList{}, fmt.Errorf("%w: list name is required", apperrors.ErrValidation)
	}

	updated := prior
	updated.Name = name

	err := run(ctx, s, "rename_list", mutation[struct{}]{
		apply: func() {
			s.replaceListLocked(updated)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Lists.UpdateList(ctx, updated)
		},
		revert: func() {
			s.replaceListLocked(prior)
		},
	})
	if err != nil {
		return domain.ShipmentList{}, err
	}
	return updated, nil
}

// DeleteList removes a list. Every contract still linked to it is silently
// reset to eligible with its list link cleared; no events are written for
// the reset.
func (s *Store) DeleteList(ctx context.Context, listID string) error {
	if _, ok := s.List(listID); !ok {
		return fmt.Errorf("%w: list %s", apperrors.ErrNotFound, listID)
	}

	var listSnapshot []domain.ShipmentList
	var contractSnapshot []domain.Contract
	return run(ctx, s, "delete_list", mutation[struct{}]{
		apply: func() {
			listSnapshot = make([]domain.ShipmentList, len(s.lists))
			copy(listSnapshot, s.lists)
			contractSnapshot = make([]domain.Contract, len(s.contracts))
			copy(contractSnapshot, s.contracts)

			for i := range s.contracts {
				if s.contracts[i].ListID == listID {
					s.contracts[i].ListID = ""
					s.contracts[i].Status = domain.StatusEligible
				}
			}
			s.lists = removeListLocked(s.lists, listID)
			s.recountListItemsLocked()
		},
		send: func(ctx context.Context) (struct{}, error) {
			if err := s.repos.Contracts.ResetListMembers(ctx, listID, s.userID); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, s.repos.Lists.DeleteList(ctx, listID, s.userID)
		},
		revert: func() {
			s.lists = listSnapshot
			s.contracts = contractSnapshot
			s.recountListItemsLocked()
		},
	})
}

// AddContractToList links an eligible contract to an open list, moving it to
// in_list. Attempts against a list that is not open are silent no-ops, as is
// re-adding a contract already in the list.
func (s *Store) AddContractToList(ctx context.Context, listID string, contractID string) error {
	list, ok := s.List(listID)
	if !ok || list.Status != domain.ListOpen {
		return nil
	}
	prior, ok := s.Contract(contractID)
	if !ok {
		return fmt.Errorf("%w: contract %s", apperrors.ErrNotFound, contractID)
	}
	if prior.ListID == listID {
		return nil
	}

	updated := prior
	updated.Status = domain.StatusInList
	updated.ListID = listID

	err := run(ctx, s, "add_contract_to_list", mutation[struct{}]{
		apply: func() {
			s.replaceContractLocked(updated)
			s.recountListItemsLocked()
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Contracts.UpdateContract(ctx, updated)
		},
		revert: func() {
			s.replaceContractLocked(prior)
			s.recountListItemsLocked()
		},
	})
	if err != nil {
		return err
	}

	s.appendEvent(ctx, contractID, domain.EventAddedToList, "Adicionado à lista: "+list.Name)
	return nil
}

// RemoveContractFromList detaches a contract from an open list, moving it
// back to eligible. No-op when the list is not open or the contract is not
// linked to it.
func (s *Store) RemoveContractFromList(ctx context.Context, listID string, contractID string) error {
	list, ok := s.List(listID)
	if !ok || list.Status != domain.ListOpen {
		return nil
	}
	prior, ok := s.Contract(contractID)
	if !ok {
		return fmt.Errorf("%w: contract %s", apperrors.ErrNotFound, contractID)
	}
	if prior.ListID != listID {
		return nil
	}

	updated := prior
	updated.Status = domain.StatusEligible
	updated.ListID = ""

	err := run(ctx, s, "remove_contract_from_list", mutation[struct{}]{
		apply: func() {
			s.replaceContractLocked(updated)
			s.recountListItemsLocked()
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Contracts.UpdateContract(ctx, updated)
		},
		revert: func() {
			s.replaceContractLocked(prior)
			s.recountListItemsLocked()
		},
	})
	if err != nil {
		return err
	}

	s.appendEvent(ctx, contractID, domain.EventRemovedFromList, "Removido da lista: "+list.Name)
	return nil
}

// CompleteList marks a list and every contract linked to it as completed,
// atomically from the caller's point of view: a remote failure rolls back
// both the list and the affected contracts in the mirror. Contracts keep
// their list link for history.
func (s *Store) CompleteList(ctx context.Context, listID string) error {
	list, ok := s.List(listID)
	if !ok {
		return fmt.Errorf("%w: list %s", apperrors.ErrNotFound, listID)
	}

	updated := list
	updated.Status = domain.ListCompleted

	var listSnapshot []domain.ShipmentList
	var contractSnapshot []domain.Contract
	var affected []string
	err := run(ctx, s, "complete_list", mutation[struct{}]{
		apply: func() {
			listSnapshot = make([]domain.ShipmentList, len(s.lists))
			copy(listSnapshot, s.lists)
			contractSnapshot = make([]domain.Contract, len(s.contracts))
			copy(contractSnapshot, s.contracts)

			s.replaceListLocked(updated)
			for i := range s.contracts {
				if s.contracts[i].ListID == listID {
					s.contracts[i].Status = domain.StatusCompleted
					affected = append(affected, s.contracts[i].ContractID)
				}
			}
		},
		send: func(ctx context.Context) (struct{}, error) {
			if err := s.repos.Lists.UpdateList(ctx, updated); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, s.repos.Contracts.CompleteListMembers(ctx, listID, s.userID)
		},
		revert: func() {
			s.lists = listSnapshot
			s.contracts = contractSnapshot
			s.recountListItemsLocked()
		},
	})
	if err != nil {
		return err
	}

	events := make([]domain.ContractEvent, 0, len(affected))
	now := time.Now().UTC()
	for _, contractID := range affected {
		events = append(events, domain.ContractEvent{
			EventID:     tempID(),
			UserID:      s.userID,
			ContractID:  contractID,
			Type:        domain.EventListCompleted,
			Description: "Processo concluído via lista: " + list.Name,
			Date:        now,
		})
	}
	s.appendEvents(ctx, events)
	return nil
}

func (s *Store) replaceListLocked(list domain.ShipmentList) {
	if i := s.indexOfListLocked(list.ListID); i >= 0 {
		s.lists[i] = list
	}
}

func removeListLocked(lists []domain.ShipmentList, listID string) []domain.ShipmentList {
	out := lists[:0]
	for _, l := range lists {
		if l.ListID != listID {
			out = append(out, l)
		}
	}
	return out
}
