package store

import (
	"context"
	"fmt"
	"time"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewContract carries the fields needed to open a contract.
type NewContract struct {
	ClientID     string
	TotalValue   decimal.Decimal
	DownPayment  decimal.Decimal
	Installments int
}

// ContractPatch carries a partial contract edit. Nil fields are left
// unchanged. Status and list membership are not editable here; they only
// move through the lifecycle transitions.
type ContractPatch struct {
	ClientID     *string
	TotalValue   *decimal.Decimal
	DownPayment  *decimal.Decimal
	Installments *int
}

// AddContract opens a contract for a client. New contracts always start at
// in_progress and receive a created event.
func (s *Store) AddContract(ctx context.Context, input NewContract) (domain.Contract, error) {
	if input.ClientID == "" {
		return domain.Contract{}, fmt.Errorf("%w: contract client is required", apperrors.ErrValidation)
	}
	if _, ok := s.Client(input.ClientID); !ok {
		return domain.Contract{}, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, input.ClientID)
	}
	if input.TotalValue.IsNegative() || input.DownPayment.IsNegative() {
		return domain.Contract{}, fmt.Errorf("%w: contract values must not be negative", apperrors.ErrValidation)
	}
	if input.Installments < 1 {
		return domain.Contract{}, fmt.Errorf("%w: contract needs at least one installment", apperrors.ErrValidation)
	}

	optimistic := domain.Contract{
		ContractID:   tempID(),
		UserID:       s.userID,
		ClientID:     input.ClientID,
		TotalValue:   input.TotalValue,
		DownPayment:  input.DownPayment,
		Installments: input.Installments,
		Status:       domain.StatusInProgress,
		CreatedAt:    time.Now().UTC(),
	}

	var created domain.Contract
	err := run(ctx, s, "add_contract", mutation[domain.Contract]{
		apply: func() {
			s.contracts = append([]domain.Contract{optimistic}, s.contracts...)
		},
		send: func(ctx context.Context) (domain.Contract, error) {
			return s.repos.Contracts.InsertContract(ctx, optimistic)
		},
		reconcile: func(result domain.Contract) {
			if i := s.indexOfContractLocked(optimistic.ContractID); i >= 0 {
				s.contracts[i] = result
			}
			created = result
		},
		revert: func() {
			s.contracts = removeContractLocked(s.contracts, optimistic.ContractID)
		},
	})
	if err != nil {
		return domain.Contract{}, err
	}

	s.appendEvent(ctx, created.ContractID, domain.EventCreated,
		fmt.Sprintf("Contrato criado no valor de R$ %s", created.TotalValue.StringFixed(2)))
	return created, nil
}

// UpdateContract applies a partial edit. A totalValue change appends a
// status_change event recording old and new value; it does not re-run the
// eligibility check.
func (s *Store) UpdateContract(ctx context.Context, contractID string, patch ContractPatch) (domain.Contract, error) {
	prior, ok := s.Contract(contractID)
	if !ok {
		return domain.Contract{}, fmt.Errorf("%w: contract %s", apperrors.ErrNotFound, contractID)
	}

	updated := prior
	if patch.ClientID != nil {
		updated.ClientID = *patch.ClientID
	}
	if patch.TotalValue != nil {
		if patch.TotalValue.IsNegative() {
			return domain.Contract{}, fmt.Errorf("%w: contract values must not be negative", apperrors.ErrValidation)
		}
		updated.TotalValue = *patch.TotalValue
	}
	if patch.DownPayment != nil {
		updated.DownPayment = *patch.DownPayment
	}
	if patch.Installments != nil {
		if *patch.Installments < 1 {
			return domain.Contract{}, fmt.Errorf("%w: contract needs at least one installment", apperrors.ErrValidation)
		}
		updated.Installments = *patch.Installments
	}

	err := run(ctx, s, "update_contract", mutation[struct{}]{
		apply: func() {
			s.replaceContractLocked(updated)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Contracts.UpdateContract(ctx, updated)
		},
		revert: func() {
			s.replaceContractLocked(prior)
		},
	})
	if err != nil {
		return domain.Contract{}, err
	}

	if patch.TotalValue != nil && !updated.TotalValue.Equal(prior.TotalValue) {
		s.appendEvent(ctx, contractID, domain.EventStatusChange,
			fmt.Sprintf("Valor do contrato alterado de R$ %s para R$ %s",
				prior.TotalValue.StringFixed(2), updated.TotalValue.StringFixed(2)))
	}
	return updated, nil
}

// ReturnContract reopens a completed contract for rework, recording the
// reason. The contract keeps its payment history and list link.
func (s *Store) ReturnContract(ctx context.Context, contractID string, reason string) (domain.Contract, error) {
	prior, ok := s.Contract(contractID)
	if !ok {
		return domain.Contract{}, fmt.Errorf("%w: contract %s", apperrors.ErrNotFound, contractID)
	}
	if reason == "" {
		return domain.Contract{}, fmt.Errorf("%w: return reason is required", apperrors.ErrValidation)
	}

	updated := prior
	updated.Status = domain.StatusReturned

	err := run(ctx, s, "return_contract", mutation[struct{}]{
		apply: func() {
			s.replaceContractLocked(updated)
		},
		send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.repos.Contracts.UpdateContract(ctx, updated)
		},
		revert: func() {
			s.replaceContractLocked(prior)
		},
	})
	if err != nil {
		return domain.Contract{}, err
	}

	s.appendEvent(ctx, contractID, domain.EventReturned, "Retorno registrado: "+reason)
	return updated, nil
}

func (s *Store) replaceContractLocked(contract domain.Contract) {
	if i := s.indexOfContractLocked(contract.ContractID); i >= 0 {
		s.contracts[i] = contract
	}
}

func removeContractLocked(contracts []domain.Contract, contractID string) []domain.Contract {
	out := contracts[:0]
	for _, c := range contracts {
		if c.ContractID != contractID {
			out = append(out, c)
		}
	}
	return out
}
