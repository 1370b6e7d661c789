package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

// CreateContractRequest defines the data needed to open a contract.
// TotalValue may be zero for degenerate agreements; such contracts never
// become eligible through payments.
type CreateContractRequest struct {
	ClientID     string          `json:"clientID" binding:"required"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	DownPayment  decimal.Decimal `json:"downPayment"`
	Installments int             `json:"installments" binding:"required,min=1"`
}

// ToNewContract converts the request into a store input.
func (r CreateContractRequest) ToNewContract() store.NewContract {
	return store.NewContract{
		ClientID:     r.ClientID,
		TotalValue:   r.TotalValue,
		DownPayment:  r.DownPayment,
		Installments: r.Installments,
	}
}

// UpdateContractRequest defines a partial contract edit. Status and list
// membership are not editable directly; they move through lifecycle routes.
type UpdateContractRequest struct {
	ClientID     *string          `json:"clientID"`
	TotalValue   *decimal.Decimal `json:"totalValue"`
	DownPayment  *decimal.Decimal `json:"downPayment"`
	Installments *int             `json:"installments" binding:"omitempty,min=1"`
}

// ToContractPatch converts the request into a store patch.
func (r UpdateContractRequest) ToContractPatch() store.ContractPatch {
	return store.ContractPatch{
		ClientID:     r.ClientID,
		TotalValue:   r.TotalValue,
		DownPayment:  r.DownPayment,
		Installments: r.Installments,
	}
}

// ReturnContractRequest carries the mandatory reason for a return.
type ReturnContractRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ContractResponse defines the data returned for a contract.
type ContractResponse struct {
	ContractID   string                `json:"contractID"`
	ClientID     string                `json:"clientID"`
	TotalValue   decimal.Decimal       `json:"totalValue"`
	DownPayment  decimal.Decimal       `json:"downPayment"`
	Installments int                   `json:"installments"`
	Status       domain.ContractStatus `json:"status"`
	ListID       string                `json:"listID,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ToContractResponse converts a domain.Contract to its response DTO.
func ToContractResponse(c domain.Contract) ContractResponse {
	return ContractResponse{
		ContractID:   c.ContractID,
		ClientID:     c.ClientID,
		TotalValue:   c.TotalValue,
		DownPayment:  c.DownPayment,
		Installments: c.Installments,
		Status:       c.Status,
		ListID:       c.ListID,
		CreatedAt:    c.CreatedAt,
	}
}

// ToContractResponseList converts a slice of domain.Contract to response DTOs.
func ToContractResponseList(cs []domain.Contract) []ContractResponse {
	out := make([]ContractResponse, len(cs))
	for i, c := range cs {
		out[i] = ToContractResponse(c)
	}
	return out
}

// BalanceResponse is the paid/remaining breakdown for a single contract.
type BalanceResponse struct {
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ToBalanceResponse converts a domain.ContractBalance to its response DTO.
func ToBalanceResponse(b domain.ContractBalance) BalanceResponse {
	return BalanceResponse{
		Paid:       b.Paid,
		Remaining:  b.Remaining,
		Percentage: b.Percentage,
	}
}

// ContractEventResponse defines the data returned for an audit trail entry.
type ContractEventResponse struct {
	EventID     string           `json:"eventID"`
	ContractID  string           `json:"contractID"`
	Type        domain.EventType `json:"type"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
}

// ToContractEventResponseList converts audit trail entries to response DTOs.
func ToContractEventResponseList(events []domain.ContractEvent) []ContractEventResponse {
	out := make([]ContractEventResponse, len(events))
	for i, e := range events {
		out[i] = ContractEventResponse{
			EventID:     e.EventID,
			ContractID:  e.ContractID,
			Type:        e.Type,
			Description: e.Description,
			Date:        e.Date,
		}
	}
	return out
}
