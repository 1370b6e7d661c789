package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/store"
)

// CreatePaymentRequest defines the data needed to record an installment
// payment against a contract.
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Date   *time.Time      `json:"date"` // defaults to now when absent
	Method string          `json:"method"`
	Notes  string          `json:"notes"`
}

// ToNewPayment converts the request into a store input for the given contract.
func (r CreatePaymentRequest) ToNewPayment(contractID string) store.NewPayment {
	input := store.NewPayment{
		ContractID: contractID,
		Amount:     r.Amount,
		Method:     r.Method,
		Notes:      r.Notes,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID  string          `json:"paymentID"`
	ContractID string          `json:"contractID"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Method     string          `json:"method"`
	Notes      string          `json:"notes,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		ContractID: p.ContractID,
		Amount:     p.Amount,
		Date:       p.Date,
		Method:     p.Method,
		Notes:      p.Notes,
	}
}

// ToPaymentResponseList converts a slice of domain.Payment to response DTOs.
func ToPaymentResponseList(ps []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		out[i] = ToPaymentResponse(p)
	}
	return out
}
