package dto

import (
	"time"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// TransactionRequest represents the API request for paying a service
type TransactionRequest struct {
	ServiceCode string `json:"service_code" binding:"required"`
}

// HistoryQuery carries the optional paging parameters of the history endpoint.
// Both stay strings so a non-numeric value is reported with the field's own message.
type HistoryQuery struct {
	Offset string `form:"offset" binding:"omitempty,int_gte=0"`
	Limit  string `form:"limit" binding:"omitempty,int_gte=1"`
}

// ReceiptResponse represents the API response for a completed payment
type ReceiptResponse struct {
	InvoiceNumber   string    `json:"invoice_number"`
	ServiceCode     string    `json:"service_code"`
	ServiceName     string    `json:"service_name"`
	TransactionType string    `json:"transaction_type"`
	TotalAmount     int64     `json:"total_amount"`
	CreatedOn       time.Time `json:"created_on"`
}

// HistoryRecord is one ledger entry in the history response
type HistoryRecord struct {
	InvoiceNumber   string    `json:"invoice_number"`
	TransactionType string    `json:"transaction_type"`
	Description     string    `json:"description"`
	TotalAmount     int64     `json:"total_amount"`
	CreatedOn       time.Time `json:"created_on"`
}

// HistoryResponse represents one page of the caller's history.
// Limit is null when the caller asked for every record.
type HistoryResponse struct {
	Offset  int             `json:"offset"`
	Limit   *int            `json:"limit"`
	Records []HistoryRecord `json:"records"`
}

// NewReceiptResponse maps a payment receipt to its response
func NewReceiptResponse(receipt *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		InvoiceNumber:   receipt.InvoiceNumber,
		ServiceCode:     receipt.ServiceCode,
		ServiceName:     receipt.ServiceName,
		TransactionType: string(receipt.TransactionType),
		TotalAmount:     receipt.TotalAmount,
		CreatedOn:       receipt.CreatedOn.UTC(),
	}
}

// NewHistoryResponse maps a history page to its response
func NewHistoryResponse(page *entity.HistoryPage) HistoryResponse {
	records := make([]HistoryRecord, 0, len(page.Records))
	for _, record := range page.Records {
		records = append(records, HistoryRecord{
			InvoiceNumber:   record.InvoiceNumber,
			TransactionType: string(record.Type),
			Description:     record.Description,
			TotalAmount:     record.TotalAmount,
			CreatedOn:       record.CreatedOn.UTC(),
		})
	}
	return HistoryResponse{
		Offset:  page.Offset,
		Limit:   page.Limit,
		Records: records,
	}
}
