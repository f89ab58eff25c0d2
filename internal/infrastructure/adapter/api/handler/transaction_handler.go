package handler

import (
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/response"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles balance, top-up, payment and history requests.
// Every route runs behind Authenticate and ResolveUser.
type TransactionHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetBalance handles the GET /balance endpoint
func (h *TransactionHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, errs.ErrInvalidToken)
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Get Balance Berhasil", dto.BalanceResponse{Balance: balance})
}

// TopUp handles the POST /topup endpoint
func (h *TransactionHandler) TopUp(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, errs.ErrInvalidToken)
		return
	}
	req := middleware.Payload[dto.TopUpRequest](c)

	balance, err := h.ledger.TopUp(c.Request.Context(), userID, req.Amount())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Top Up Balance berhasil", dto.BalanceResponse{Balance: balance})
}

// Pay handles the POST /transaction endpoint
func (h *TransactionHandler) Pay(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, errs.ErrInvalidToken)
		return
	}
	req := middleware.Payload[dto.TransactionRequest](c)

	receipt, err := h.ledger.Pay(c.Request.Context(), userID, req.ServiceCode)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.logger.Debug("Payment receipt issued", map[string]any{
		"userId":        userID,
		"invoiceNumber": receipt.InvoiceNumber,
	})
	response.Success(c, "Transaksi berhasil", dto.NewReceiptResponse(receipt))
}

// History handles the GET /transaction/history endpoint.
// A missing offset is 0; a missing limit returns every remaining record.
func (h *TransactionHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, errs.ErrInvalidToken)
		return
	}
	query := middleware.Payload[dto.HistoryQuery](c)

	offset := 0
	if n, ok := dto.WholeNumber(query.Offset); ok {
		offset = int(n)
	}
	var limit *int
	if n, ok := dto.WholeNumber(query.Limit); ok {
		l := int(n)
		limit = &l
	}

	page, err := h.ledger.History(c.Request.Context(), userID, offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Get History Berhasil", dto.NewHistoryResponse(page))
}
