package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/notify"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type TransactionHandler struct {
	DB       *dbrepo.VoucherRepo
	Accounts *dbrepo.AccountRepo
	SMS      *notify.SMSClient
	validate *validator.Validate
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewTransactionHandler(db *dbrepo.VoucherRepo, accounts *dbrepo.AccountRepo, sms *notify.SMSClient, infoLog, errorLog *log.Logger) *TransactionHandler {
	return &TransactionHandler{
		DB:       db,
		Accounts: accounts,
		SMS:      sms,
		validate: validator.New(),
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// writeBusinessError maps the posting engine's typed failures onto the
// response contract: business-rule violations are 422, a missing voucher is
// 404, anything else is an infrastructure 500.
func (h *TransactionHandler) writeBusinessError(w http.ResponseWriter, err error) {
	var insufficientStock *dbrepo.InsufficientStockError
	var batchNotFound *dbrepo.BatchNotFoundError
	var exceedsSource *dbrepo.QuantityExceedsSourceError
	var sourceNotFound *dbrepo.SourceVoucherNotFoundError

	switch {
	case errors.As(err, &insufficientStock),
		errors.As(err, &batchNotFound),
		errors.As(err, &exceedsSource),
		errors.As(err, &sourceNotFound):
		utils.UnprocessableEntity(w, err)
	case errors.Is(err, dbrepo.ErrVoucherNotFound):
		utils.NotFound(w, err.Error())
	default:
		utils.ServerError(w, err)
	}
}

// =========================
// AddTransaction
// =========================
func (h *TransactionHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var payload models.TransactionPayload
	err := utils.ReadJSON(w, r, &payload)
	if err != nil {
		h.errorLog.Println("ERROR_01_AddTransaction:", err)
		utils.BadRequest(w, err)
		return
	}
	if err := h.validate.Struct(&payload); err != nil {
		h.errorLog.Println("ERROR_02_AddTransaction:", err)
		utils.BadRequest(w, err)
		return
	}

	voucher, err := payload.Normalize()
	if err != nil {
		h.errorLog.Println("ERROR_03_AddTransaction:", err)
		utils.BadRequest(w, err)
		return
	}

	err = h.DB.CreateVoucher(r.Context(), voucher)
	if err != nil {
		h.errorLog.Println("ERROR_04_AddTransaction:", err)
		h.writeBusinessError(w, err)
		return
	}

	// confirmation SMS is best-effort and strictly post-commit
	if voucher.TransactionType == models.TRX_SALES {
		go h.sendSaleSMS(voucher)
	}

	var resp struct {
		Success       bool                 `json:"success"`
		Message       string               `json:"message"`
		VoucherID     int64                `json:"voucher_id"`
		InvoiceNumber string               `json:"invoice_number"`
		VchNo         string               `json:"vch_no"`
		Items         []models.VoucherItem `json:"items"`
	}
	resp.Success = true
	resp.Message = "Transaction created successfully"
	resp.VoucherID = voucher.VoucherID
	resp.InvoiceNumber = voucher.InvoiceNumber
	resp.VchNo = voucher.VchNo
	resp.Items = voucher.Items

	utils.WriteJSON(w, http.StatusCreated, resp)
}

func (h *TransactionHandler) sendSaleSMS(v *models.Voucher) {
	if h.SMS == nil || !h.SMS.Enabled() || v.PartyID == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	account, err := h.Accounts.GetAccountByID(ctx, v.PartyID)
	if err != nil || account.Mobile == "" {
		return
	}
	msg := "Invoice " + v.InvoiceNumber + " for " + strconv.FormatFloat(v.TotalAmount, 'f', 2, 64) + " has been posted."
	if err := h.SMS.Send(ctx, account.Mobile, msg); err != nil {
		h.errorLog.Println("WARN_AddTransaction: sms send failed:", err)
	}
}

// =========================
// UpdateTransaction / note updates
// =========================
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	h.updateVoucher(w, r, "", "UpdateTransaction")
}

func (h *TransactionHandler) UpdateCreditNote(w http.ResponseWriter, r *http.Request) {
	h.updateVoucher(w, r, models.TRX_CREDIT_NOTE, "UpdateCreditNote")
}

func (h *TransactionHandler) UpdateDebitNote(w http.ResponseWriter, r *http.Request) {
	h.updateVoucher(w, r, models.TRX_DEBIT_NOTE, "UpdateDebitNote")
}

func (h *TransactionHandler) updateVoucher(w http.ResponseWriter, r *http.Request, expectedType, op string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if id == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid voucher id"))
		return
	}

	var payload models.TransactionPayload
	err = utils.ReadJSON(w, r, &payload)
	if err != nil {
		h.errorLog.Println("ERROR_01_"+op+":", err)
		utils.BadRequest(w, err)
		return
	}
	if err := h.validate.Struct(&payload); err != nil {
		h.errorLog.Println("ERROR_02_"+op+":", err)
		utils.BadRequest(w, err)
		return
	}

	voucher, err := payload.Normalize()
	if err != nil {
		h.errorLog.Println("ERROR_03_"+op+":", err)
		utils.BadRequest(w, err)
		return
	}

	err = h.DB.UpdateVoucher(r.Context(), id, voucher, expectedType)
	if err != nil {
		h.errorLog.Println("ERROR_04_"+op+":", err)
		h.writeBusinessError(w, err)
		return
	}

	var resp struct {
		Success   bool                 `json:"success"`
		Message   string               `json:"message"`
		VoucherID int64                `json:"voucher_id"`
		Items     []models.VoucherItem `json:"items"`
	}
	resp.Success = true
	resp.Message = "Transaction updated successfully"
	resp.VoucherID = id
	resp.Items = voucher.Items

	utils.WriteJSON(w, http.StatusOK, resp)
}

// =========================
// DeleteTransaction
// =========================
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if id == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid voucher id"))
		return
	}

	voucher, err := h.DB.DeleteVoucher(r.Context(), id)
	if err != nil {
		h.errorLog.Println("ERROR_01_DeleteTransaction:", err)
		h.writeBusinessError(w, err)
		return
	}

	var resp struct {
		Success       bool   `json:"success"`
		Message       string `json:"message"`
		VoucherID     int64  `json:"voucher_id"`
		InvoiceNumber string `json:"invoice_number"`
	}
	resp.Success = true
	resp.Message = "Transaction deleted successfully"
	resp.VoucherID = voucher.VoucherID
	resp.InvoiceNumber = voucher.InvoiceNumber

	utils.WriteJSON(w, http.StatusOK, resp)
}

// =========================
// Reads
// =========================
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	transactionType := utils.GetURLParam(r, "transaction_type")
	partyID, _ := strconv.ParseInt(q.Get("party_id"), 10, 64)
	startDate := utils.GetURLParam(r, "start_date")
	endDate := utils.GetURLParam(r, "end_date")
	search := utils.GetURLParam(r, "search")
	page, limit := utils.GetPagination(r)

	vouchers, totalCount, err := h.DB.ListVouchers(r.Context(), transactionType, partyID, startDate, endDate, search, page, limit)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetTransactions:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"transactions": vouchers,
		"total_count":  totalCount,
		"page":         page,
		"limit":        limit,
	})
}

func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if id == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid voucher id"))
		return
	}

	voucher, err := h.DB.GetVoucherByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, dbrepo.ErrVoucherNotFound) {
			utils.NotFound(w, err.Error())
			return
		}
		h.errorLog.Println("ERROR_01_GetTransactionByID:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"transaction": voucher,
	})
}

func (h *TransactionHandler) GetVoucherDetail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	voucherID, _ := strconv.ParseInt(q.Get("voucher_id"), 10, 64)
	productID, _ := strconv.ParseInt(q.Get("product_id"), 10, 64)
	if voucherID == 0 && productID == 0 {
		utils.BadRequest(w, errors.New("voucher_id or product_id is required"))
		return
	}

	items, err := h.DB.GetVoucherItems(r.Context(), voucherID, productID)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetVoucherDetail:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"items":   items,
	})
}
