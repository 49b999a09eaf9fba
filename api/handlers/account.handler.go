package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type AccountHandler struct {
	DB       *dbrepo.AccountRepo
	validate *validator.Validate
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewAccountHandler(db *dbrepo.AccountRepo, infoLog, errorLog *log.Logger) *AccountHandler {
	return &AccountHandler{
		DB:       db,
		validate: validator.New(),
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

type accountPayload struct {
	Name         string   `json:"name" validate:"required"`
	BusinessName string   `json:"business_name"`
	Type         string   `json:"type" validate:"required,oneof=customer supplier"`
	Mobile       string   `json:"mobile"`
	Email        string   `json:"email" validate:"omitempty,email"`
	GSTIN        string   `json:"gstin"`
	Address      string   `json:"address"`
	UnpaidAmount float64  `json:"unpaid_amount"`
	CreditLimit  *float64 `json:"credit_limit"`
	Status       string   `json:"status"`
}

// =========================
// AddAccount
// =========================
func (h *AccountHandler) AddAccount(w http.ResponseWriter, r *http.Request) {
	var payload accountPayload
	err := utils.ReadJSON(w, r, &payload)
	if err != nil {
		h.errorLog.Println("ERROR_01_AddAccount:", err)
		utils.BadRequest(w, err)
		return
	}
	if err := h.validate.Struct(&payload); err != nil {
		h.errorLog.Println("ERROR_02_AddAccount:", err)
		utils.BadRequest(w, err)
		return
	}

	account := models.Account{
		Name:         payload.Name,
		BusinessName: payload.BusinessName,
		Type:         payload.Type,
		Mobile:       payload.Mobile,
		Email:        payload.Email,
		GSTIN:        payload.GSTIN,
		Address:      payload.Address,
		UnpaidAmount: payload.UnpaidAmount,
		CreditLimit:  payload.CreditLimit,
		Status:       payload.Status,
	}

	err = h.DB.CreateAccount(r.Context(), &account)
	if err != nil {
		h.errorLog.Println("ERROR_03_AddAccount:", err)
		utils.BadRequest(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Account created successfully",
		"account": account,
	})
}

// =========================
// GetAccountByID
// =========================
func (h *AccountHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if id == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid account id"))
		return
	}

	account, err := h.DB.GetAccountByID(r.Context(), id)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetAccountByID:", err)
		utils.NotFound(w, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"account": account,
	})
}

// =========================
// GetAccounts
// =========================
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accountType := utils.GetURLParam(r, "type")
	search := utils.GetURLParam(r, "search")
	page, limit := utils.GetPagination(r)

	accounts, totalCount, err := h.DB.ListAccounts(r.Context(), accountType, search, page, limit)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetAccounts:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"accounts":    accounts,
		"total_count": totalCount,
		"page":        page,
		"limit":       limit,
	})
}
