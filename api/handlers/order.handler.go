package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type OrderHandler struct {
	DB       *dbrepo.OrderRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewOrderHandler(db *dbrepo.OrderRepo, infoLog, errorLog *log.Logger) *OrderHandler {
	return &OrderHandler{DB: db, infoLog: infoLog, errorLog: errorLog}
}

// GetOrderByNumber returns an order with its items and invoice stamps, so
// clients can see which lines are already billed.
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		utils.BadRequest(w, errors.New("order number is required"))
		return
	}

	order, err := h.DB.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetOrderByNumber:", err)
		utils.NotFound(w, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}
