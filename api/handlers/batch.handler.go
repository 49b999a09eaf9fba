package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type BatchHandler struct {
	DB       *dbrepo.BatchRepo
	pool     *pgxpool.Pool
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewBatchHandler(db *dbrepo.BatchRepo, pool *pgxpool.Pool, infoLog, errorLog *log.Logger) *BatchHandler {
	return &BatchHandler{DB: db, pool: pool, infoLog: infoLog, errorLog: errorLog}
}

// GetBatches lists batch stock for one product, or all products when no
// product_id filter is given.
func (h *BatchHandler) GetBatches(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.ParseInt(r.URL.Query().Get("product_id"), 10, 64)

	batches, err := h.DB.ListBatches(r.Context(), productID)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetBatches:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"batches": batches,
	})
}

// GetBatch returns the stock row for one (product, batch) pair.
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if productID == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid product id"))
		return
	}
	batchNo := chi.URLParam(r, "batchNo")
	if batchNo == "" {
		utils.BadRequest(w, errors.New("batch number is required"))
		return
	}

	batch, err := h.DB.GetBatch(r.Context(), productID, batchNo)
	if err != nil {
		var notFound *dbrepo.BatchNotFoundError
		if errors.As(err, &notFound) {
			utils.NotFound(w, err.Error())
			return
		}
		h.errorLog.Println("ERROR_01_GetBatch:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"batch":   batch,
	})
}

// GetBatchMovements returns the signed stock journal of one voucher, the same
// rows the delete path replays in reverse.
func (h *BatchHandler) GetBatchMovements(w http.ResponseWriter, r *http.Request) {
	voucherID, err := strconv.ParseInt(chi.URLParam(r, "voucherId"), 10, 64)
	if voucherID == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid voucher id"))
		return
	}

	movements, err := dbrepo.ListBatchMovements(h.pool, r.Context(), voucherID)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetBatchMovements:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"movements": movements,
	})
}
