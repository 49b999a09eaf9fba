package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/utils"
	"github.com/xuri/excelize/v2"
)

type ReportHandler struct {
	DB       *dbrepo.ReportRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewReportHandler(db *dbrepo.ReportRepo, infoLog, errorLog *log.Logger) *ReportHandler {
	return &ReportHandler{DB: db, infoLog: infoLog, errorLog: errorLog}
}

// =========================
// GetLedger
// =========================
func (h *ReportHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	partyID, _ := strconv.ParseInt(r.URL.Query().Get("party_id"), 10, 64)
	if partyID == 0 {
		utils.BadRequest(w, errors.New("party_id is required"))
		return
	}
	startDate := utils.GetURLParam(r, "start_date")
	endDate := utils.GetURLParam(r, "end_date")

	entries, err := h.DB.GetLedger(r.Context(), partyID, startDate, endDate)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetLedger:", err)
		utils.ServerError(w, err)
		return
	}

	closingBalance := 0.0
	if len(entries) > 0 {
		closingBalance = entries[len(entries)-1].RunningBalance
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"ledger":          entries,
		"closing_balance": closingBalance,
	})
}

// =========================
// GetDayBook
// =========================
func (h *ReportHandler) GetDayBook(w http.ResponseWriter, r *http.Request) {
	startDate, err := time.Parse("2006-01-02", utils.GetURLParam(r, "start_date"))
	if err != nil {
		utils.BadRequest(w, errors.New("start_date must be YYYY-MM-DD"))
		return
	}
	endDate, err := time.Parse("2006-01-02", utils.GetURLParam(r, "end_date"))
	if err != nil {
		utils.BadRequest(w, errors.New("end_date must be YYYY-MM-DD"))
		return
	}

	report, err := h.DB.GetDayBook(r.Context(), startDate, endDate)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetDayBook:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"day_book": report,
	})
}

// =========================
// GetStockReport
// =========================
func (h *ReportHandler) GetStockReport(w http.ResponseWriter, r *http.Request) {
	search := utils.GetURLParam(r, "search")
	page, limit := utils.GetPagination(r)

	batches, totalCount, err := h.DB.GetStockReport(r.Context(), search, page, limit)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetStockReport:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"stock":       batches,
		"total_count": totalCount,
		"page":        page,
		"limit":       limit,
	})
}

// ExportStockReport streams the full stock snapshot as an .xlsx workbook.
func (h *ReportHandler) ExportStockReport(w http.ResponseWriter, r *http.Request) {
	search := utils.GetURLParam(r, "search")

	// no pagination on exports, pull everything in one page
	batches, _, err := h.DB.GetStockReport(r.Context(), search, 1, 100000)
	if err != nil {
		h.errorLog.Println("ERROR_01_ExportStockReport:", err)
		utils.ServerError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Stock"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Product ID", "Batch No", "Quantity", "Stock In", "Stock Out", "Mfg Date"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, b := range batches {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), b.ProductID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.BatchNo)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), b.StockIn)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), b.StockOut)
		if b.MfgDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), b.MfgDate.Format("2006-01-02"))
		}
	}

	filename := fmt.Sprintf("stock-report-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(w); err != nil {
		h.errorLog.Println("ERROR_02_ExportStockReport:", err)
	}
}
