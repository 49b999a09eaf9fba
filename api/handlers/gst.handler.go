package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vyapardesk/billing-api/internal/gstin"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type GSTHandler struct {
	Client   *gstin.Client
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewGSTHandler(client *gstin.Client, infoLog, errorLog *log.Logger) *GSTHandler {
	return &GSTHandler{Client: client, infoLog: infoLog, errorLog: errorLog}
}

// LookupGSTIN proxies a GSTIN registration lookup to the upstream service.
func (h *GSTHandler) LookupGSTIN(w http.ResponseWriter, r *http.Request) {
	gstinNo := chi.URLParam(r, "gstin")
	if len(gstinNo) != 15 {
		utils.BadRequest(w, errors.New("gstin must be 15 characters"))
		return
	}

	doc, err := h.Client.Lookup(r.Context(), gstinNo)
	if err != nil {
		h.errorLog.Println("ERROR_01_LookupGSTIN:", err)
		utils.BadRequest(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    doc,
	})
}
