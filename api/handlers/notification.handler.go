package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type NotificationHandler struct {
	DB       *dbrepo.NotificationRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewNotificationHandler(db *dbrepo.NotificationRepo, infoLog, errorLog *log.Logger) *NotificationHandler {
	return &NotificationHandler{DB: db, infoLog: infoLog, errorLog: errorLog}
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notifications, err := h.DB.ListNotifications(r.Context(), unreadOnly, limit)
	if err != nil {
		h.errorLog.Println("ERROR_01_GetNotifications:", err)
		utils.ServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"notifications": notifications,
	})
}

func (h *NotificationHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if id == 0 || err != nil {
		utils.BadRequest(w, errors.New("invalid notification id"))
		return
	}

	if err := h.DB.MarkNotificationRead(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_01_MarkNotificationRead:", err)
		utils.NotFound(w, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Notification marked as read",
	})
}
