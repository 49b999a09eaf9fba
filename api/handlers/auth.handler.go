package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vyapardesk/billing-api/internal/dbrepo"
	"github.com/vyapardesk/billing-api/internal/models"
	"github.com/vyapardesk/billing-api/internal/utils"
)

type AuthHandler struct {
	DB       *dbrepo.StaffRepo
	JWTCfg   models.JWTConfig
	validate *validator.Validate
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewAuthHandler(db *dbrepo.StaffRepo, jwtCfg models.JWTConfig, infoLog, errorLog *log.Logger) *AuthHandler {
	return &AuthHandler{
		DB:       db,
		JWTCfg:   jwtCfg,
		validate: validator.New(),
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// =========================
// Signin
// =========================
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	err := utils.ReadJSON(w, r, &payload)
	if err != nil {
		h.errorLog.Println("ERROR_01_Signin:", err)
		utils.BadRequest(w, err)
		return
	}
	if err := h.validate.Struct(&payload); err != nil {
		h.errorLog.Println("ERROR_02_Signin:", err)
		utils.BadRequest(w, err)
		return
	}

	staff, err := h.DB.GetStaffByUsername(r.Context(), payload.Username)
	if err != nil {
		h.errorLog.Println("ERROR_03_Signin:", err)
		utils.BadRequest(w, errors.New("invalid username or password"))
		return
	}
	if !utils.CheckPassword(payload.Password, staff.Password) {
		utils.BadRequest(w, errors.New("invalid username or password"))
		return
	}

	token, err := utils.GenerateJWT(models.JWT{
		ID:       staff.ID,
		Name:     staff.Name,
		Username: staff.Username,
		Role:     staff.Role,
	}, h.JWTCfg)
	if err != nil {
		h.errorLog.Println("ERROR_04_Signin:", err)
		utils.ServerError(w, err)
		return
	}

	staff.Password = ""
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Signin successful",
		"token":   token,
		"user":    staff,
	})
}

// =========================
// AddStaff
// =========================
func (h *AuthHandler) AddStaff(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string `json:"name" validate:"required"`
		Username string `json:"username" validate:"required"`
		Role     string `json:"role" validate:"required"`
		Mobile   string `json:"mobile"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"required,min=6"`
	}
	err := utils.ReadJSON(w, r, &payload)
	if err != nil {
		h.errorLog.Println("ERROR_01_AddStaff:", err)
		utils.BadRequest(w, err)
		return
	}
	if err := h.validate.Struct(&payload); err != nil {
		h.errorLog.Println("ERROR_02_AddStaff:", err)
		utils.BadRequest(w, err)
		return
	}

	staff := models.Staff{
		Name:     payload.Name,
		Username: payload.Username,
		Role:     payload.Role,
		Mobile:   payload.Mobile,
		Email:    payload.Email,
		Password: payload.Password,
	}
	if err := h.DB.CreateStaff(r.Context(), &staff); err != nil {
		h.errorLog.Println("ERROR_03_AddStaff:", err)
		utils.BadRequest(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Staff created successfully",
		"staff":   staff,
	})
}
