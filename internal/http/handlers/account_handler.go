// README: Handlers for email+password account operations.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/http/middleware"
	"tripsmith/internal/modules/account"
)

type AccountHandler struct {
	accounts *account.Service
}

func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "missing email or password")
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	session, err := h.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, session)
}

// Logout handles POST /api/auth/logout for the authenticated caller.
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.accounts.SignOut(c.Request.Context(), middleware.CallerUID(c)); err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "signed out"})
}
