package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-panel-client/models"
	"admin-panel-client/store"
)

type AuthHandler struct {
	auth *store.AuthStore
	cart *store.CartStore
}

func NewAuthHandler(auth *store.AuthStore, cart *store.CartStore) *AuthHandler {
	return &AuthHandler{auth: auth, cart: cart}
}

func (h *AuthHandler) session() gin.H {
	return gin.H{
		"user":            h.auth.User(),
		"isAuthenticated": h.auth.IsAuthenticated(),
		"loginAttempted":  h.auth.LoginAttempted(),
	}
}

// Login handles POST /panel/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.auth.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		c.JSON(statusForErr(err), models.ErrorResponse{
			Error:   "AUTH_FAILED",
			Message: h.auth.Err(),
		})
		return
	}
	c.JSON(http.StatusOK, h.session())
}

// Register handles POST /panel/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.auth.Register(c.Request.Context(), req); err != nil {
		c.JSON(statusForErr(err), models.ErrorResponse{
			Error:   "REGISTRATION_FAILED",
			Message: h.auth.Err(),
		})
		return
	}
	c.JSON(http.StatusCreated, h.session())
}

// Logout handles POST /panel/logout. The cart is torn down with the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	h.cart.ClearCartState()
	c.JSON(http.StatusOK, h.session())
}

// Session handles GET /panel/session: restores a session from a stored token
// when possible and reports the outcome.
func (h *AuthHandler) Session(c *gin.Context) {
	if !h.auth.LoginAttempted() {
		h.auth.CheckAuthStatus(c.Request.Context())
	}
	c.JSON(http.StatusOK, h.session())
}

// ChangePassword handles PUT /panel/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, "PASSWORD_CHANGE_FAILED")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Password updated"})
}
