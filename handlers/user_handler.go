package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-panel-client/models"
	"admin-panel-client/store"
)

type UserHandler struct {
	users *store.UsersStore
	auth  *store.AuthStore
}

func NewUserHandler(users *store.UsersStore, auth *store.AuthStore) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// List handles GET /panel/users.
func (h *UserHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	if err := h.users.FetchUsers(c.Request.Context(), page, limit); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":      h.users.Users(),
		"pagination": h.users.Pagination(),
	})
}

// Get handles GET /panel/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.users.FetchUserByID(c.Request.Context(), id); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": h.users.CurrentUser()})
}

// CreateAdmin handles POST /panel/users.
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.users.CreateAdmin(c.Request.Context(), req); err != nil {
		respondError(c, err, "CREATE_FAILED")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"users": h.users.Users()})
}

// UpdateRole handles PUT /panel/users/:id/role.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.users.UpdateUserRole(c.Request.Context(), id, req.Role); err != nil {
		respondError(c, err, "UPDATE_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": h.users.Users()})
}

// Delete handles DELETE /panel/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "DELETE_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": h.users.Users()})
}

// UpdateProfile handles PUT /panel/profile: updates the signed-in user's own
// record and merges the result into the session.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "UPDATE_FAILED")
		return
	}
	h.auth.UpdateProfile(user.Name, user.Email)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Stats handles GET /panel/users/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	if err := h.users.FetchStats(c.Request.Context()); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": h.users.Stats()})
}

// Search handles GET /panel/users/search.
func (h *UserHandler) Search(c *gin.Context) {
	params := models.UserSearchParams{
		Query: c.Query("q"),
		Role:  c.Query("role"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	if err := h.users.SearchUsers(c.Request.Context(), params); err != nil {
		respondError(c, err, "SEARCH_FAILED")
		return
	}
	results, pagination := h.users.SearchResults()
	c.JSON(http.StatusOK, gin.H{
		"users":      results,
		"pagination": pagination,
	})
}
