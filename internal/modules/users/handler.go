package users

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitsphere/internal/domain"
	"fitsphere/internal/pkg/response"
	"fitsphere/internal/repository"
)

// Handler exposes the admin user directory. Reads only; account mutation goes
// through the auth module.
type Handler struct {
	users *repository.UserRepository
}

func NewHandler(users *repository.UserRepository) *Handler {
	return &Handler{users: users}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.List)
}

func (h *Handler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	out, err := h.users.List(c.Request.Context(), domain.Role(c.Query("role")), skip, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusOK, out)
}
