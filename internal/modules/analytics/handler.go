package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsphere/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/analytics/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusOK, d)
}
