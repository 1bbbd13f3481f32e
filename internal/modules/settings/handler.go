package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitsphere/internal/domain"
	"fitsphere/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type UpdateVenueRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/settings/venue", h.GetVenue)
	admin.PUT("/settings/venue", h.UpdateVenue)
}

func (h *Handler) GetVenue(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Error(c, http.StatusNotFound, "NOT_CONFIGURED", "venue not configured")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) UpdateVenue(c *gin.Context) {
	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	v, err := h.service.Update(c.Request.Context(), &domain.VenueSettings{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusOK, v)
}
