package booking

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitsphere/internal/pkg/response"
	"fitsphere/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the booking endpoints. Slot availability is readable by
// any authenticated user; list, status edits and the CSV export are
// admin-only.
func (h *Handler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.POST("/bookings", h.CreateBooking)
	authed.GET("/bookings/my", h.MyBookings)
	authed.GET("/bookings/:id", h.GetBooking)
	authed.GET("/bookings/trainer/:trainerId/available-slots", h.AvailableSlots)
	authed.POST("/bookings/:id/create-payment", h.CreatePayment)
	authed.POST("/bookings/:id/verify-payment", h.VerifyPayment)

	admin.GET("/bookings", h.ListBookings)
	admin.PUT("/bookings/:id/status", h.UpdateStatus)
	admin.GET("/bookings/export/csv", h.ExportCSV)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "time slot is already booked")
	case errors.Is(err, ErrUnsupportedMode):
		response.Error(c, http.StatusBadRequest, "UNSUPPORTED_MODE", err.Error())
	case errors.Is(err, ErrMissingLocation):
		response.Error(c, http.StatusBadRequest, "LOCATION_REQUIRED", err.Error())
	case errors.Is(err, ErrInvalidSignature):
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "payment signature verification failed")
	case errors.Is(err, ErrAlreadyProcessed):
		response.Error(c, http.StatusConflict, "ALREADY_PROCESSED", "payment already processed")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, ErrUpstream):
		response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "payment gateway unavailable")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) MyBookings(c *gin.Context) {
	out, err := h.service.MyBookings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	resp, err := h.service.AvailableSlots(c.Request.Context(), c.Param("trainerId"), date)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	resp, err := h.service.CreatePaymentIntent(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing payment verification fields")
		return
	}

	b, err := h.service.VerifyPayment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListBookings(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	f := repository.BookingFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		TrainerID:     c.Query("trainer_id"),
		Skip:          skip,
		Limit:         limit,
	}

	out, err := h.service.ListBookings(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	bookings, err := h.service.AllBookings(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"id", "user_name", "user_email", "program_title", "trainer_name",
		"booking_date", "time_slot", "attendance_mode", "amount",
		"status", "payment_status", "created_at",
	})
	for _, b := range bookings {
		_ = w.Write([]string{
			b.ID,
			b.UserName,
			b.UserEmail,
			b.ProgramTitle,
			b.TrainerName,
			b.BookingDate,
			b.TimeSlot,
			string(b.AttendanceMode),
			fmt.Sprintf("%.2f", b.Amount),
			string(b.Status),
			string(b.PaymentStatus),
			b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()
}
