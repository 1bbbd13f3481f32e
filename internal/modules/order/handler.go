package order

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

func (h *Handler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	authed.POST("/orders/create-razorpay-order", h.CreateOrder)
	authed.POST("/orders/verify-payment", h.VerifyPayment)
	authed.GET("/orders/my", h.MyOrders)
	authed.GET("/orders/:id", h.GetOrder)

	admin.GET("/orders", h.ListOrders)
	admin.PUT("/orders/:id/status", h.UpdateStatus)
	admin.GET("/orders/export/csv", h.ExportCSV)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrProductNotFound):
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, ErrOutOfStock):
		response.Error(c, http.StatusConflict, "OUT_OF_STOCK", err.Error())
	case errors.Is(err, ErrInvalidSignature):
		response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "payment signature verification failed")
	case errors.Is(err, ErrUpstream):
		response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "payment gateway unavailable")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing payment verification fields")
		return
	}

	o, err := h.service.VerifyPayment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) MyOrders(c *gin.Context) {
	out, err := h.service.MyOrders(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListOrders(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	f := repository.OrderFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Skip:          skip,
		Limit:         limit,
	}

	out, err := h.service.ListOrders(c.Request.Context(), f)
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

	o, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	orders, err := h.service.AllOrders(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"id", "customer_name", "customer_email", "items", "total_amount",
		"order_status", "payment_status", "created_at",
	})
	for _, o := range orders {
		items := ""
		for i, it := range o.Items {
			if i > 0 {
				items += "; "
			}
			items += fmt.Sprintf("%s x%d", it.ProductName, it.Quantity)
		}
		_ = w.Write([]string{
			o.ID,
			o.CustomerName,
			o.CustomerEmail,
			items,
			fmt.Sprintf("%.2f", o.TotalAmount),
			string(o.OrderStatus),
			string(o.PaymentStatus),
			o.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()
}
