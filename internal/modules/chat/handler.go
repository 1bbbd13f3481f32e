package chat

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "fitsphere/internal/pkg/jwt"
	"fitsphere/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	jwt     *jwtsvc.Service
}

func NewHandler(service *Service, jwt *jwtsvc.Service) *Handler {
	return &Handler{service: service, jwt: jwt}
}

// RegisterRoutes wires REST history endpoints on the authenticated group and
// the websocket endpoint on the public group (browsers cannot set an
// Authorization header on websocket dials, so the token rides a query param).
func (h *Handler) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	public.GET("/chat/ws", h.WebSocket)

	authed.POST("/chat/messages", h.SendMessage)
	authed.GET("/chat/messages", h.History)
	authed.PUT("/chat/messages/:id/read", h.MarkRead)

	admin.GET("/chat/all", h.AdminHistory)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrSelfMessaging):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func (h *Handler) WebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing token")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade failed: %v", err)
		return
	}

	hub := h.service.Hub()
	hub.Register(claims.UserID, claims.Role == "admin", conn)
	defer hub.Unregister(claims.UserID)

	// Inbound frames are chat messages; everything else on this socket is
	// server push.
	for {
		var req SendMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if _, err := h.service.SendMessage(c.Request.Context(), claims.UserID, req); err != nil {
			_ = conn.WriteJSON(WireMessage{Type: "error", Data: err.Error()})
		}
	}
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

func (h *Handler) History(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.service.History(c.Request.Context(), c.GetString("user_id"), skip, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) AdminHistory(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	out, err := h.service.AdminHistory(c.Request.Context(), c.Query("user_id"), skip, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}
