package media

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitsphere/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/videos", h.ListVideos)
	public.GET("/videos/:id", h.GetVideo)
	public.POST("/videos/:id/view", h.RecordView)
	public.GET("/images", h.ListImages)

	admin.POST("/videos/upload", h.UploadVideo)
	admin.PUT("/videos/:id", h.UpdateVideo)
	admin.DELETE("/videos/:id", h.DeleteVideo)
	admin.POST("/images/upload", h.UploadImage)
	admin.DELETE("/images/:id", h.DeleteImage)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrUpload):
		response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", "file upload failed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func (h *Handler) UploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}
	defer f.Close()

	duration, _ := strconv.Atoi(c.PostForm("duration"))
	isPublic := c.DefaultPostForm("is_public", "true") == "true"

	v, err := h.service.UploadVideo(c.Request.Context(), UploadVideoInput{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Difficulty:  c.PostForm("difficulty"),
		Duration:    duration,
		Description: c.PostForm("description"),
		IsPublic:    isPublic,
		Filename:    fileHeader.Filename,
		File:        f,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) GetVideo(c *gin.Context) {
	v, err := h.service.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) ListVideos(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.service.ListVideos(c.Request.Context(),
		c.Query("category"), c.Query("difficulty"), c.Query("search"), skip, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	v, err := h.service.UpdateVideo(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.service.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) RecordView(c *gin.Context) {
	if err := h.service.RecordView(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recorded": true})
}

func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}
	defer f.Close()

	img, err := h.service.UploadImage(c.Request.Context(), UploadImageInput{
		Title:       c.PostForm("title"),
		ImageType:   c.PostForm("image_type"),
		Description: c.PostForm("description"),
		Filename:    fileHeader.Filename,
		File:        f,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, img)
}

func (h *Handler) ListImages(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.service.ListImages(c.Request.Context(), c.Query("image_type"), skip, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	if err := h.service.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
