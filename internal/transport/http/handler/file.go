package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/StudenikinNikolay/filecloud/internal/domain"
	"github.com/StudenikinNikolay/filecloud/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fileUsecaser interface {
	Upload(ctx context.Context, name, contentType string, content []byte) (*domain.File, error)
	Download(ctx context.Context, name string) (*domain.FileContent, error)
	Rename(ctx context.Context, name, newName string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, limit int) ([]domain.File, error)
}

type FileHandler struct {
	fileUsecase fileUsecaser
	logger      *slog.Logger
}

func NewFileHandler(fileUsecase fileUsecaser, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileUsecase: fileUsecase,
		logger:      logger.With("component", "file_handler"),
	}
}

// appError is the structured error body of the file endpoints.
type appError struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type listItem struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	EditedAt time.Time `json:"editedAt"`
}

type renameRequest struct {
	Filename string `json:"filename"`
}

// POST /file?filename=X  (multipart field "file")
func (h *FileHandler) Upload(c *gin.Context) {
	name := c.Query("filename")

	fh, err := c.FormFile("file")
	if err != nil {
		badInput(c)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badInput(c)
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		badInput(c)
		return
	}

	if _, err := h.fileUsecase.Upload(c.Request.Context(), name, fh.Header.Get("Content-Type"), content); err != nil {
		h.fail(c, "upload file", name, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /file?filename=X
func (h *FileHandler) Download(c *gin.Context) {
	name := c.Query("filename")

	fc, err := h.fileUsecase.Download(c.Request.Context(), name)
	if err != nil {
		h.fail(c, "download file", name, err)
		return
	}
	c.Data(http.StatusOK, fc.ContentType, fc.Content)
}

// PUT /file?filename=X  body {"filename": "new"}
func (h *FileHandler) Rename(c *gin.Context) {
	name := c.Query("filename")

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badInput(c)
		return
	}

	if err := h.fileUsecase.Rename(c.Request.Context(), name, req.Filename); err != nil {
		h.fail(c, "rename file", name, err)
		return
	}
	c.Status(http.StatusOK)
}

// DELETE /file?filename=X
func (h *FileHandler) Delete(c *gin.Context) {
	name := c.Query("filename")

	if err := h.fileUsecase.Delete(c.Request.Context(), name); err != nil {
		h.fail(c, "delete file", name, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /list?limit=N
func (h *FileHandler) List(c *gin.Context) {
	var query struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		badInput(c)
		return
	}

	files, err := h.fileUsecase.List(c.Request.Context(), query.Limit)
	if err != nil {
		h.fail(c, "list files", "", err)
		return
	}

	items := make([]listItem, 0, len(files))
	for _, f := range files {
		items = append(items, listItem{Filename: f.Name, Size: f.Size, EditedAt: f.EditedAt})
	}
	c.JSON(http.StatusOK, items)
}

func (h *FileHandler) fail(c *gin.Context, op, name string, err error) {
	if errors.Is(err, usecase.ErrBadFileInput) || errors.Is(err, domain.ErrDuplicateFile) {
		badInput(c)
		return
	}
	h.logger.ErrorContext(c.Request.Context(), op, "filename", name, "error", err)
	c.JSON(http.StatusInternalServerError, appError{ID: http.StatusInternalServerError, Message: errInternalServer})
}

func badInput(c *gin.Context) {
	c.JSON(http.StatusBadRequest, appError{ID: http.StatusBadRequest, Message: errInputData})
}
