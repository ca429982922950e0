package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docvault/internal/app"
	"docvault/internal/transport/http/response"
)

type DocumentHandler struct {
	authService *app.AuthService
	docService  *app.DocumentService
	maxUpload   int64
}

func NewDocumentHandler(authService *app.AuthService, docService *app.DocumentService, maxUpload int64) *DocumentHandler {
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}
	return &DocumentHandler{
		authService: authService,
		docService:  docService,
		maxUpload:   maxUpload,
	}
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	user, ok := resolveUser(c, h.authService)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing file")
		return
	}
	if file.Size > h.maxUpload {
		response.Error(c, http.StatusBadRequest, "file too large")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read file")
		return
	}

	doc, err := h.docService.Ingest(c.Request.Context(), app.IngestInput{
		OwnerID:  user.ID,
		Filename: file.Filename,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUnsupportedFileType):
			response.Error(c, http.StatusBadRequest, "unsupported file type")
		case errors.Is(err, app.ErrInvalidEncoding):
			response.Error(c, http.StatusBadRequest, "invalid encoding")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	user, ok := resolveUser(c, h.authService)
	if !ok {
		return
	}

	docs, err := h.docService.ListDocuments(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list documents failed")
		return
	}

	c.JSON(http.StatusOK, docs)
}
