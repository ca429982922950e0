package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docvault/internal/app"
	"docvault/internal/transport/http/response"
)

type QnAHandler struct {
	authService *app.AuthService
	qnaService  *app.QnAService
}

type AskRequest struct {
	Question   string `json:"question" binding:"required"`
	DocumentID uint   `json:"document_id" binding:"required"`
}

func NewQnAHandler(authService *app.AuthService, qnaService *app.QnAService) *QnAHandler {
	return &QnAHandler{
		authService: authService,
		qnaService:  qnaService,
	}
}

func (h *QnAHandler) Ask(c *gin.Context) {
	user, ok := resolveUser(c, h.authService)
	if !ok {
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	record, err := h.qnaService.Ask(c.Request.Context(), app.AskInput{
		UserID:     user.ID,
		DocumentID: req.DocumentID,
		Question:   req.Question,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, "document not found")
		case errors.Is(err, app.ErrQuestionEmpty), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "ask failed")
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *QnAHandler) History(c *gin.Context) {
	user, ok := resolveUser(c, h.authService)
	if !ok {
		return
	}

	documentID, err := parseUintParam(c, "document_id")
	if err != nil || documentID == 0 {
		response.Error(c, http.StatusBadRequest, "invalid document id")
		return
	}

	records, err := h.qnaService.History(c.Request.Context(), user.ID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentNotFound):
			response.Error(c, http.StatusNotFound, "document not found")
		default:
			response.Error(c, http.StatusInternalServerError, "fetch history failed")
		}
		return
	}

	c.JSON(http.StatusOK, records)
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	u, err := strconv.ParseUint(c.Param(key), 10, 64)
	return uint(u), err
}
