package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/ErlanBelekov/rideboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type entryUsecaser interface {
	List(ctx context.Context) ([]*domain.Entry, error)
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)
	GetContact(ctx context.Context, id int64) (*domain.EntryContact, error)
	Create(ctx context.Context, token string, draft domain.EntryDraft) (*domain.Entry, error)
}

type EntryHandler struct {
	entryUsecase entryUsecaser
	logger       *slog.Logger
}

func NewEntryHandler(entryUsecase entryUsecaser, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{entryUsecase: entryUsecase, logger: logger.With("component", "entry_handler")}
}

// No binding tags: which rule rejects a draft is decided by
// domain.ValidateEntryDraft alone.
type createEntryRequest struct {
	Title   string `json:"titel"`
	Message string `json:"nachricht"`
	Type    string `json:"typ"`
	Seats   int32  `json:"sitzplaetze"`
}

type entryResponse struct {
	ID      int64            `json:"id"`
	Title   string           `json:"titel"`
	Message string           `json:"nachricht"`
	Type    domain.EntryType `json:"typ"`
	Seats   int              `json:"sitzplaetze"`
}

type contactResponse struct {
	Email string `json:"email"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:      e.ID,
		Title:   e.Title,
		Message: e.Message,
		Type:    e.Type,
		Seats:   e.Seats,
	}
}

// GET /entries
func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.entryUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list entries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}

// POST /entries
func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return
	}

	entry, err := h.entryUsecase.Create(c.Request.Context(), c.GetString(middleware.TokenKey), domain.EntryDraft{
		Title:   req.Title,
		Message: req.Message,
		Type:    domain.EntryType(req.Type),
		Seats:   int(req.Seats),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntryRejected):
			c.JSON(http.StatusBadRequest, gin.H{"error": rejectionMessage(err)})
		case errors.Is(err, domain.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidToken})
		default:
			h.logger.ErrorContext(c.Request.Context(), "create entry", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// GET /entries/:id
func (h *EntryHandler) GetByID(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.entryUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errEntryNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get entry by id", "entry_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toEntryResponse(entry))
}

// GET /entries/:id/contact
func (h *EntryHandler) GetContact(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	contact, err := h.entryUsecase.GetContact(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errEntryNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get entry contact", "entry_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, contactResponse{Email: contact.Email})
}

// entryID parses the :id path parameter, writing a 400 when it is not an integer.
func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidEntryID})
		return 0, false
	}
	return id, true
}
