package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hsvanberg/offert-service/internal/model"
	"github.com/hsvanberg/offert-service/internal/pricing"
	"github.com/hsvanberg/offert-service/internal/service"
)

type Handler struct {
	quotes *service.QuoteService
	log    zerolog.Logger
}

func NewHandler(quotes *service.QuoteService, log zerolog.Logger) *Handler {
	return &Handler{quotes: quotes, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.POST("/quotes", h.createQuote)
	router.GET("/quotes", h.listQuotes)
	router.GET("/quotes/:id", h.getQuote)
	router.PUT("/quotes/:id", h.saveDraft)
	router.DELETE("/quotes/:id", h.deleteQuote)
	router.POST("/quotes/:id/duplicate", h.duplicateQuote)
	router.POST("/quotes/:id/items", h.addItem)
	router.DELETE("/quotes/:id/items/:itemID", h.removeItem)
	router.POST("/quotes/:id/send", h.applyAction(service.ActionSend))
	router.POST("/quotes/:id/accept", h.applyAction(service.ActionAccept))
	router.POST("/quotes/:id/reject", h.applyAction(service.ActionReject))
	router.GET("/quotes/:id/pdf", h.quotePDF)
	router.POST("/export", h.exportRegister)
	router.GET("/profile", h.getProfile)
	router.PUT("/profile", h.saveProfile)
	router.POST("/demo/seed", h.seedDemo)
	router.GET("/suggestions", h.suggestions)
}

// quoteResponse is a quote plus the derived display fields the list and
// detail views need. looksExpired never touches the stored status.
type quoteResponse struct {
	model.Quote
	LooksExpired bool            `json:"looksExpired"`
	Summary      pricing.Summary `json:"summary"`
}

func toResponse(quote model.Quote, now time.Time) quoteResponse {
	return quoteResponse{
		Quote:        quote,
		LooksExpired: quote.LooksExpired(now),
		Summary:      pricing.Summarize(quote),
	}
}

func (h *Handler) createQuote(c *gin.Context) {
	quote, err := h.quotes.CreateQuote(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(*quote, time.Now()))
}

func (h *Handler) listQuotes(c *gin.Context) {
	quotes, err := h.quotes.ListQuotes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()
	responses := make([]quoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		responses = append(responses, toResponse(quote, now))
	}
	c.JSON(http.StatusOK, gin.H{"quotes": responses})
}

func (h *Handler) getQuote(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	quote, err := h.quotes.GetQuote(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*quote, time.Now()))
}

func (h *Handler) saveDraft(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var quote model.Quote
	if err := c.ShouldBindJSON(&quote); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quote.ID = id

	saved, err := h.quotes.SaveDraft(c.Request.Context(), quote)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*saved, time.Now()))
}

func (h *Handler) deleteQuote(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.quotes.DeleteQuote(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) duplicateQuote(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	copied, err := h.quotes.DuplicateQuote(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(*copied, time.Now()))
}

func (h *Handler) addItem(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	quote, err := h.quotes.AddItem(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*quote, time.Now()))
}

func (h *Handler) removeItem(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}
	itemID, ok := h.parseID(c, c.Param("itemID"))
	if !ok {
		return
	}

	quote, err := h.quotes.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*quote, time.Now()))
}

func (h *Handler) applyAction(action service.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.parseID(c, c.Param("id"))
		if !ok {
			return
		}

		quote, err := h.quotes.Apply(c.Request.Context(), id, action)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(*quote, time.Now()))
	}
}

func (h *Handler) quotePDF(c *gin.Context) {
	id, ok := h.parseID(c, c.Param("id"))
	if !ok {
		return
	}

	result, err := h.quotes.RenderPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) exportRegister(c *gin.Context) {
	result, err := h.quotes.ExportRegister(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) getProfile(c *gin.Context) {
	profile, err := h.quotes.Profile(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) saveProfile(c *gin.Context) {
	var profile model.BusinessProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.quotes.SaveProfile(c.Request.Context(), profile); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) seedDemo(c *gin.Context) {
	count, err := h.quotes.SeedDemoData(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": count})
}

func (h *Handler) suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": serviceDescriptionSuggestions})
}

func (h *Handler) parseID(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyItems):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("quote operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

var serviceDescriptionSuggestions = []string{
	"Målning av innervägg",
	"Målning av tak",
	"Målning av snickerier",
	"Byte av golv",
	"Montering av kök",
	"Montering av badrum",
	"Installation av belysning",
	"Tapetsering",
	"Elinstallation",
	"VVS-installation",
	"Plattsättning",
	"Snickeriarbete",
	"Golvslipning",
	"Badrumsrenovering",
	"Köksrenovering",
	"Utomhusmålning",
	"Byggarbete",
	"Trädgårdsarbete",
	"Murning",
	"Plåtarbete",
}
