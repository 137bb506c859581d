package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.GET("", h.listQuotes)
		quotes.POST("", h.createQuote)
		quotes.GET("/clients", h.listClients)
		quotes.GET("/stats", h.getStats)
		quotes.GET("/:id", h.getQuote)
		quotes.PUT("/:id", h.updateQuote)
		quotes.PUT("/:id/status", h.changeStatus)
		quotes.DELETE("/:id", h.deleteQuote)
	}
}

// createQuote godoc
// @Summary Create a quote
// @Description Creates a pending quote. At least one named line item is required.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security CookieAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create quote")
		return
	}
	c.JSON(http.StatusCreated, dto.QuoteMutationResponse{
		Success: true,
		Message: "Orçamento criado com sucesso",
		Quote:   dto.ToQuoteResponse(*quote),
	})
}

// getQuote godoc
// @Summary Get a quote
// @Tags quotes
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse "Quote not found"
// @Security CookieAuth
// @Router /quotes/{id} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.quoteService.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(*quote))
}

// listQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Produce  json
// @Param   status query string false "pending, sent, accepted or rejected"
// @Param   client query string false "Client name contains"
// @Param   q query string false "Free text over title, client and description"
// @Success 200 {object} dto.ListQuotesResponse
// @Security CookieAuth
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListQuotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuotesResponse(quotes))
}

// listClients godoc
// @Summary List the distinct clients of all quotes
// @Tags quotes
// @Produce  json
// @Success 200 {object} dto.ClientsResponse
// @Security CookieAuth
// @Router /quotes/clients [get]
func (h *quoteHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clients, err := h.quoteService.ListQuoteClients(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list quote clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientsResponse(clients))
}

// getStats godoc
// @Summary Quote statistics
// @Description Count per status and total value
// @Tags quotes
// @Produce  json
// @Success 200 {object} dto.QuoteStatsResponse
// @Security CookieAuth
// @Router /quotes/stats [get]
func (h *quoteHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.quoteService.GetQuoteStats(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute quote statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteStatsResponse(*stats))
}

// updateQuote godoc
// @Summary Update a quote
// @Description Line items can only be replaced while the quote is pending.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   id path string true "Quote ID"
// @Param   quote body dto.UpdateQuoteRequest true "Fields to change"
// @Success 200 {object} dto.QuoteMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or quote locked"
// @Failure 404 {object} dto.ErrorResponse "Quote not found"
// @Failure 409 {object} dto.ErrorResponse "Stale version"
// @Security CookieAuth
// @Router /quotes/{id} [put]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update quote")
		return
	}
	c.JSON(http.StatusOK, dto.QuoteMutationResponse{
		Success: true,
		Message: "Orçamento atualizado com sucesso",
		Quote:   dto.ToQuoteResponse(*quote),
	})
}

// changeStatus godoc
// @Summary Change the status of a quote
// @Description pending -> sent -> accepted | rejected
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   id path string true "Quote ID"
// @Param   status body dto.UpdateQuoteStatusRequest true "Target status"
// @Success 200 {object} dto.QuoteMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid transition"
// @Failure 404 {object} dto.ErrorResponse "Quote not found"
// @Failure 409 {object} dto.ErrorResponse "Stale version"
// @Security CookieAuth
// @Router /quotes/{id}/status [put]
func (h *quoteHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	quote, err := h.quoteService.ChangeQuoteStatus(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to change quote status")
		return
	}
	c.JSON(http.StatusOK, dto.QuoteMutationResponse{
		Success: true,
		Message: "Status atualizado com sucesso",
		Quote:   dto.ToQuoteResponse(*quote),
	})
}

// deleteQuote godoc
// @Summary Delete a quote
// @Tags quotes
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Quote not found"
// @Security CookieAuth
// @Router /quotes/{id} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.quoteService.DeleteQuote(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete quote")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Orçamento excluído com sucesso"})
}
