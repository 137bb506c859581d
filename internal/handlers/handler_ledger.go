package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the cash-flow ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/summary", h.getSummary)
		ledger.GET("/entries", h.listEntries)
		ledger.POST("/entries", h.createEntry)
		ledger.GET("/entries/:id", h.getEntry)
		ledger.PUT("/entries/:id", h.updateEntry)
		ledger.DELETE("/entries/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record a cash movement
// @Description Creates an inflow or outflow ledger entry
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create ledger entry"
// @Security CookieAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.CreateLedgerEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create ledger entry")
		return
	}

	c.JSON(http.StatusCreated, dto.LedgerEntryMutationResponse{
		Success: true,
		Message: "Lançamento criado com sucesso",
		Entry:   dto.ToLedgerEntryResponse(*entry),
	})
}

// getEntry godoc
// @Summary Get a ledger entry
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security CookieAuth
// @Router /ledger/entries/{id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.ledgerService.GetLedgerEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(*entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists entries newest first, filtered by date range, category and kind. Paginated with next_token.
// @Tags ledger
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   category query string false "Category"
// @Param   kind query string false "inflow or outflow"
// @Param   limit query int false "Page size" default(50)
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Security CookieAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entries, next, err := h.ledgerService.ListLedgerEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries, next))
}

// getSummary godoc
// @Summary Summarize the ledger
// @Description Totals in, out, balance and per-category sums over an inclusive date range
// @Tags ledger
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid range"
// @Security CookieAuth
// @Router /ledger/summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	window, err := params.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return
	}

	summary, err := h.ledgerService.GetLedgerSummary(c.Request.Context(), window)
	if err != nil {
		respondError(c, logger, err, "Failed to summarize ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(*summary, window))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateLedgerEntryRequest true "Fields to change"
// @Success 200 {object} dto.LedgerEntryMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Stale version"
// @Security CookieAuth
// @Router /ledger/entries/{id} [put]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entryID := c.Param("id")
	entry, err := h.ledgerService.UpdateLedgerEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to update ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerEntryMutationResponse{
		Success: true,
		Message: "Lançamento atualizado com sucesso",
		Entry:   dto.ToLedgerEntryResponse(*entry),
	})
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security CookieAuth
// @Router /ledger/entries/{id} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteLedgerEntry(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Lançamento excluído com sucesso"})
}
