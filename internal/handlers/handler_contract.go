package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentFormField is the multipart part carrying the signed PDF.
const documentFormField = "document"

// contractHandler handles HTTP requests related to contracts and their documents.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
	maxBodyBytes    int64
}

func newContractHandler(cs portssvc.ContractSvcFacade, maxDocumentSize int64) *contractHandler {
	// room for the metadata fields around the document
	return &contractHandler{contractService: cs, maxBodyBytes: maxDocumentSize + 1<<20}
}

func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade, maxDocumentSize int64) {
	h := newContractHandler(contractService, maxDocumentSize)

	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.listContracts)
		contracts.POST("", h.createContract)
		contracts.GET("/clients", h.listClients)
		contracts.GET("/stats", h.getStats)
		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.DELETE("/:id", h.deleteContract)
		contracts.GET("/:id/download", h.downloadDocument)
		contracts.GET("/:id/view", h.viewDocument)
	}
}

// createContract godoc
// @Summary Create a contract
// @Description Creates a contract from form fields and a signed PDF uploaded in the "document" part
// @Tags contracts
// @Accept  multipart/form-data
// @Produce  json
// @Param   title formData string true "Title"
// @Param   client formData string true "Client"
// @Param   value formData string true "Value, a decimal comma is accepted"
// @Param   start_date formData string true "Start date (YYYY-MM-DD)"
// @Param   end_date formData string true "End date (YYYY-MM-DD)"
// @Param   notes formData string false "Notes"
// @Param   document formData file true "Signed contract (PDF)"
// @Success 201 {object} dto.ContractMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 413 {object} dto.ErrorResponse "Upload too large"
// @Security CookieAuth
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var req dto.CreateContractRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Contract upload too large", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Success: false, Error: "Arquivo muito grande"})
			return
		}
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var upload domain.DocumentUpload
	file, header, err := c.Request.FormFile(documentFormField)
	switch {
	case err == nil:
		defer file.Close()
		upload = domain.DocumentUpload{Name: header.Filename, Size: header.Size, Content: file}
	case errors.Is(err, http.ErrMissingFile):
		// the service reports the missing document as a validation error
	default:
		respondBindError(c, logger, err)
		return
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), req, upload, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create contract")
		return
	}
	c.JSON(http.StatusCreated, dto.ContractMutationResponse{
		Success:  true,
		Message:  "Contrato criado com sucesso",
		Contract: dto.ToContractResponse(*contract),
	})
}

// getContract godoc
// @Summary Get a contract
// @Description Returns the contract with its status derived for today
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Security CookieAuth
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contract, err := h.contractService.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve contract")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(*contract))
}

// listContracts godoc
// @Summary List contracts
// @Tags contracts
// @Produce  json
// @Param   client query string false "Client name contains"
// @Param   start_from query string false "Start date on or after (YYYY-MM-DD)"
// @Param   end_until query string false "End date on or before (YYYY-MM-DD)"
// @Param   status query string false "awaiting, active or finished"
// @Success 200 {object} dto.ListContractsResponse
// @Security CookieAuth
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListContractsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	contracts, err := h.contractService.ListContracts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list contracts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContractsResponse(contracts))
}

// listClients godoc
// @Summary List the distinct clients of all contracts
// @Tags contracts
// @Produce  json
// @Success 200 {object} dto.ClientsResponse
// @Security CookieAuth
// @Router /contracts/clients [get]
func (h *contractHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clients, err := h.contractService.ListContractClients(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list contract clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientsResponse(clients))
}

// getStats godoc
// @Summary Contract statistics
// @Tags contracts
// @Produce  json
// @Success 200 {object} dto.ContractStatsResponse
// @Security CookieAuth
// @Router /contracts/stats [get]
func (h *contractHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.contractService.GetContractStats(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute contract statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToContractStatsResponse(*stats))
}

// updateContract godoc
// @Summary Update contract metadata
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID"
// @Param   contract body dto.UpdateContractRequest true "Fields to change"
// @Success 200 {object} dto.ContractMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 409 {object} dto.ErrorResponse "Stale version"
// @Security CookieAuth
// @Router /contracts/{id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	contract, err := h.contractService.UpdateContract(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update contract")
		return
	}
	c.JSON(http.StatusOK, dto.ContractMutationResponse{
		Success:  true,
		Message:  "Contrato atualizado com sucesso",
		Contract: dto.ToContractResponse(*contract),
	})
}

// deleteContract godoc
// @Summary Delete a contract and its document
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Security CookieAuth
// @Router /contracts/{id} [delete]
func (h *contractHandler) deleteContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.contractService.DeleteContract(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete contract")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Contrato excluído com sucesso"})
}

// downloadDocument godoc
// @Summary Download the signed contract
// @Tags contracts
// @Produce  application/pdf
// @Param   id path string true "Contract ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Contract or document not found"
// @Security CookieAuth
// @Router /contracts/{id}/download [get]
func (h *contractHandler) downloadDocument(c *gin.Context) {
	h.serveDocument(c, "attachment")
}

// viewDocument godoc
// @Summary View the signed contract inline
// @Tags contracts
// @Produce  application/pdf
// @Param   id path string true "Contract ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Contract or document not found"
// @Security CookieAuth
// @Router /contracts/{id}/view [get]
func (h *contractHandler) viewDocument(c *gin.Context) {
	h.serveDocument(c, "inline")
}

func (h *contractHandler) serveDocument(c *gin.Context, disposition string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref, rc, err := h.contractService.OpenContractDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to open contract document")
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": mime.FormatMediaType(disposition, map[string]string{"filename": ref.Name}),
	}
	c.DataFromReader(http.StatusOK, ref.Size, ref.ContentType, rc, headers)
}
