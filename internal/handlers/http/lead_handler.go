package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/metrics"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

// LeadHandler lida com requisições HTTP de leads
type LeadHandler struct {
	leadService *services.LeadService
	metrics     *metrics.Metrics
	logger      ports.Logger
}

// NewLeadHandler cria um novo LeadHandler
func NewLeadHandler(leadService *services.LeadService, m *metrics.Metrics, logger ports.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		metrics:     m,
		logger:      logger,
	}
}

// ListLeads godoc
// @Summary      Lista leads
// @Description  Todos os leads, mais recentes primeiro
// @Tags         leads
// @Produce      json
// @Success      200  {array}   entities.Lead
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadService.ListLeads(c.Request.Context())
	if err != nil {
		respondInternal(c, h.logger, "lead.list_failed", err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead godoc
// @Summary      Busca um lead
// @Tags         leads
// @Produce      json
// @Param        id   path      int  true  "Lead ID"
// @Success      200  {object}  entities.Lead
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead.not_found"))
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrLeadNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead.not_found"))
			return
		}
		respondInternal(c, h.logger, "lead.get_failed", err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// CreateLead godoc
// @Summary      Cria um lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      dto.CreateLeadRequest  true  "Dados do lead"
// @Success      201   {object}  entities.Lead
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondValidation(c, h.logger, "lead.invalid_data", err)
		return
	}

	input, err := dto.DecodeCreateLead(body)
	if err != nil {
		respondValidation(c, h.logger, "lead.invalid_data", err)
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), input)
	if err != nil {
		respondInternal(c, h.logger, "lead.create_failed", err)
		return
	}

	h.metrics.RecordMutation(metrics.EntityLead, metrics.OpCreate)
	c.JSON(http.StatusCreated, lead)
}

// UpdateLead godoc
// @Summary      Atualiza parcialmente um lead
// @Description  Campos ausentes são preservados; phone aceita null
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Lead ID"
// @Param        lead  body      dto.UpdateLeadRequest  true  "Campos alterados"
// @Success      200   {object}  entities.Lead
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead.not_found"))
		return
	}

	body, err := readBody(c)
	if err != nil {
		respondValidation(c, h.logger, "lead.invalid_data", err)
		return
	}

	patch, err := dto.DecodeUpdateLead(body)
	if err != nil {
		respondValidation(c, h.logger, "lead.invalid_data", err)
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), id, patch)
	if err != nil {
		if errs.Is(err, errors.ErrLeadNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead.not_found"))
			return
		}
		respondInternal(c, h.logger, "lead.update_failed", err)
		return
	}

	h.metrics.RecordMutation(metrics.EntityLead, metrics.OpUpdate)
	c.JSON(http.StatusOK, lead)
}

// DeleteLead godoc
// @Summary      Remove um lead
// @Tags         leads
// @Produce      json
// @Param        id   path      int  true  "Lead ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead.not_found"))
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrLeadNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead.not_found"))
			return
		}
		respondInternal(c, h.logger, "lead.delete_failed", err)
		return
	}

	h.metrics.RecordMutation(metrics.EntityLead, metrics.OpDelete)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "lead.deleted")})
}
