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

// LeadMagnetHandler lida com requisições HTTP de lead magnets (funis)
type LeadMagnetHandler struct {
	magnetService *services.LeadMagnetService
	metrics       *metrics.Metrics
	logger        ports.Logger
}

// NewLeadMagnetHandler cria um novo LeadMagnetHandler
func NewLeadMagnetHandler(magnetService *services.LeadMagnetService, m *metrics.Metrics, logger ports.Logger) *LeadMagnetHandler {
	return &LeadMagnetHandler{
		magnetService: magnetService,
		metrics:       m,
		logger:        logger,
	}
}

// ListLeadMagnets godoc
// @Summary      Lista lead magnets
// @Description  Todos os lead magnets, mais recentes primeiro
// @Tags         lead-magnets
// @Produce      json
// @Success      200  {array}   entities.LeadMagnet
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /lead-magnets [get]
func (h *LeadMagnetHandler) ListLeadMagnets(c *gin.Context) {
	magnets, err := h.magnetService.ListLeadMagnets(c.Request.Context())
	if err != nil {
		respondInternal(c, h.logger, "lead_magnet.list_failed", err)
		return
	}

	c.JSON(http.StatusOK, magnets)
}

// GetLeadMagnet godoc
// @Summary      Busca um lead magnet
// @Tags         lead-magnets
// @Produce      json
// @Param        id   path      int  true  "Lead magnet ID"
// @Success      200  {object}  entities.LeadMagnet
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /lead-magnets/{id} [get]
func (h *LeadMagnetHandler) GetLeadMagnet(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead_magnet.not_found"))
		return
	}

	magnet, err := h.magnetService.GetLeadMagnet(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrLeadMagnetNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead_magnet.not_found"))
			return
		}
		respondInternal(c, h.logger, "lead_magnet.get_failed", err)
		return
	}

	c.JSON(http.StatusOK, magnet)
}

// CreateLeadMagnet godoc
// @Summary      Cria um lead magnet
// @Tags         lead-magnets
// @Accept       json
// @Produce      json
// @Param        magnet  body      dto.CreateLeadMagnetRequest  true  "Dados do lead magnet"
// @Success      201   {object}  entities.LeadMagnet
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /lead-magnets [post]
func (h *LeadMagnetHandler) CreateLeadMagnet(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		respondValidation(c, h.logger, "lead_magnet.invalid_data", err)
		return
	}

	input, err := dto.DecodeCreateLeadMagnet(body)
	if err != nil {
		respondValidation(c, h.logger, "lead_magnet.invalid_data", err)
		return
	}

	magnet, err := h.magnetService.CreateLeadMagnet(c.Request.Context(), input)
	if err != nil {
		respondInternal(c, h.logger, "lead_magnet.create_failed", err)
		return
	}

	h.metrics.RecordMutation(metrics.EntityLeadMagnet, metrics.OpCreate)
	c.JSON(http.StatusCreated, magnet)
}

// UpdateLeadMagnet godoc
// @Summary      Atualiza parcialmente um lead magnet
// @Description  Campos ausentes são preservados; description aceita null. Contadores nunca são recalculados
// @Tags         lead-magnets
// @Accept       json
// @Produce      json
// @Param        id      path      int                          true  "Lead magnet ID"
// @Param        magnet  body      dto.UpdateLeadMagnetRequest  true  "Campos alterados"
// @Success      200   {object}  entities.LeadMagnet
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /lead-magnets/{id} [put]
func (h *LeadMagnetHandler) UpdateLeadMagnet(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead_magnet.not_found"))
		return
	}

	body, err := readBody(c)
	if err != nil {
		respondValidation(c, h.logger, "lead_magnet.invalid_data", err)
		return
	}

	patch, err := dto.DecodeUpdateLeadMagnet(body)
	if err != nil {
		respondValidation(c, h.logger, "lead_magnet.invalid_data", err)
		return
	}

	magnet, err := h.magnetService.UpdateLeadMagnet(c.Request.Context(), id, patch)
	if err != nil {
		if errs.Is(err, errors.ErrLeadMagnetNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead_magnet.not_found"))
			return
		}
		respondInternal(c, h.logger, "lead_magnet.update_failed", err)
		return
	}

	h.metrics.RecordMutation(metrics.EntityLeadMagnet, metrics.OpUpdate)
	c.JSON(http.StatusOK, magnet)
}

// DeleteLeadMagnet godoc
// @Summary      Remove um lead magnet
// @Tags         lead-magnets
// @Produce      json
// @Param        id   path      int  true  "Lead magnet ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /lead-magnets/{id} [delete]
func (h *LeadMagnetHandler) DeleteLeadMagnet(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead_magnet.not_found"))
		return
	}

	if err := h.magnetService.DeleteLeadMagnet(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrLeadMagnetNotFound) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "lead_magnet.not_found"))
			return
		}
		respondInternal(c, h.logger, "lead_magnet.delete_failed", err)
		return
	}

	h.metrics.RecordMutation(metrics.EntityLeadMagnet, metrics.OpDelete)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "lead_magnet.deleted")})
}
