package dto

import (
	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
)

// CreateLeadMagnetRequest representa a requisição para criar um lead magnet
type CreateLeadMagnetRequest struct {
	Title       *string                   `json:"title" validate:"required,min=1"`
	Type        *string                   `json:"type" validate:"required,min=1"`
	Industry    *string                   `json:"industry" validate:"required,min=1"`
	Description entities.Optional[string] `json:"description"`
	Status      *string                   `json:"status" validate:"omitempty,min=1"`
	Leads       *int                      `json:"leads"`
	Conversion  *int                      `json:"conversion"`
}

// UpdateLeadMagnetRequest representa a atualização parcial de um lead magnet
type UpdateLeadMagnetRequest struct {
	Title       *string                   `json:"title" validate:"omitempty,min=1"`
	Type        *string                   `json:"type" validate:"omitempty,min=1"`
	Industry    *string                   `json:"industry" validate:"omitempty,min=1"`
	Description entities.Optional[string] `json:"description"`
	Status      *string                   `json:"status" validate:"omitempty,min=1"`
	Leads       *int                      `json:"leads"`
	Conversion  *int                      `json:"conversion"`
}

// DecodeCreateLeadMagnet valida o payload de criação e aplica os valores padrão
func DecodeCreateLeadMagnet(body []byte) (entities.NewLeadMagnet, error) {
	var req CreateLeadMagnetRequest
	if err := decodeRequest(body, &req); err != nil {
		return entities.NewLeadMagnet{}, err
	}

	magnet := entities.NewLeadMagnet{
		Title:       *req.Title,
		Type:        *req.Type,
		Industry:    *req.Industry,
		Description: req.Description.Value,
	}
	if req.Status != nil {
		magnet.Status = *req.Status
	}
	if req.Leads != nil {
		magnet.Leads = *req.Leads
	}
	if req.Conversion != nil {
		magnet.Conversion = *req.Conversion
	}

	return magnet.WithDefaults(), nil
}

// DecodeUpdateLeadMagnet valida o payload de atualização parcial; o objeto vazio é válido
func DecodeUpdateLeadMagnet(body []byte) (entities.LeadMagnetPatch, error) {
	var req UpdateLeadMagnetRequest
	if err := decodeRequest(body, &req); err != nil {
		return entities.LeadMagnetPatch{}, err
	}

	return entities.LeadMagnetPatch{
		Title:       req.Title,
		Type:        req.Type,
		Industry:    req.Industry,
		Description: req.Description,
		Status:      req.Status,
		Leads:       req.Leads,
		Conversion:  req.Conversion,
	}, nil
}
