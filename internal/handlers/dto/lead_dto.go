package dto

import (
	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
)

// CreateLeadRequest representa a requisição para criar um lead
type CreateLeadRequest struct {
	Name   *string                     `json:"name" validate:"required,min=1"`
	Email  *string                     `json:"email" validate:"required,min=1"`
	Phone  entities.Optional[string]   `json:"phone"`
	Source *string                     `json:"source" validate:"required,min=1"`
	Status *string                     `json:"status" validate:"omitempty,min=1"`
	Score  *int                        `json:"score"`
	Tags   entities.Optional[[]string] `json:"tags"`
}

// UpdateLeadRequest representa a atualização parcial de um lead; todos os campos são opcionais
type UpdateLeadRequest struct {
	Name   *string                     `json:"name" validate:"omitempty,min=1"`
	Email  *string                     `json:"email" validate:"omitempty,min=1"`
	Phone  entities.Optional[string]   `json:"phone"`
	Source *string                     `json:"source" validate:"omitempty,min=1"`
	Status *string                     `json:"status" validate:"omitempty,min=1"`
	Score  *int                        `json:"score"`
	Tags   entities.Optional[[]string] `json:"tags"`
}

// DecodeCreateLead valida o payload de criação e aplica os valores padrão
func DecodeCreateLead(body []byte) (entities.NewLead, error) {
	var req CreateLeadRequest
	if err := decodeRequest(body, &req); err != nil {
		return entities.NewLead{}, err
	}

	lead := entities.NewLead{
		Name:   *req.Name,
		Email:  *req.Email,
		Phone:  req.Phone.Value,
		Source: *req.Source,
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Score != nil {
		lead.Score = *req.Score
	}
	if req.Tags.Value != nil {
		lead.Tags = *req.Tags.Value
	}

	return lead.WithDefaults(), nil
}

// DecodeUpdateLead valida o payload de atualização parcial; o objeto vazio é válido
func DecodeUpdateLead(body []byte) (entities.LeadPatch, error) {
	var req UpdateLeadRequest
	if err := decodeRequest(body, &req); err != nil {
		return entities.LeadPatch{}, err
	}

	patch := entities.LeadPatch{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Source: req.Source,
		Status: req.Status,
		Score:  req.Score,
	}
	if req.Tags.Set {
		// tags: null equivale à lista vazia
		tags := []string{}
		if req.Tags.Value != nil && *req.Tags.Value != nil {
			tags = *req.Tags.Value
		}
		patch.Tags = &tags
	}

	return patch, nil
}
