package entities

import (
	"time"

	"github.com/rafabene/leadfunnel-backend/internal/domain/valueobjects"
)

// LeadMagnet representa um ativo de conteúdo (funil) que gera leads.
// Leads e Conversion são contadores mantidos manualmente, não agregados.
type LeadMagnet struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Industry    string    `json:"industry"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Leads       int       `json:"leads"`
	Conversion  int       `json:"conversion"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewLeadMagnet contém os campos de criação de um lead magnet
type NewLeadMagnet struct {
	Title       string
	Type        string
	Industry    string
	Description *string
	Status      string
	Leads       int
	Conversion  int
}

// WithDefaults aplica os valores padrão do schema
func (n NewLeadMagnet) WithDefaults() NewLeadMagnet {
	if n.Status == "" {
		n.Status = string(valueobjects.MagnetStatusDraft)
	}
	return n
}

// Build materializa o lead magnet com ID e timestamps atribuídos pelo storage
func (n NewLeadMagnet) Build(id int64, now time.Time) *LeadMagnet {
	n = n.WithDefaults()
	return &LeadMagnet{
		ID:          id,
		Title:       n.Title,
		Type:        n.Type,
		Industry:    n.Industry,
		Description: cloneString(n.Description),
		Status:      n.Status,
		Leads:       n.Leads,
		Conversion:  n.Conversion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LeadMagnetPatch é uma atualização parcial de lead magnet
type LeadMagnetPatch struct {
	Title       *string
	Type        *string
	Industry    *string
	Description Optional[string]
	Status      *string
	Leads       *int
	Conversion  *int
}

// IsEmpty indica se nenhum campo foi enviado
func (p LeadMagnetPatch) IsEmpty() bool {
	return p.Title == nil && p.Type == nil && p.Industry == nil && !p.Description.Set &&
		p.Status == nil && p.Leads == nil && p.Conversion == nil
}

// Apply copia para o lead magnet apenas os campos presentes no patch
func (p LeadMagnetPatch) Apply(m *LeadMagnet) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Industry != nil {
		m.Industry = *p.Industry
	}
	p.Description.apply(&m.Description)
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Leads != nil {
		m.Leads = *p.Leads
	}
	if p.Conversion != nil {
		m.Conversion = *p.Conversion
	}
}

// Clone retorna uma cópia profunda do lead magnet
func (m *LeadMagnet) Clone() *LeadMagnet {
	c := *m
	c.Description = cloneString(m.Description)
	return &c
}
