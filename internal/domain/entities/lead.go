package entities

import (
	"time"

	"github.com/rafabene/leadfunnel-backend/internal/domain/valueobjects"
)

// Lead representa um potencial cliente capturado por um funil
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewLead contém os campos de criação de um lead (sem ID e timestamps)
type NewLead struct {
	Name   string
	Email  string
	Phone  *string
	Source string
	Status string
	Score  int
	Tags   []string
}

// WithDefaults aplica os valores padrão do schema
func (n NewLead) WithDefaults() NewLead {
	if n.Status == "" {
		n.Status = string(valueobjects.LeadStatusCold)
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n
}

// Build materializa o lead com ID e timestamps atribuídos pelo storage
func (n NewLead) Build(id int64, now time.Time) *Lead {
	n = n.WithDefaults()
	return &Lead{
		ID:        id,
		Name:      n.Name,
		Email:     n.Email,
		Phone:     cloneString(n.Phone),
		Source:    n.Source,
		Status:    n.Status,
		Score:     n.Score,
		Tags:      append([]string{}, n.Tags...),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LeadPatch é uma atualização parcial; nil significa "campo ausente"
type LeadPatch struct {
	Name   *string
	Email  *string
	Phone  Optional[string]
	Source *string
	Status *string
	Score  *int
	Tags   *[]string
}

// IsEmpty indica se nenhum campo foi enviado
func (p LeadPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && !p.Phone.Set && p.Source == nil &&
		p.Status == nil && p.Score == nil && p.Tags == nil
}

// Apply copia para o lead apenas os campos presentes no patch.
// UpdatedAt é responsabilidade do storage.
func (p LeadPatch) Apply(l *Lead) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	p.Phone.apply(&l.Phone)
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Score != nil {
		l.Score = *p.Score
	}
	if p.Tags != nil {
		l.Tags = append([]string{}, (*p.Tags)...)
	}
}

// Clone retorna uma cópia profunda do lead
func (l *Lead) Clone() *Lead {
	c := *l
	c.Phone = cloneString(l.Phone)
	c.Tags = append([]string{}, l.Tags...)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
