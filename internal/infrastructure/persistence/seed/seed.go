package seed

import (
	"context"
	"fmt"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

func ptr(s string) *string { return &s }

// SampleLeads são os leads de demonstração gravados na inicialização
func SampleLeads() []entities.NewLead {
	return []entities.NewLead{
		{
			Name:   "Sarah Johnson",
			Email:  "sarah.johnson@email.com",
			Phone:  ptr("+1 (555) 123-4567"),
			Source: "LinkedIn Quiz",
			Status: "hot",
			Score:  95,
			Tags:   []string{"fitness", "premium"},
		},
		{
			Name:   "Mike Chen",
			Email:  "mike.chen@company.com",
			Phone:  ptr("+1 (555) 234-5678"),
			Source: "Facebook Lead Magnet",
			Status: "warm",
			Score:  78,
			Tags:   []string{"business", "startup"},
		},
		{
			Name:   "Emma Davis",
			Email:  "emma.davis@email.com",
			Phone:  ptr("+1 (555) 345-6789"),
			Source: "Instagram Story",
			Status: "cold",
			Score:  45,
			Tags:   []string{"health"},
		},
	}
}

// SampleLeadMagnets são os lead magnets de demonstração gravados na inicialização
func SampleLeadMagnets() []entities.NewLeadMagnet {
	return []entities.NewLeadMagnet{
		{
			Title:       "Ultimate Fitness Challenge Guide",
			Type:        "eBook",
			Industry:    "Fitness",
			Description: ptr("A comprehensive guide to fitness challenges"),
			Status:      "active",
			Leads:       234,
			Conversion:  24,
		},
		{
			Title:       "What's Your Investment Style?",
			Type:        "Quiz",
			Industry:    "Finance",
			Description: ptr("Interactive quiz to determine investment style"),
			Status:      "active",
			Leads:       189,
			Conversion:  31,
		},
	}
}

// Writer é o subconjunto do Storage usado pelo seed
type Writer interface {
	CreateLead(ctx context.Context, lead entities.NewLead) (*entities.Lead, error)
	CreateLeadMagnet(ctx context.Context, magnet entities.NewLeadMagnet) (*entities.LeadMagnet, error)
}

var _ Writer = (repositories.Storage)(nil)

// Apply grava os registros de demonstração em ordem
func Apply(ctx context.Context, w Writer) error {
	for _, l := range SampleLeads() {
		if _, err := w.CreateLead(ctx, l); err != nil {
			return fmt.Errorf("seed lead %q: %w", l.Name, err)
		}
	}
	for _, m := range SampleLeadMagnets() {
		if _, err := w.CreateLeadMagnet(ctx, m); err != nil {
			return fmt.Errorf("seed lead magnet %q: %w", m.Title, err)
		}
	}
	return nil
}
