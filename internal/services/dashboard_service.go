package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	"github.com/rafabene/leadfunnel-backend/internal/domain/valueobjects"
)

// DashboardStats são as métricas derivadas exibidas no dashboard
type DashboardStats struct {
	TotalLeads     int
	HotLeads       int
	ConversionRate string // percentual com uma casa decimal, ex.: "25.0"
	ActiveFunnels  int
	AverageScore   int
}

// DashboardService calcula as métricas a cada chamada, sem cache.
// O custo é linear no número de leads e lead magnets.
type DashboardService struct {
	leads   repositories.LeadRepository
	magnets repositories.LeadMagnetRepository
}

// NewDashboardService cria um novo DashboardService
func NewDashboardService(leads repositories.LeadRepository, magnets repositories.LeadMagnetRepository) *DashboardService {
	return &DashboardService{leads: leads, magnets: magnets}
}

// Stats carrega leads e lead magnets e calcula as métricas
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	leads, err := s.leads.GetLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	magnets, err := s.magnets.GetLeadMagnets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lead magnets: %w", err)
	}

	stats := ComputeStats(leads, magnets)
	return &stats, nil
}

// ComputeStats calcula as métricas a partir dos registros
func ComputeStats(leads []*entities.Lead, magnets []*entities.LeadMagnet) DashboardStats {
	stats := DashboardStats{
		TotalLeads:     len(leads),
		ConversionRate: "0.0",
	}

	qualified, scoreSum := 0, 0
	for _, l := range leads {
		switch {
		case valueobjects.LeadStatusHot.Is(l.Status):
			stats.HotLeads++
		case valueobjects.LeadStatusQualified.Is(l.Status):
			qualified++
		}
		scoreSum += l.Score
	}

	for _, m := range magnets {
		if valueobjects.MagnetStatusActive.Is(m.Status) {
			stats.ActiveFunnels++
		}
	}

	if len(leads) > 0 {
		n := float64(len(leads))
		stats.ConversionRate = formatOneDecimal(float64(qualified) / n * 100)
		stats.AverageScore = roundHalfUp(float64(scoreSum) / n)
	}

	return stats
}

// roundHalfUp arredonda .5 para cima (em direção a +inf)
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// formatOneDecimal formata com uma casa decimal, empates arredondados para cima
// (fmt usaria arredondamento bancário: 12.25 -> "12.2")
func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(math.Floor(v*10+0.5)/10, 'f', 1, 64)
}
