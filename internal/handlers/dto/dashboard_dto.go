package dto

import "github.com/rafabene/leadfunnel-backend/internal/services"

// DashboardStatsResponse representa as métricas agregadas do dashboard
type DashboardStatsResponse struct {
	TotalLeads     int    `json:"totalLeads"`
	HotLeads       int    `json:"hotLeads"`
	ConversionRate string `json:"conversionRate"`
	ActiveFunnels  int    `json:"activeFunnels"`
	AverageScore   int    `json:"averageScore"`
}

// ToDashboardStatsResponse converte as métricas calculadas pelo serviço
func ToDashboardStatsResponse(stats *services.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalLeads:     stats.TotalLeads,
		HotLeads:       stats.HotLeads,
		ConversionRate: stats.ConversionRate,
		ActiveFunnels:  stats.ActiveFunnels,
		AverageScore:   stats.AverageScore,
	}
}
