package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

func leadsWith(statuses []string, scores []int) []*entities.Lead {
	leads := make([]*entities.Lead, len(statuses))
	for i := range statuses {
		leads[i] = &entities.Lead{ID: int64(i + 1), Status: statuses[i], Score: scores[i]}
	}
	return leads
}

var _ = Describe("DashboardService", func() {
	Describe("ComputeStats", func() {
		It("não divide por zero sem leads", func() {
			stats := services.ComputeStats(nil, nil)

			Expect(stats.TotalLeads).To(BeZero())
			Expect(stats.HotLeads).To(BeZero())
			Expect(stats.ConversionRate).To(Equal("0.0"))
			Expect(stats.AverageScore).To(BeZero())
			Expect(stats.ActiveFunnels).To(BeZero())
		})

		It("calcula o exemplo de referência", func() {
			leads := leadsWith([]string{"hot", "hot", "qualified", "cold"}, []int{95, 80, 70, 10})

			stats := services.ComputeStats(leads, nil)

			Expect(stats.TotalLeads).To(Equal(4))
			Expect(stats.HotLeads).To(Equal(2))
			Expect(stats.ConversionRate).To(Equal("25.0"))
			Expect(stats.AverageScore).To(Equal(64))
		})

		It("conta apenas lead magnets ativos", func() {
			magnets := []*entities.LeadMagnet{{Status: "active"}, {Status: "paused"}, {Status: "draft"}, {Status: "active"}}

			Expect(services.ComputeStats(nil, magnets).ActiveFunnels).To(Equal(2))
		})

		DescribeTable("formata a taxa de conversão com uma casa decimal",
			func(qualified, total int, expected string) {
				statuses := make([]string, total)
				for i := range statuses {
					statuses[i] = "cold"
					if i < qualified {
						statuses[i] = "qualified"
					}
				}
				stats := services.ComputeStats(leadsWith(statuses, make([]int, total)), nil)
				Expect(stats.ConversionRate).To(Equal(expected))
			},
			Entry("um terço", 1, 3, "33.3"),
			Entry("dois terços", 2, 3, "66.7"),
			Entry("todos", 5, 5, "100.0"),
			Entry("nenhum", 0, 7, "0.0"),
			Entry("empate arredonda para cima", 1, 16, "6.3"),
		)

		DescribeTable("arredonda a média de score",
			func(scores []int, expected int) {
				statuses := make([]string, len(scores))
				for i := range statuses {
					statuses[i] = "warm"
				}
				Expect(services.ComputeStats(leadsWith(statuses, scores), nil).AverageScore).To(Equal(expected))
			},
			Entry("meio arredonda para cima", []int{1, 2}, 2),
			Entry("abaixo do meio", []int{1, 1, 2}, 1),
			Entry("valor exato", []int{50, 70}, 60),
		)
	})

	Describe("Stats", func() {
		It("usa os dados de demonstração", func() {
			storage := memory.NewStorage()
			service := services.NewDashboardService(storage, storage)

			stats, err := service.Stats(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalLeads).To(Equal(3))
			Expect(stats.HotLeads).To(Equal(1))
			Expect(stats.ConversionRate).To(Equal("0.0"))
			Expect(stats.ActiveFunnels).To(Equal(2))
			Expect(stats.AverageScore).To(Equal(73)) // (95+78+45)/3 = 72.67
		})

		It("propaga falhas do storage", func() {
			service := services.NewDashboardService(failingStorage{}, failingStorage{})

			_, err := service.Stats(context.Background())
			Expect(err).To(MatchError(errStorageDown))
		})
	})
})
