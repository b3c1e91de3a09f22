package services_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/logging"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

func strPtr(s string) *string { return &s }

var _ = Describe("LeadService", func() {
	var (
		ctx     context.Context
		service *services.LeadService
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = services.NewLeadService(memory.NewStorage(memory.WithoutSampleData()), logging.NewNopLogger())
	})

	Describe("CreateLead", func() {
		It("atribui ID e timestamps iguais", func() {
			lead, err := service.CreateLead(ctx, entities.NewLead{Name: "Ana", Email: "ana@example.com", Source: "Quiz"})

			Expect(err).NotTo(HaveOccurred())
			Expect(lead.ID).To(Equal(int64(1)))
			Expect(lead.Status).To(Equal("cold"))
			Expect(lead.Tags).To(BeEmpty())
			Expect(lead.CreatedAt).To(Equal(lead.UpdatedAt))
		})

		It("gera IDs crescentes", func() {
			first, _ := service.CreateLead(ctx, entities.NewLead{Name: "A", Email: "a@x.com", Source: "s"})
			second, _ := service.CreateLead(ctx, entities.NewLead{Name: "B", Email: "b@x.com", Source: "s"})

			Expect(second.ID).To(BeNumerically(">", first.ID))
		})
	})

	Describe("GetLead", func() {
		It("retorna ErrLeadNotFound para ID inexistente", func() {
			_, err := service.GetLead(ctx, 42)
			Expect(err).To(MatchError(domainerrors.ErrLeadNotFound))
		})

		It("retorna o mesmo objeto criado", func() {
			created, _ := service.CreateLead(ctx, entities.NewLead{
				Name: "Ana", Email: "ana@example.com", Phone: strPtr("123"), Source: "Quiz", Tags: []string{"vip"},
			})

			found, err := service.GetLead(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(created))
		})
	})

	Describe("UpdateLead", func() {
		It("mantém os campos não enviados e avança UpdatedAt", func() {
			created, _ := service.CreateLead(ctx, entities.NewLead{Name: "Ana", Email: "ana@example.com", Source: "Quiz", Score: 10})

			updated, err := service.UpdateLead(ctx, created.ID, entities.LeadPatch{Status: strPtr("hot")})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal("hot"))
			Expect(updated.Name).To(Equal("Ana"))
			Expect(updated.Score).To(Equal(10))
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
			Expect(updated.UpdatedAt).To(BeTemporally(">", created.UpdatedAt))
		})

		It("avança UpdatedAt mesmo com patch vazio", func() {
			created, _ := service.CreateLead(ctx, entities.NewLead{Name: "Ana", Email: "ana@example.com", Source: "Quiz"})

			first, err := service.UpdateLead(ctx, created.ID, entities.LeadPatch{})
			Expect(err).NotTo(HaveOccurred())
			second, err := service.UpdateLead(ctx, created.ID, entities.LeadPatch{})
			Expect(err).NotTo(HaveOccurred())

			Expect(first.UpdatedAt).To(BeTemporally(">", created.UpdatedAt))
			Expect(second.UpdatedAt).To(BeTemporally(">", first.UpdatedAt))
		})

		It("registra no log se o patch só atualiza o timestamp", func() {
			var logs bytes.Buffer
			logged := services.NewLeadService(memory.NewStorage(memory.WithoutSampleData()), logging.NewSlogLoggerWithWriter("debug", &logs))
			created, _ := logged.CreateLead(ctx, entities.NewLead{Name: "Ana", Email: "ana@example.com", Source: "Quiz"})

			_, err := logged.UpdateLead(ctx, created.ID, entities.LeadPatch{})
			Expect(err).NotTo(HaveOccurred())
			Expect(logs.String()).To(ContainSubstring(`"touch_only":true`))

			logs.Reset()
			_, err = logged.UpdateLead(ctx, created.ID, entities.LeadPatch{Status: strPtr("warm")})
			Expect(err).NotTo(HaveOccurred())
			Expect(logs.String()).To(ContainSubstring(`"touch_only":false`))
		})

		It("retorna ErrLeadNotFound para ID inexistente", func() {
			_, err := service.UpdateLead(ctx, 99, entities.LeadPatch{Name: strPtr("x")})
			Expect(err).To(MatchError(domainerrors.ErrLeadNotFound))
		})
	})

	Describe("DeleteLead", func() {
		It("remove uma vez e depois retorna ErrLeadNotFound", func() {
			created, _ := service.CreateLead(ctx, entities.NewLead{Name: "Ana", Email: "ana@example.com", Source: "Quiz"})

			Expect(service.DeleteLead(ctx, created.ID)).To(Succeed())
			Expect(service.DeleteLead(ctx, created.ID)).To(MatchError(domainerrors.ErrLeadNotFound))
		})
	})

	Context("com storage indisponível", func() {
		BeforeEach(func() {
			service = services.NewLeadService(failingStorage{}, logging.NewNopLogger())
		})

		It("propaga o erro sem convertê-lo em not found", func() {
			_, err := service.GetLead(ctx, 1)
			Expect(err).To(MatchError(errStorageDown))

			err = service.DeleteLead(ctx, 1)
			Expect(err).To(MatchError(errStorageDown))
		})
	})
})

var _ = Describe("LeadMagnetService", func() {
	var (
		ctx     context.Context
		service *services.LeadMagnetService
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = services.NewLeadMagnetService(memory.NewStorage(memory.WithoutSampleData()), logging.NewNopLogger())
	})

	It("aplica status draft e contadores zerados", func() {
		magnet, err := service.CreateLeadMagnet(ctx, entities.NewLeadMagnet{Title: "Guia", Type: "eBook", Industry: "Fitness"})

		Expect(err).NotTo(HaveOccurred())
		Expect(magnet.Status).To(Equal("draft"))
		Expect(magnet.Leads).To(BeZero())
		Expect(magnet.Conversion).To(BeZero())
	})

	It("limpa a descrição com null explícito", func() {
		magnet, _ := service.CreateLeadMagnet(ctx, entities.NewLeadMagnet{
			Title: "Guia", Type: "eBook", Industry: "Fitness", Description: strPtr("texto"),
		})

		updated, err := service.UpdateLeadMagnet(ctx, magnet.ID, entities.LeadMagnetPatch{Description: entities.Null[string]()})

		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Description).To(BeNil())
		Expect(updated.Title).To(Equal("Guia"))
	})

	It("retorna ErrLeadMagnetNotFound ao remover ID inexistente", func() {
		Expect(service.DeleteLeadMagnet(ctx, 7)).To(MatchError(domainerrors.ErrLeadMagnetNotFound))
	})

	It("usa sequência de IDs independente dos leads", func() {
		storage := memory.NewStorage(memory.WithoutSampleData())
		leads := services.NewLeadService(storage, logging.NewNopLogger())
		magnets := services.NewLeadMagnetService(storage, logging.NewNopLogger())

		_, _ = leads.CreateLead(ctx, entities.NewLead{Name: "A", Email: "a@x.com", Source: "s"})
		_, _ = leads.CreateLead(ctx, entities.NewLead{Name: "B", Email: "b@x.com", Source: "s"})
		magnet, err := magnets.CreateLeadMagnet(ctx, entities.NewLeadMagnet{Title: "T", Type: "Quiz", Industry: "I"})

		Expect(err).NotTo(HaveOccurred())
		Expect(magnet.ID).To(Equal(int64(1)))
	})
})
