// Package storagetest contém o contrato comportamental compartilhado pelos
// backends de repositories.Storage.
package storagetest

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
)

func ptr[T any](v T) *T { return &v }

// SampleLead é um lead válido para os testes
func SampleLead(name string) entities.NewLead {
	return entities.NewLead{
		Name:   name,
		Email:  name + "@example.com",
		Phone:  ptr("+55 11 99999-0000"),
		Source: "Fitness Quiz",
		Status: "warm",
		Score:  50,
		Tags:   []string{"quiz", "fitness"},
	}
}

// SampleLeadMagnet é um lead magnet válido para os testes
func SampleLeadMagnet(title string) entities.NewLeadMagnet {
	return entities.NewLeadMagnet{
		Title:       title,
		Type:        "eBook",
		Industry:    "Fitness",
		Description: ptr("Guia completo"),
	}
}

// Contract registra as specs do contrato. newStorage deve retornar um storage vazio.
func Contract(newStorage func() repositories.Storage) {
	var (
		ctx     context.Context
		storage repositories.Storage
	)

	BeforeEach(func() {
		ctx = context.Background()
		storage = newStorage()
	})

	Describe("leads", func() {
		It("cria com IDs distintos e timestamps iguais", func() {
			a, err := storage.CreateLead(ctx, SampleLead("ana"))
			Expect(err).NotTo(HaveOccurred())
			b, err := storage.CreateLead(ctx, SampleLead("bia"))
			Expect(err).NotTo(HaveOccurred())

			Expect(a.ID).NotTo(Equal(b.ID))
			Expect(a.CreatedAt).To(Equal(a.UpdatedAt))
			Expect(b.CreatedAt).To(Equal(b.UpdatedAt))
		})

		It("aplica os defaults", func() {
			lead, err := storage.CreateLead(ctx, entities.NewLead{Name: "x", Email: "x@x.com", Source: "s"}.WithDefaults())
			Expect(err).NotTo(HaveOccurred())

			Expect(lead.Status).To(Equal("cold"))
			Expect(lead.Score).To(BeZero())
			Expect(lead.Tags).NotTo(BeNil())
			Expect(lead.Tags).To(BeEmpty())
			Expect(lead.Phone).To(BeNil())
		})

		It("retorna na leitura o mesmo valor da criação", func() {
			created, err := storage.CreateLead(ctx, SampleLead("ana"))
			Expect(err).NotTo(HaveOccurred())

			found, err := storage.GetLead(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(created))
		})

		It("retorna nil para ID inexistente", func() {
			found, err := storage.GetLead(ctx, 999999)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			updated, err := storage.UpdateLead(ctx, 999999, entities.LeadPatch{Name: ptr("x")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated).To(BeNil())
		})

		It("atualiza apenas os campos presentes", func() {
			created, err := storage.CreateLead(ctx, SampleLead("ana"))
			Expect(err).NotTo(HaveOccurred())

			updated, err := storage.UpdateLead(ctx, created.ID, entities.LeadPatch{
				Score: ptr(90),
				Phone: entities.Null[string](),
				Tags:  ptr([]string{"vip"}),
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.Score).To(Equal(90))
			Expect(updated.Phone).To(BeNil())
			Expect(updated.Tags).To(Equal([]string{"vip"}))
			Expect(updated.Name).To(Equal(created.Name))
			Expect(updated.Email).To(Equal(created.Email))
			Expect(updated.Status).To(Equal(created.Status))
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
			Expect(updated.UpdatedAt).To(BeTemporally(">", created.UpdatedAt))

			found, err := storage.GetLead(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(updated))
		})

		It("avança UpdatedAt a cada atualização", func() {
			created, err := storage.CreateLead(ctx, SampleLead("ana"))
			Expect(err).NotTo(HaveOccurred())

			previous := created.UpdatedAt
			for i := 0; i < 3; i++ {
				updated, err := storage.UpdateLead(ctx, created.ID, entities.LeadPatch{})
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.UpdatedAt).To(BeTemporally(">", previous))
				previous = updated.UpdatedAt
			}
		})

		It("remove uma única vez", func() {
			created, err := storage.CreateLead(ctx, SampleLead("ana"))
			Expect(err).NotTo(HaveOccurred())

			Expect(storage.DeleteLead(ctx, created.ID)).To(BeTrue())
			Expect(storage.DeleteLead(ctx, created.ID)).To(BeFalse())

			found, err := storage.GetLead(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("lista do mais recente para o mais antigo", func() {
			for _, name := range []string{"a", "b", "c"} {
				_, err := storage.CreateLead(ctx, SampleLead(name))
				Expect(err).NotTo(HaveOccurred())
			}

			leads, err := storage.GetLeads(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(leads).To(HaveLen(3))
			Expect(leads[0].Name).To(Equal("c"))
			Expect(leads[2].Name).To(Equal("a"))
			for i := 1; i < len(leads); i++ {
				Expect(leads[i-1].CreatedAt).To(BeTemporally(">=", leads[i].CreatedAt))
			}
		})

		It("retorna lista vazia, nunca nil", func() {
			leads, err := storage.GetLeads(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(leads).NotTo(BeNil())

			body, err := json.Marshal(leads)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(Equal("[]"))
		})

		It("isola o valor retornado do valor armazenado", func() {
			created, err := storage.CreateLead(ctx, SampleLead("ana"))
			Expect(err).NotTo(HaveOccurred())

			created.Tags[0] = "mutated"
			created.Name = "mutated"

			found, err := storage.GetLead(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("ana"))
			Expect(found.Tags).To(Equal([]string{"quiz", "fitness"}))
		})
	})

	Describe("lead magnets", func() {
		It("cria com os defaults e lê o mesmo valor", func() {
			created, err := storage.CreateLeadMagnet(ctx, SampleLeadMagnet("Guia").WithDefaults())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal("draft"))
			Expect(created.CreatedAt).To(Equal(created.UpdatedAt))

			found, err := storage.GetLeadMagnet(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(created))
		})

		It("atualiza contadores e limpa a descrição", func() {
			created, err := storage.CreateLeadMagnet(ctx, SampleLeadMagnet("Guia").WithDefaults())
			Expect(err).NotTo(HaveOccurred())

			updated, err := storage.UpdateLeadMagnet(ctx, created.ID, entities.LeadMagnetPatch{
				Status:      ptr("active"),
				Leads:       ptr(10),
				Description: entities.Null[string](),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal("active"))
			Expect(updated.Leads).To(Equal(10))
			Expect(updated.Conversion).To(BeZero())
			Expect(updated.Description).To(BeNil())
			Expect(updated.Title).To(Equal("Guia"))
			Expect(updated.UpdatedAt).To(BeTemporally(">", created.UpdatedAt))
		})

		It("remove uma única vez", func() {
			created, err := storage.CreateLeadMagnet(ctx, SampleLeadMagnet("Guia").WithDefaults())
			Expect(err).NotTo(HaveOccurred())

			Expect(storage.DeleteLeadMagnet(ctx, created.ID)).To(BeTrue())
			Expect(storage.DeleteLeadMagnet(ctx, created.ID)).To(BeFalse())
		})

		It("lista do mais recente para o mais antigo", func() {
			_, err := storage.CreateLeadMagnet(ctx, SampleLeadMagnet("primeiro").WithDefaults())
			Expect(err).NotTo(HaveOccurred())
			_, err = storage.CreateLeadMagnet(ctx, SampleLeadMagnet("segundo").WithDefaults())
			Expect(err).NotTo(HaveOccurred())

			magnets, err := storage.GetLeadMagnets(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(magnets).To(HaveLen(2))
			Expect(magnets[0].Title).To(Equal("segundo"))
		})
	})

	Describe("users", func() {
		It("retorna nil para usuário desconhecido", func() {
			user, err := storage.GetUser(ctx, "nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(BeNil())
		})

		It("cria e depois sobrescreve o perfil", func() {
			first, err := storage.UpsertUser(ctx, entities.UpsertUser{ID: "sub-1", Email: ptr("a@example.com"), FirstName: ptr("Ana")})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.CreatedAt).To(Equal(first.UpdatedAt))

			second, err := storage.UpsertUser(ctx, entities.UpsertUser{ID: "sub-1", Email: ptr("b@example.com")})
			Expect(err).NotTo(HaveOccurred())
			Expect(*second.Email).To(Equal("b@example.com"))
			Expect(second.FirstName).To(BeNil())
			Expect(second.CreatedAt).To(Equal(first.CreatedAt))
			Expect(second.UpdatedAt).To(BeTemporally(">", first.UpdatedAt))

			found, err := storage.GetUser(ctx, "sub-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(second))
		})
	})
}
