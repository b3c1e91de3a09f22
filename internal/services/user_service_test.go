package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/logging"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		service *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = services.NewUserService(memory.NewStorage(memory.WithoutSampleData()), logging.NewNopLogger())
	})

	It("retorna ErrUserNotFound para usuário desconhecido", func() {
		_, err := service.GetUser(ctx, "missing")
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
	})

	It("rejeita upsert sem ID", func() {
		_, err := service.UpsertUser(ctx, entities.UpsertUser{ID: "  "})
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
	})

	It("sobrescreve o perfil e preserva CreatedAt", func() {
		first, err := service.UpsertUser(ctx, entities.UpsertUser{ID: "42", Email: strPtr("old@example.com")})
		Expect(err).NotTo(HaveOccurred())

		second, err := service.UpsertUser(ctx, entities.UpsertUser{ID: "42", Email: strPtr("new@example.com")})
		Expect(err).NotTo(HaveOccurred())

		Expect(*second.Email).To(Equal("new@example.com"))
		Expect(second.CreatedAt).To(Equal(first.CreatedAt))
		Expect(second.UpdatedAt).To(BeTemporally(">", first.UpdatedAt))
	})

	It("mapeia as claims do ID token", func() {
		user, err := service.SyncFromClaims(ctx, map[string]any{
			"sub":               "user-1",
			"email":             "ana@example.com",
			"first_name":        "Ana",
			"family_name":       "Silva",
			"profile_image_url": "https://img.example.com/ana.png",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(user.ID).To(Equal("user-1"))
		Expect(*user.FirstName).To(Equal("Ana"))
		Expect(*user.LastName).To(Equal("Silva"))
		Expect(*user.ProfileImageURL).To(Equal("https://img.example.com/ana.png"))
		Expect(user.DisplayName()).To(Equal("Ana Silva"))

		stored, err := service.GetUser(ctx, "user-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(user))
	})
})
