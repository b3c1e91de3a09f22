package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/memory"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/storagetest"
)

func TestMemoryStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Memory Storage Suite")
}

// frozenClock devolve sempre o mesmo instante
type frozenClock struct{ at time.Time }

func (c frozenClock) Now() time.Time { return c.at }

var _ = Describe("Storage em memória", func() {
	Describe("contrato", func() {
		storagetest.Contract(func() repositories.Storage {
			return memory.NewStorage(memory.WithoutSampleData())
		})
	})

	It("começa com os dados de demonstração", func() {
		storage := memory.NewStorage()
		ctx := context.Background()

		leads, err := storage.GetLeads(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(leads).To(HaveLen(3))

		magnets, err := storage.GetLeadMagnets(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(magnets).To(HaveLen(2))

		// o próximo ID continua a sequência dos dados de demonstração
		lead, err := storage.CreateLead(ctx, storagetest.SampleLead("novo"))
		Expect(err).NotTo(HaveOccurred())
		Expect(lead.ID).To(Equal(int64(4)))
	})

	It("desempata a ordenação pelo maior ID com relógio parado", func() {
		at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		storage := memory.NewStorage(memory.WithoutSampleData(), memory.WithClock(frozenClock{at: at}))
		ctx := context.Background()

		for _, name := range []string{"a", "b", "c"} {
			_, err := storage.CreateLead(ctx, storagetest.SampleLead(name))
			Expect(err).NotTo(HaveOccurred())
		}

		leads, err := storage.GetLeads(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect([]int64{leads[0].ID, leads[1].ID, leads[2].ID}).To(Equal([]int64{3, 2, 1}))
	})

	It("avança UpdatedAt mesmo com relógio parado", func() {
		at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		storage := memory.NewStorage(memory.WithoutSampleData(), memory.WithClock(frozenClock{at: at}))
		ctx := context.Background()

		lead, err := storage.CreateLead(ctx, storagetest.SampleLead("a"))
		Expect(err).NotTo(HaveOccurred())

		updated, err := storage.UpdateLead(ctx, lead.ID, entities.LeadPatch{})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.UpdatedAt).To(Equal(at.Add(time.Microsecond)))
	})

	It("suporta criações concorrentes sem IDs duplicados", func() {
		storage := memory.NewStorage(memory.WithoutSampleData())
		ctx := context.Background()

		const workers = 20
		ids := make(chan int64, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				lead, err := storage.CreateLead(ctx, storagetest.SampleLead("c"))
				Expect(err).NotTo(HaveOccurred())
				ids <- lead.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[int64]bool{}
		for id := range ids {
			Expect(seen).NotTo(HaveKey(id))
			seen[id] = true
		}
		Expect(seen).To(HaveLen(workers))
	})
})
