package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/leadfunnel-backend/internal/domain/entities"
	"github.com/rafabene/leadfunnel-backend/internal/domain/repositories"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/persistence/memory"
)

func decodeLead(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var lead map[string]any
	require.NoError(t, json.Unmarshal(body, &lead))
	return lead
}

func TestLeadHandler_ListLeads(t *testing.T) {
	ts := newTestServer(t, memory.NewStorage())

	w := ts.do(t, http.MethodGet, "/api/leads", "")

	require.Equal(t, http.StatusOK, w.Code)
	var leads []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 3)
	for _, key := range []string{"id", "name", "email", "phone", "source", "status", "score", "tags", "createdAt", "updatedAt"} {
		assert.Contains(t, leads[0], key)
	}
}

func TestLeadHandler_CreateLead(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{
			name:       "válido com defaults",
			body:       `{"name":"Ana","email":"ana@example.com","source":"Quiz"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "sem name",
			body:       `{"email":"a@x.com","source":"Quiz"}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"name"},
		},
		{
			name:       "name vazio e score com tipo errado",
			body:       `{"name":"","email":"a@x.com","source":"Quiz","score":"high"}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"name", "score"},
		},
		{
			name:       "campo desconhecido",
			body:       `{"name":"Ana","email":"a@x.com","source":"Quiz","vip":true}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"vip"},
		},
		{
			name:       "corpo não é objeto",
			body:       `[1,2]`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, memory.NewStorage(memory.WithoutSampleData()))

			w := ts.do(t, http.MethodPost, "/api/leads", tt.body)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusCreated {
				lead := decodeLead(t, w.Body.Bytes())
				assert.Equal(t, float64(1), lead["id"])
				assert.Equal(t, "cold", lead["status"])
				assert.Equal(t, float64(0), lead["score"])
				assert.Equal(t, []any{}, lead["tags"])
				assert.Nil(t, lead["phone"])
				assert.Equal(t, lead["createdAt"], lead["updatedAt"])
				return
			}

			p := decodeProblem(t, w)
			assert.Equal(t, "Invalid lead data", p.Message)
			fields := make([]string, 0, len(p.Errors))
			for _, fe := range p.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.wantFields, fields)

			leads, err := ts.storage.GetLeads(context.Background())
			require.NoError(t, err)
			assert.Empty(t, leads)
		})
	}
}

func TestLeadHandler_GetLead(t *testing.T) {
	ts := newTestServer(t, memory.NewStorage())

	t.Run("existente", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/leads/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Sarah Johnson", decodeLead(t, w.Body.Bytes())["name"])
	})

	for _, path := range []string{"/api/leads/999", "/api/leads/abc"} {
		t.Run("404 "+path, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, path, "")
			require.Equal(t, http.StatusNotFound, w.Code)

			p := decodeProblem(t, w)
			assert.Equal(t, "Lead not found", p.Message)
			assert.Equal(t, http.StatusNotFound, p.Status)
			assert.Equal(t, path, p.Instance)
		})
	}

	t.Run("mensagem traduzida", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/leads/999?lang=pt-BR", "")
		assert.Equal(t, "Lead não encontrado", decodeProblem(t, w).Message)
	})
}

func TestLeadHandler_UpdateLead(t *testing.T) {
	ts := newTestServer(t, memory.NewStorage())
	ctx := context.Background()

	t.Run("atualização parcial", func(t *testing.T) {
		before, err := ts.storage.GetLead(ctx, 2)
		require.NoError(t, err)

		w := ts.do(t, http.MethodPut, "/api/leads/2", `{"status":"qualified","phone":null}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		lead := decodeLead(t, w.Body.Bytes())
		assert.Equal(t, "qualified", lead["status"])
		assert.Nil(t, lead["phone"])
		assert.Equal(t, before.Name, lead["name"])
		assert.NotEqual(t, lead["createdAt"], lead["updatedAt"])
	})

	t.Run("campo desconhecido não altera o registro", func(t *testing.T) {
		before, err := ts.storage.GetLead(ctx, 1)
		require.NoError(t, err)

		w := ts.do(t, http.MethodPut, "/api/leads/1", `{"name":"Outro","color":"red"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		p := decodeProblem(t, w)
		require.Len(t, p.Errors, 1)
		assert.Equal(t, "color", p.Errors[0].Field)

		after, err := ts.storage.GetLead(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("corpo vazio é aceito", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/leads/3", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inexistente", func(t *testing.T) {
		w := ts.do(t, http.MethodPut, "/api/leads/999", `{"name":"x"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Lead not found", decodeProblem(t, w).Message)
	})
}

func TestLeadHandler_DeleteLead(t *testing.T) {
	ts := newTestServer(t, memory.NewStorage())

	w := ts.do(t, http.MethodDelete, "/api/leads/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Lead deleted successfully"}`, w.Body.String())

	w = ts.do(t, http.MethodDelete, "/api/leads/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Lead not found", decodeProblem(t, w).Message)

	w = ts.do(t, http.MethodGet, "/api/leads/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// brokenLeads falha em toda leitura de leads
type brokenLeads struct {
	repositories.Storage
}

func (brokenLeads) GetLeads(context.Context) ([]*entities.Lead, error) {
	return nil, errors.New("pq: relation \"leads\" does not exist")
}

func TestLeadHandler_StorageFailure(t *testing.T) {
	ts := newTestServer(t, brokenLeads{Storage: memory.NewStorage()})

	for _, path := range []string{"/api/leads", "/api/dashboard/stats"} {
		t.Run(path, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, path, "")

			require.Equal(t, http.StatusInternalServerError, w.Code)
			p := decodeProblem(t, w)
			assert.NotContains(t, w.Body.String(), "relation")
			assert.NotEmpty(t, p.Message)
		})
	}

	w := ts.do(t, http.MethodGet, "/api/leads", "")
	assert.Equal(t, "Failed to fetch leads", decodeProblem(t, w).Message)
}
