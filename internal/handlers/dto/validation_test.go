package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/leadfunnel-backend/internal/domain/errors"
)

func fieldErrors(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()
	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func fieldNames(errs []domainerrors.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestDecodeCreateLead(t *testing.T) {
	t.Run("aplica valores padrão", func(t *testing.T) {
		lead, err := DecodeCreateLead([]byte(`{"name":"Ana","email":"ana@example.com","source":"Quiz"}`))
		require.NoError(t, err)

		assert.Equal(t, "Ana", lead.Name)
		assert.Equal(t, "cold", lead.Status)
		assert.Equal(t, 0, lead.Score)
		assert.Equal(t, []string{}, lead.Tags)
		assert.Nil(t, lead.Phone)
	})

	t.Run("aceita todos os campos", func(t *testing.T) {
		lead, err := DecodeCreateLead([]byte(`{
			"name":"Ana","email":"ana@example.com","phone":"+55 11 9999","source":"Quiz",
			"status":"hot","score":87,"tags":["fitness","vip"]
		}`))
		require.NoError(t, err)

		require.NotNil(t, lead.Phone)
		assert.Equal(t, "+55 11 9999", *lead.Phone)
		assert.Equal(t, "hot", lead.Status)
		assert.Equal(t, 87, lead.Score)
		assert.Equal(t, []string{"fitness", "vip"}, lead.Tags)
	})

	t.Run("status desconhecido é aceito", func(t *testing.T) {
		lead, err := DecodeCreateLead([]byte(`{"name":"Ana","email":"a@b.c","source":"x","status":"nurturing"}`))
		require.NoError(t, err)
		assert.Equal(t, "nurturing", lead.Status)
	})

	t.Run("phone e tags nulos", func(t *testing.T) {
		lead, err := DecodeCreateLead([]byte(`{"name":"Ana","email":"a@b.c","source":"x","phone":null,"tags":null}`))
		require.NoError(t, err)
		assert.Nil(t, lead.Phone)
		assert.Equal(t, []string{}, lead.Tags)
	})

	t.Run("campo name ausente", func(t *testing.T) {
		_, err := DecodeCreateLead([]byte(`{"email":"ana@example.com","source":"Quiz"}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "required", errs[0].Tag)
	})

	t.Run("uma entrada por campo inválido", func(t *testing.T) {
		_, err := DecodeCreateLead([]byte(`{"name":"","score":"alto","tags":[1,2],"status":null,"owner":"x"}`))

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"email", "name", "owner", "score", "source", "status", "tags"}, fieldNames(errs))
	})

	t.Run("score decimal é rejeitado", func(t *testing.T) {
		_, err := DecodeCreateLead([]byte(`{"name":"Ana","email":"a@b.c","source":"x","score":4.5}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "score", errs[0].Field)
		assert.Equal(t, "type", errs[0].Tag)
		assert.Equal(t, "expected integer", errs[0].Message)
	})

	t.Run("tag null dentro do array é rejeitada", func(t *testing.T) {
		_, err := DecodeCreateLead([]byte(`{"name":"a","email":"e","source":"s","tags":["x",null]}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "tags", errs[0].Field)
		assert.Equal(t, "type", errs[0].Tag)
		assert.Equal(t, "expected array of strings", errs[0].Message)
	})

	t.Run("corpo que não é objeto", func(t *testing.T) {
		for _, body := range []string{`[]`, `"lead"`, `{`, `null`} {
			_, err := DecodeCreateLead([]byte(body))
			errs := fieldErrors(t, err)
			require.Len(t, errs, 1, body)
			assert.Equal(t, "body", errs[0].Field, body)
		}
	})
}

func TestDecodeUpdateLead(t *testing.T) {
	t.Run("objeto vazio é válido", func(t *testing.T) {
		patch, err := DecodeUpdateLead([]byte(`{}`))
		require.NoError(t, err)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("corpo vazio equivale a objeto vazio", func(t *testing.T) {
		patch, err := DecodeUpdateLead(nil)
		require.NoError(t, err)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("apenas os campos enviados", func(t *testing.T) {
		patch, err := DecodeUpdateLead([]byte(`{"status":"qualified","score":90}`))
		require.NoError(t, err)

		require.NotNil(t, patch.Status)
		assert.Equal(t, "qualified", *patch.Status)
		require.NotNil(t, patch.Score)
		assert.Equal(t, 90, *patch.Score)
		assert.Nil(t, patch.Name)
		assert.False(t, patch.Phone.Set)
		assert.Nil(t, patch.Tags)
	})

	t.Run("phone null limpa o valor", func(t *testing.T) {
		patch, err := DecodeUpdateLead([]byte(`{"phone":null}`))
		require.NoError(t, err)
		assert.True(t, patch.Phone.Set)
		assert.Nil(t, patch.Phone.Value)
	})

	t.Run("tags null vira lista vazia", func(t *testing.T) {
		patch, err := DecodeUpdateLead([]byte(`{"tags":null}`))
		require.NoError(t, err)
		require.NotNil(t, patch.Tags)
		assert.Empty(t, *patch.Tags)
	})

	t.Run("tag null dentro do array é rejeitada", func(t *testing.T) {
		_, err := DecodeUpdateLead([]byte(`{"tags":[null]}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "tags", errs[0].Field)
		assert.Equal(t, "expected array of strings", errs[0].Message)
	})

	t.Run("campo desconhecido é rejeitado", func(t *testing.T) {
		_, err := DecodeUpdateLead([]byte(`{"name":"Ana","id":3}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "id", errs[0].Field)
		assert.Equal(t, "unknown", errs[0].Tag)
	})

	t.Run("null em campo obrigatório", func(t *testing.T) {
		_, err := DecodeUpdateLead([]byte(`{"name":null}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "must not be null", errs[0].Message)
	})

	t.Run("name vazio", func(t *testing.T) {
		_, err := DecodeUpdateLead([]byte(`{"name":""}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "must not be empty", errs[0].Message)
	})
}

func TestDecodeLeadMagnet(t *testing.T) {
	t.Run("criação aplica valores padrão", func(t *testing.T) {
		magnet, err := DecodeCreateLeadMagnet([]byte(`{"title":"Guia","type":"eBook","industry":"Fitness"}`))
		require.NoError(t, err)

		assert.Equal(t, "draft", magnet.Status)
		assert.Equal(t, 0, magnet.Leads)
		assert.Equal(t, 0, magnet.Conversion)
		assert.Nil(t, magnet.Description)
	})

	t.Run("criação sem campos obrigatórios", func(t *testing.T) {
		_, err := DecodeCreateLeadMagnet([]byte(`{"description":"sem título"}`))

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"industry", "title", "type"}, fieldNames(errs))
	})

	t.Run("atualização com contador inválido", func(t *testing.T) {
		_, err := DecodeUpdateLeadMagnet([]byte(`{"conversion":"24%"}`))

		errs := fieldErrors(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "conversion", errs[0].Field)
	})

	t.Run("atualização limpa a descrição", func(t *testing.T) {
		patch, err := DecodeUpdateLeadMagnet([]byte(`{"description":null,"status":"paused"}`))
		require.NoError(t, err)

		assert.True(t, patch.Description.Set)
		assert.Nil(t, patch.Description.Value)
		require.NotNil(t, patch.Status)
		assert.Equal(t, "paused", *patch.Status)
	})
}
