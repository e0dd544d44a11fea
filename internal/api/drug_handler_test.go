package api

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/service"
)

func newDrugTestRouter(t *testing.T) chi.Router {
	t.Helper()

	svc := service.NewDrugService(newFakeDrugStore(), nil)
	handler := NewDrugHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Route("/drugs", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Get)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func validDrugPayload() map[string]any {
	return map[string]any{
		"name":         "Aspirin",
		"approved":     true,
		"min_dose":     1.0,
		"max_dose":     4.0,
		"available_at": "2024-06-01",
	}
}

func TestDrugHandlerCreate(t *testing.T) {
	t.Run("creates a drug", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/drugs/", validDrugPayload())

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "Aspirin", body["name"])
		assert.Equal(t, "2024-06-01", body["available_at"])
	})

	t.Run("empty object fails validation", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/drugs/", map[string]any{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		fields, ok := body["fields"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "approved")
		assert.Contains(t, fields, "min_dose")
	})

	t.Run("false and zero are legitimate values", func(t *testing.T) {
		router := newDrugTestRouter(t)
		payload := validDrugPayload()
		payload["approved"] = false
		payload["min_dose"] = 0.0
		payload["max_dose"] = 0.0

		rec := doJSON(t, router, http.MethodPost, "/drugs/", payload)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unparseable availability date", func(t *testing.T) {
		router := newDrugTestRouter(t)
		payload := validDrugPayload()
		payload["available_at"] = "next tuesday"

		rec := doJSON(t, router, http.MethodPost, "/drugs/", payload)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		fields, ok := body["fields"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fields, "available_at")
	})

	t.Run("negative dose fails validation", func(t *testing.T) {
		router := newDrugTestRouter(t)
		payload := validDrugPayload()
		payload["min_dose"] = -1.0

		rec := doJSON(t, router, http.MethodPost, "/drugs/", payload)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDrugHandlerList(t *testing.T) {
	t.Run("empty collection is a 404", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/drugs/", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns created drugs", func(t *testing.T) {
		router := newDrugTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/drugs/", validDrugPayload())
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/drugs/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var drugs []DrugResponse
		decodeInto(t, rec, &drugs)
		assert.Len(t, drugs, 1)
	})
}

func TestDrugHandlerGet(t *testing.T) {
	t.Run("malformed id is a 400", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/drugs/not-a-uuid", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/drugs/0b9fda26-8d4c-4c8f-9d31-6dd51c3c1a2e", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDrugHandlerUpdate(t *testing.T) {
	create := func(t *testing.T, router chi.Router) string {
		t.Helper()
		rec := doJSON(t, router, http.MethodPost, "/drugs/", validDrugPayload())
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeBody(t, rec)["id"].(string)
	}

	t.Run("patches selected fields and returns the stored record", func(t *testing.T) {
		router := newDrugTestRouter(t)
		id := create(t, router)

		rec := doJSON(t, router, http.MethodPatch, "/drugs/"+id, map[string]any{
			"name":     "Ibuprofen",
			"approved": false,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Ibuprofen", body["name"])
		assert.Equal(t, false, body["approved"])
		// Untouched fields retain their stored values.
		assert.Equal(t, 4.0, body["max_dose"])
	})

	t.Run("empty patch is a 400", func(t *testing.T) {
		router := newDrugTestRouter(t)
		id := create(t, router)

		rec := doJSON(t, router, http.MethodPatch, "/drugs/"+id, map[string]any{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodPatch,
			"/drugs/0b9fda26-8d4c-4c8f-9d31-6dd51c3c1a2e",
			map[string]any{"name": "Ibuprofen"})

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDrugHandlerDelete(t *testing.T) {
	t.Run("full lifecycle: create, delete, then gone", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/drugs/", validDrugPayload())
		require.Equal(t, http.StatusCreated, rec.Code)
		id := decodeBody(t, rec)["id"].(string)

		rec = doJSON(t, router, http.MethodDelete, "/drugs/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body["message"], id)
		assert.Equal(t, float64(http.StatusOK), body["statusCode"])

		rec = doJSON(t, router, http.MethodGet, "/drugs/"+id, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleting an unknown id is a 404", func(t *testing.T) {
		router := newDrugTestRouter(t)

		rec := doJSON(t, router, http.MethodDelete, "/drugs/0b9fda26-8d4c-4c8f-9d31-6dd51c3c1a2e", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
