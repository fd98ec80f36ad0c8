package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/inventory-backend/internal/modules/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHandlerRoutes(t *testing.T) {
	f := newFixture()
	tokens := auth.NewTokens("secret", time.Hour)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))
		NewHandler(&service{repo: f.repo, cost: bcrypt.MinCost}).RegisterRoutes(r)
	})

	call := func(u *User, method, path, body string) *httptest.ResponseRecorder {
		raw, _, err := tokens.Issue(*principal(u))
		require.NoError(t, err)
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := call(f.staff, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(f.manager, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var views []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, true, views[0]["is_manager"])
	assert.NotContains(t, views[0], "password_hash")

	rec = call(f.admin, http.MethodPost, "/users", `{"username":"new","password":"pw","role":"manager"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"manager"`)

	rec = call(f.admin, http.MethodPatch, "/users/"+f.staff.ID.String(), `{"last_name":"Rao"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(f.admin, http.MethodDelete, "/users/"+f.staff.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(f.admin, http.MethodGet, "/users/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
