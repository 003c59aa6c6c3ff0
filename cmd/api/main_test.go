package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/sushi-api/backend/internal/config"
	"github.com/pkordes/sushi-api/backend/internal/domain"
	"github.com/pkordes/sushi-api/backend/internal/middleware"
	"github.com/pkordes/sushi-api/backend/internal/repo"
	"github.com/pkordes/sushi-api/backend/internal/service"
	"github.com/pkordes/sushi-api/backend/spec"
	"github.com/pkordes/sushi-api/backend/testutil"
)

// newTestServer wires the production router over a fresh migrated SQLite file.
func newTestServer(t *testing.T) (*httptest.Server, config.Config) {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	cfg := config.Config{
		CORSOrigins:  []string{"*"},
		StaticDir:    t.TempDir(),
		MaxBodyBytes: 1 << 10,
	}
	regions := service.NewRegionService(repo.NewRegionRepo(db, db.Dialect))

	srv := httptest.NewServer(newRouter(cfg, testutil.DiscardLogger(), regions, middleware.NewMetrics("sushi")))
	t.Cleanup(srv.Close)
	return srv, cfg
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeRegions(t *testing.T, resp *http.Response) []domain.Region {
	t.Helper()
	var out []domain.Region
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeRegion(t *testing.T, resp *http.Response) domain.Region {
	t.Helper()
	var out domain.Region
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// TestEndToEnd_RegionLifecycle drives the seeded dataset through the public
// HTTP surface: list, get, update, delete, list again.
func TestEndToEnd_RegionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL + "/api/regions"

	resp := do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decodeRegions(t, resp)
	require.Len(t, all, 7)

	resp = do(t, http.MethodGet, base+"/chicago", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chicago := decodeRegion(t, resp)
	assert.Equal(t, "シカゴ", chicago.Katakana)
	assert.Equal(t, "Chicago", chicago.English)
	assert.Contains(t, all, chicago)

	resp = do(t, http.MethodPut, base+"/chicago", map[string]any{"english": "Chicago Metro"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeRegion(t, resp)
	assert.Equal(t, domain.Region{ID: chicago.ID, Slug: "chicago", Katakana: "シカゴ", English: "Chicago Metro"}, updated)

	resp = do(t, http.MethodDelete, base+"/chicago", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, base+"/chicago", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, base+"/chicago", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeRegions(t, resp), 6)
}

func TestEndToEnd_CreateAndConflict(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL + "/api/regions"
	tokyo := map[string]any{"slug": "tokyo", "katakana": "トウキョウ", "english": "Tokyo"}

	resp := do(t, http.MethodPost, base, tokyo)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeRegion(t, resp)
	assert.NotZero(t, created.ID)

	resp = do(t, http.MethodPost, base, tokyo)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, base+"?filter=tokyo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []domain.Region{created}, decodeRegions(t, resp))
}

func TestEndToEnd_Filter(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/regions?filter=n", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var slugs []string
	for _, r := range decodeRegions(t, resp) {
		slugs = append(slugs, r.Slug)
	}
	for _, want := range []string{"nashville", "new-york", "san-diego", "los-angeles"} {
		assert.Contains(t, slugs, want)
	}
}

func TestEndToEnd_HealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", buf.String())

	do(t, http.MethodGet, srv.URL+"/api/regions/chicago", nil)

	resp = do(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf.Reset()
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `route="/api/regions/{slug}"`)
}

func TestEndToEnd_StaticFiles(t *testing.T) {
	srv, cfg := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "menu.txt"), []byte("maguro"), 0o600))

	resp := do(t, http.MethodGet, srv.URL+"/api/static/menu.txt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "maguro", buf.String())
}

func TestEndToEnd_BodyTooLarge(t *testing.T) {
	srv, cfg := newTestServer(t)

	huge := map[string]any{
		"slug":     "big",
		"katakana": "x",
		"english":  strings.Repeat("x", int(cfg.MaxBodyBytes)),
	}
	resp := do(t, http.MethodPost, srv.URL+"/api/regions", huge)

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestEndToEnd_OpenAPIDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "/api/regions/{slug}")
}

// TestRouter_ServesEveryDocumentedOperation keeps openapi.yaml and the
// router in step: every path+method in the document must be registered.
func TestRouter_ServesEveryDocumentedOperation(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(spec.OpenAPI, &doc))
	require.NotEmpty(t, doc.Paths)

	cfg := config.Config{CORSOrigins: []string{"*"}, StaticDir: t.TempDir()}
	router, ok := newRouter(cfg, testutil.DiscardLogger(), nil, middleware.NewMetrics("sushi")).(chi.Routes)
	require.True(t, ok, "router must be a chi.Routes")

	registered := map[string]bool{}
	require.NoError(t, chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}))

	methods := map[string]bool{"get": true, "post": true, "put": true, "delete": true, "patch": true}
	for path, item := range doc.Paths {
		for method := range item {
			if !methods[method] {
				continue
			}
			key := strings.ToUpper(method) + " " + path
			assert.True(t, registered[key], "%s is documented but not routed", key)
		}
	}
}
