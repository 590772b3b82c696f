package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"workout-tracker/internal/api"
	"workout-tracker/internal/catalog"
	"workout-tracker/internal/config"
	"workout-tracker/internal/logger"
	"workout-tracker/internal/repository/memory"
	"workout-tracker/internal/service"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "https://id.example/"
	testAudience = "workout-tracker"
)

// fakeObjectStorage is a minimal stand-in for S3 in export tests.
type fakeObjectStorage struct {
	objects map[string][]byte
}

func (f *fakeObjectStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	f.objects[key] = body
	return nil
}

func (f *fakeObjectStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.example/" + key + "?signed", nil
}

func (f *fakeObjectStorage) DeleteObject(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

// newTestRouter wires the full route surface over an in-memory store
// with the seed catalog installed.
func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	_, _, err := store.SeedCatalog(context.Background(), catalog.Days(), catalog.AllExercises())
	require.NoError(t, err)

	catalogService := service.NewCatalogService(store, catalog.Days(), catalog.AllExercises())
	workoutService := service.NewWorkoutService(store, store, store)
	exportService := service.NewExportService(store, &fakeObjectStorage{objects: map[string][]byte{}}, 0)

	verifier, err := api.NewTokenVerifier(config.AuthConfig{
		Issuer:    testIssuer,
		Audience:  testAudience,
		DevSecret: testSecret,
	})
	require.NoError(t, err)

	router := gin.New()
	api.SetupRoutes(router, logger.NewNop(), verifier,
		[]string{"http://localhost:5173"},
		api.HealthCheck{Database: "workout_tracker", Container: "records"},
		"seed-user",
		catalogService, workoutService, exportService,
	)
	return router, store
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
