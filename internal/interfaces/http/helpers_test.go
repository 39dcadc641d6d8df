package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/roofguard-api/internal/application/auth"
	"github.com/jhoicas/roofguard-api/internal/application/auth/authtest"
	"github.com/jhoicas/roofguard-api/internal/application/safety"
	"github.com/jhoicas/roofguard-api/internal/application/safety/safetytest"
	"github.com/jhoicas/roofguard-api/internal/application/usecase"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	apphttp "github.com/jhoicas/roofguard-api/internal/interfaces/http"
	"github.com/jhoicas/roofguard-api/pkg/config"
	"github.com/jhoicas/roofguard-api/pkg/jwt"
	"github.com/jhoicas/roofguard-api/pkg/locale"
	"github.com/jhoicas/roofguard-api/pkg/logger"
	"github.com/jhoicas/roofguard-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "roofguard-test"
	testPassword  = "Password123!"
)

type testEnv struct {
	app       *fiber.App
	store     *authtest.Store
	codec     *jwt.Codec
	employees *safetytest.Employees
}

type pdfStub struct{}

func (pdfStub) GenerateOSHALog(_ context.Context, _ safety.OSHALogHeader, _ []entity.OSHALogEntry) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// newTestEnv construye la API completa sobre almacenes en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := authtest.NewStore()
	codec, err := jwt.NewCodec(config.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, TTL: jwt.DefaultTTL})
	require.NoError(t, err)

	log := logger.Nop()
	sessions := auth.NewSessionLoader(store)
	authUC := auth.NewAuthUseCase(store, store, sessions, codec, password.NewHasher(bcrypt.MinCost), locale.NewResolver("en"))

	employees := safetytest.NewEmployees()
	incidents := safetytest.NewIncidents(employees)
	templates := safetytest.NewCertificationTemplates()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          authUC,
		Tokens:          codec,
		Sessions:        sessions,
		OrganizationUC:  usecase.NewOrganizationUseCase(store.Organizations(), store.Memberships()),
		EmployeeUC:      safety.NewEmployeeUseCase(employees),
		CertificationUC: safety.NewCertificationUseCase(safetytest.NewCertifications(), employees, templates, 30*24*time.Hour),
		TemplateUC:      safety.NewCertificationTemplateUseCase(templates),
		IncidentUC:      safety.NewIncidentUseCase(incidents, employees),
		OSHALogUC:       safety.NewOSHALogUseCase(incidents, pdfStub{}),
		Log:             log,
	})
	return &testEnv{app: app, store: store, codec: codec, employees: employees}
}

// member crea un usuario con el rol dado en una organización nueva y devuelve (userID, orgID, header Authorization).
func (e *testEnv) member(t *testing.T, email string, role entity.Role) (string, string, string) {
	t.Helper()
	userID := e.store.SeedUser(email, testPassword, "")
	orgID := e.store.SeedOrg("Org of " + email)
	e.store.SetRole(userID, orgID, role)
	return userID, orgID, e.bearer(t, userID)
}

func (e *testEnv) bearer(t *testing.T, userID string) string {
	t.Helper()
	tok, err := e.codec.Issue(userID)
	require.NoError(t, err)
	return "Bearer " + tok
}

// do lanza una petición contra la app; body se serializa a JSON si no es nil.
func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, resp, &body)
	return body.Error
}

func authHeader(v string) map[string]string { return map[string]string{"Authorization": v} }
