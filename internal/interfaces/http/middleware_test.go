package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/permission"
	apphttp "github.com/quotehub/quote-api/internal/interfaces/http"
	"github.com/quotehub/quote-api/pkg/jwt"
	"github.com/quotehub/quote-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "quote-hub-test"
	testExpMin    = 60
)

// Fixed identities for the gate scenarios.
const (
	userNoCompany  = "00000000-0000-0000-0000-000000000001"
	userWithTenant = "00000000-0000-0000-0000-000000000002"
	userSuperAdmin = "00000000-0000-0000-0000-000000000003"
)

type stubUsers struct{ byID map[string]*entity.User }

func (s *stubUsers) Create(ctx context.Context, u *entity.User) error { return nil }
func (s *stubUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.byID[id], nil
}
func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	return nil, nil
}

type stubMemberships struct {
	byUser map[string]*entity.CompanyUser
}

func (s *stubMemberships) Create(ctx context.Context, m *entity.CompanyUser) error { return nil }
func (s *stubMemberships) GetByUserWithCompany(ctx context.Context, userID string) (*entity.CompanyUser, *entity.Company, error) {
	m := s.byUser[userID]
	if m == nil {
		return nil, nil, nil
	}
	return m, &entity.Company{ID: m.CompanyID, Name: "Acme"}, nil
}
func (s *stubMemberships) GetByCompanyAndUser(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error) {
	return nil, nil
}
func (s *stubMemberships) ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error) {
	return nil, nil
}
func (s *stubMemberships) UpdateRole(ctx context.Context, companyID, userID, role string, perms entity.Permissions) error {
	return nil
}
func (s *stubMemberships) Delete(ctx context.Context, companyID, userID string) error { return nil }

type stubAdmins struct{ byUser map[string]*entity.AdminUser }

func (s *stubAdmins) GetByUser(ctx context.Context, userID string) (*entity.AdminUser, error) {
	return s.byUser[userID], nil
}

func testResolver() *session.Resolver {
	users := &stubUsers{byID: map[string]*entity.User{
		userNoCompany:  {ID: userNoCompany, Email: "solo@test.co", Status: "active"},
		userWithTenant: {ID: userWithTenant, Email: "member@test.co", Status: "active"},
		userSuperAdmin: {ID: userSuperAdmin, Email: "root@test.co", Status: "active"},
	}}
	memberships := &stubMemberships{byUser: map[string]*entity.CompanyUser{
		userWithTenant: {
			ID: "m-1", CompanyID: "c-1", UserID: userWithTenant,
			Role:        entity.RoleUser,
			Permissions: permission.ForRole(entity.RoleUser),
		},
	}}
	admins := &stubAdmins{byUser: map[string]*entity.AdminUser{
		userSuperAdmin: {ID: "a-1", UserID: userSuperAdmin, Role: "super_admin"},
	}}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return session.NewResolver(users, memberships, admins, log)
}

// buildTestApp wires the protected middleware chain plus one route per gate,
// each answering 200 when the gates pass.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret), apphttp.SessionMiddleware(testResolver()))

	ok := func(c *fiber.Ctx) error {
		sess := apphttp.GetSession(c)
		return c.JSON(fiber.Map{"ok": true, "has_company": sess.HasCompany()})
	}
	protected.Get("/me", ok)
	protected.Post("/setup", apphttp.RequireNoCompany(), ok)
	protected.Get("/tenant", apphttp.RequireCompany(), ok)
	protected.Get("/admin", apphttp.RequireSuperAdmin(), ok)
	return app
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_MissingHeaderIs401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/me", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_MalformedTokenIs401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/me", "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_UnknownUserIs401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/me", tokenFor(t, "00000000-0000-0000-0000-00000000dead"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"a valid token for a deleted identity must not resolve")
}

func TestSessionMiddleware_ResolvesCompanyState(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/me", tokenFor(t, userWithTenant))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["has_company"])
}

func TestRequireCompany_BlocksUserWithoutCompany(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/tenant", tokenFor(t, userNoCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_COMPANY")
}

func TestRequireCompany_PassesMember(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/tenant", tokenFor(t, userWithTenant))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireNoCompany_PassesUserWithoutCompany(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodPost, "/setup", tokenFor(t, userNoCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireNoCompany_BlocksExistingMember(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodPost, "/setup", tokenFor(t, userWithTenant))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode,
		"a user that already belongs to a company must not reach the bootstrap")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ALREADY_SETUP")
}

func TestRequireSuperAdmin_BlocksRegularUser(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/admin", tokenFor(t, userWithTenant))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"company admin role must not grant super-admin access")
}

func TestRequireSuperAdmin_PassesSuperAdmin(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, http.MethodGet, "/admin", tokenFor(t, userSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
