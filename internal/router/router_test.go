package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ride-auth/internal/config"
	"ride-auth/internal/handler/auth"
	"ride-auth/internal/logging"
	"ride-auth/internal/service"
	"ride-auth/internal/store"
	"ride-auth/internal/validation"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestEcho(t *testing.T) (*echo.Echo, pgxmock.PgxPoolIface) {
	t.Helper()
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	logger := logging.Discard()
	svc := service.NewCredentialService(
		store.NewUserStore(db),
		service.NewBcryptHasher(bcrypt.MinCost, nil),
		service.JWTIssuer{},
		config.StaticSecrets("s"),
		logger,
	)
	e := echo.New()
	Setup(e, db, nil, auth.NewHandler(svc, validation.New(), logger), logger)
	return e, db
}

func TestSetupRoutes(t *testing.T) {
	e, _ := newTestEcho(t)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/auth/test-connection",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestRoutesServe(t *testing.T) {
	e, db := newTestEcho(t)

	db.ExpectPing()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/test-connection", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Connection successful"}`, rec.Body.String())

	// 驗證失敗時不應觸碰資料庫
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors":["Name is required","Invalid email","Password must be at least 6 characters","Invalid role"]}`, rec.Body.String())

	db.ExpectQuery(`FROM users WHERE email`).
		WithArgs("ghost@x.com").
		WillReturnError(pgx.ErrNoRows)
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ghost@x.com","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())

	require.NoError(t, db.ExpectationsWereMet())
}
