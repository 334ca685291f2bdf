package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ironlog/internal/models/db_models"
	"ironlog/internal/services"
	"ironlog/pkg/middleware"
	"ironlog/pkg/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*db_models.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := utils.NewJWTManager("test-secret", time.Hour)
	authService := services.NewAuthService(newFakeUserRepo(), tokens)
	ctrl := NewAuthController(authService)

	router := gin.New()
	auth := router.Group("/auth")
	{
		auth.POST("/register", ctrl.Register)
		auth.POST("/login", ctrl.Login)
		auth.GET("/me", middleware.JWTAuthMiddleware(tokens), ctrl.Me)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthController_RegisterReturnsTokenAndPublicUser(t *testing.T) {
	router := newAuthTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "token")
	require.Contains(t, body, "user")

	var user map[string]any
	require.NoError(t, json.Unmarshal(body["user"], &user))
	require.Equal(t, "A", user["name"])
	require.Equal(t, "a@x.com", user["email"])
	require.NotEmpty(t, user["id"])
	require.NotContains(t, user, "password")
	require.NotContains(t, user, "password_hash")
}

func TestAuthController_LoginWrongPassword(t *testing.T) {
	router := newAuthTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid credentials."}`, rec.Body.String())
}

func TestAuthController_LoginUnknownEmailSameResponse(t *testing.T) {
	router := newAuthTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"nobody@x.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid credentials."}`, rec.Body.String())
}

func TestAuthController_RegisterDuplicateEmail(t *testing.T) {
	router := newAuthTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"B","email":"a@x.com","password":"other"}`, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"User already exists with this email."}`, rec.Body.String())
}

func TestAuthController_RegisterMissingFields(t *testing.T) {
	router := newAuthTestRouter(t)

	for _, body := range []string{
		`{}`,
		`{"name":"A"}`,
		`{"name":"A","email":"a@x.com"}`,
		`{"email":"a@x.com","password":"pw"}`,
	} {
		rec := doJSON(t, router, http.MethodPost, "/auth/register", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAuthController_MeRequiresValidToken(t *testing.T) {
	router := newAuthTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"A","email":"a@x.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))

	// no token
	rec = doJSON(t, router, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	rec = doJSON(t, router, http.MethodGet, "/auth/me", "",
		map[string]string{"Authorization": "Bearer not-a-token"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token
	rec = doJSON(t, router, http.MethodGet, "/auth/me", "",
		map[string]string{"Authorization": "Bearer " + reg.Token})
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.Equal(t, "a@x.com", me.User.Email)
}
