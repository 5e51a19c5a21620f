package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/service"
)

type fakeUserService struct {
	users        map[string]domain.User
	lastFields   map[string]interface{}
	upsertCalled bool
}

func newFakeUserService(users ...domain.User) *fakeUserService {
	svc := &fakeUserService{users: map[string]domain.User{}}
	for _, u := range users {
		svc.users[u.Email] = u
	}

	return svc
}

func (f *fakeUserService) Upsert(_ context.Context, user domain.User) (domain.User, error) {
	f.upsertCalled = true
	if existing, ok := f.users[user.Email]; ok {
		return existing, nil
	}

	user.ID = uint(len(f.users) + 1)
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeUserService) GetByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserService) ListAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}

	return users, nil
}

func (f *fakeUserService) UpdateByEmail(_ context.Context, email string, fields map[string]interface{}) (domain.User, error) {
	f.lastFields = fields

	user, ok := f.users[email]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserService) DeleteByID(_ context.Context, id uint) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)

			return nil
		}
	}

	return service.ErrUserNotFound
}

func setupUserRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewUserHandler(svc)
	router.PUT("/user", handler.HandleUpsertUser)
	router.PUT("/user/update/:email", handler.HandleUpdateProfile)
	router.PATCH("/user/update/:email", handler.HandleUpdateUser)
	router.DELETE("/user/delete/:id", handler.HandleDeleteUser)
	router.GET("/users", handler.HandleListUsers)
	router.GET("/user/:email", handler.HandleGetUser)

	return router
}

func TestHandleUpsertUser(t *testing.T) {
	svc := newFakeUserService()
	router := setupUserRouter(svc)

	body := `{"email":"alice@example.com","name":"Alice","role":"creator"}`
	req := httptest.NewRequest(http.MethodPut, "/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	user := domain.User{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleCreator, user.Role)
}

func TestHandleUpsertUserRejectsInvalidEmail(t *testing.T) {
	svc := newFakeUserService()
	router := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/user", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.False(t, svc.upsertCalled)
}

func TestHandleUpdateProfileStripsRole(t *testing.T) {
	svc := newFakeUserService(domain.User{ID: 1, Email: "alice@example.com", Role: domain.RoleParticipant})
	router := setupUserRouter(svc)

	body := `{"name":"Alicia","role":"admin"}`
	req := httptest.NewRequest(http.MethodPut, "/user/update/alice@example.com", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, map[string]interface{}{"name": "Alicia"}, svc.lastFields)
}

func TestHandleUpdateUserAppliesRole(t *testing.T) {
	svc := newFakeUserService(domain.User{ID: 1, Email: "alice@example.com", Role: domain.RoleParticipant})
	router := setupUserRouter(svc)

	body := `{"role":"admin"}`
	req := httptest.NewRequest(http.MethodPatch, "/user/update/alice@example.com", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, map[string]interface{}{"role": "admin"}, svc.lastFields)
}

func TestHandleUpdateUserNotFound(t *testing.T) {
	router := setupUserRouter(newFakeUserService())

	req := httptest.NewRequest(http.MethodPatch, "/user/update/ghost@example.com", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleDeleteUser(t *testing.T) {
	svc := newFakeUserService(domain.User{ID: 7, Email: "alice@example.com"})
	router := setupUserRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/user/delete/7", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)

	req = httptest.NewRequest(http.MethodDelete, "/user/delete/7", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleDeleteUserRejectsBadID(t *testing.T) {
	router := setupUserRouter(newFakeUserService())

	req := httptest.NewRequest(http.MethodDelete, "/user/delete/not-a-number", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleGetUserNotFound(t *testing.T) {
	router := setupUserRouter(newFakeUserService())

	req := httptest.NewRequest(http.MethodGet, "/user/ghost@example.com", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
