package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"saldo/repository"
	"saldo/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), testTokens(), nil))

	router := gin.New()
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	authorized := router.Group("", setUserIDMiddleware(userID))
	authorized.GET("/profile", h.GetProfile)
	authorized.PUT("/password", h.ChangePassword)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter(db, 0)

	w := performRequest(router, http.MethodPost, "/register",
		`{"email":"Ana@Example.com","password":"secret123","name":"Ana"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, http.StatusCreated, resp.Code)

	var result service.AuthResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ana@example.com", result.User.Email)

	claims, err := testTokens().Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "ana@example.com", "secret123")
	router := newAuthRouter(db, 0)

	w := performRequest(router, http.MethodPost, "/register",
		`{"email":"ANA@example.com","password":"secret123","name":"Ana"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "邮箱已被注册", decodeResponse(t, w).Message)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter(db, 0)

	for _, body := range []string{
		`{"email":"ana@example.com","password":"123","name":"Ana"}`,
		`{"email":"not-an-email","password":"secret123","name":"Ana"}`,
		`{"email":"ana@example.com","password":"secret123"}`,
		`{bad json`,
	} {
		w := performRequest(router, http.MethodPost, "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	router := newAuthRouter(db, 0)

	w := performRequest(router, http.MethodPost, "/login", `{"email":"ana@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var result service.AuthResult
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &result))
	assert.Equal(t, u.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "ana@example.com", "secret123")
	router := newAuthRouter(db, 0)

	w := performRequest(router, http.MethodPost, "/login", `{"email":"ana@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "邮箱或密码错误", decodeResponse(t, w).Message)
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name"}))

	router := newAuthRouter(db, 0)
	w := performRequest(router, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "邮箱或密码错误", decodeResponse(t, w).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")

	w := performRequest(newAuthRouter(db, u.ID), http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var info service.UserInfo
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &info))
	assert.Equal(t, "ana@example.com", info.Email)
	assert.Equal(t, "Ana", info.Name)

	w = performRequest(newAuthRouter(db, u.ID+100), http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	u := seedUser(t, db, "ana@example.com", "secret123")
	router := newAuthRouter(db, u.ID)

	w := performRequest(router, http.MethodPut, "/password", `{"old_password":"wrong-one","new_password":"newsecret456"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w).Message, "old_password")

	w = performRequest(router, http.MethodPut, "/password", `{"old_password":"secret123","new_password":"newsecret456"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "密码修改成功", decodeResponse(t, w).Message)

	w = performRequest(router, http.MethodPost, "/login", `{"email":"ana@example.com","password":"newsecret456"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = performRequest(router, http.MethodPost, "/login", `{"email":"ana@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
