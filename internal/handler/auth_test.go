package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/iremar/book-catalog-api/internal/config"
	"github.com/iremar/book-catalog-api/internal/repository"
	"github.com/iremar/book-catalog-api/internal/utils"
)

const testSecret = "handler-test-secret"

var userCols = []string{"id", "username", "password_hash", "created_at", "updated_at"}

var errDuplicate = errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'uq_users_username'")

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{
		JWTSecret:    testSecret,
		AccessTTLMin: 60,
		BcryptCost:   bcrypt.MinCost,
	}
	return NewAuthHandler(cfg, repository.NewUserRepo(db), nopLogger()), mock
}

func TestRegister(t *testing.T) {
	h, mock := newAuthHandler(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newJSONContext(http.MethodPost, "/register", `{"username":"alice","password":"pw123"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, uint64(1), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)

	// The returned token must verify against the same secret and carry the
	// new user as subject.
	userID, err := utils.ParseAccessToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), userID)
}

func TestRegister_Duplicate(t *testing.T) {
	h, mock := newAuthHandler(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnError(errDuplicate)

	c, rec := newJSONContext(http.MethodPost, "/register", `{"username":"alice","password":"pw123"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
}

func TestRegister_MissingFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"username":"alice"}`, `{"password":"pw"}`, `{"username":"  ","password":"pw"}`} {
		h, _ := newAuthHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/register", body)
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
		assert.JSONEq(t, `{"error":"Username and password are required"}`, rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	h, mock := newAuthHandler(t)
	hash, err := utils.HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username=").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(4, "alice", hash, now, now))

	c, rec := newJSONContext(http.MethodPost, "/login", `{"username":"alice","password":"pw123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)

	userID, err := utils.ParseAccessToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), userID)
}

// Unknown usernames and wrong passwords must be indistinguishable in the
// response body and status.
func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	hWrong, mockWrong := newAuthHandler(t)
	hash, err := utils.HashPassword("right", bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	mockWrong.ExpectQuery("SELECT (.+) FROM users WHERE username=").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(4, "alice", hash, now, now))

	cWrong, recWrong := newJSONContext(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)
	require.NoError(t, hWrong.Login(cWrong))

	hGhost, mockGhost := newAuthHandler(t)
	mockGhost.ExpectQuery("SELECT (.+) FROM users WHERE username=").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userCols))

	cGhost, recGhost := newJSONContext(http.MethodPost, "/login", `{"username":"ghost","password":"wrong"}`)
	require.NoError(t, hGhost.Login(cGhost))

	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, recWrong.Code, recGhost.Code)
	assert.Equal(t, recWrong.Body.String(), recGhost.Body.String())
}
