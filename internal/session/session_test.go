package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	errorspkg "socialsh-front/internal/types/errors"
)

func setupTestRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	logger := zaptest.NewLogger(t).Sugar()
	repo := NewSessionRepository(rdb, logger, 15*time.Minute)

	return repo, mr
}

func TestEnsureCreatesAnonymousSession(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	sess, err := repo.Ensure(context.Background(), w, r)
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, sess.ProfileID)
	assert.False(t, sess.Authenticated())

	// Кука выставлена
	cookies := w.Result().Cookies()
	assert.Equal(t, 1, len(cookies))
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, sess.ID, cookies[0].Value)

	// Запись лежит в Redis
	val, err := mr.Get(sessionKey(sess.ID))
	assert.NoError(t, err)
	assert.NotEmpty(t, val)
}

func TestEnsureReusesExistingSession(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	created, err := repo.Ensure(context.Background(), w, r)
	assert.NoError(t, err)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: created.ID})

	found, err := repo.Ensure(context.Background(), httptest.NewRecorder(), r2)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.ProfileID, found.ProfileID)
}

func TestFromRequest(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	// Без куки
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := repo.FromRequest(r)
	assert.True(t, errors.Is(err, errorspkg.ErrSessionNotFound))

	// С кукой на несуществующую сессию
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "gone"})
	_, err = repo.FromRequest(r)
	assert.True(t, errors.Is(err, errorspkg.ErrSessionNotFound))
}

func TestSaveAndDelete(t *testing.T) {
	repo, mr := setupTestRepo(t)
	defer mr.Close()

	ctx := context.Background()
	sess := &Session{
		ID:        "s1",
		ProfileID: "p1",
		Access:    "access-token",
		Refresh:   "refresh-token",
		CreatedAt: time.Now(),
	}

	assert.NoError(t, repo.Save(ctx, sess))

	loaded, err := repo.getSessionFromRedis(ctx, "s1")
	assert.NoError(t, err)
	assert.True(t, loaded.Authenticated())
	assert.Equal(t, "refresh-token", loaded.Refresh)

	assert.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.getSessionFromRedis(ctx, "s1")
	assert.True(t, errors.Is(err, errorspkg.ErrSessionNotFound))
}

func signToken(t *testing.T, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"exp": exp.Unix(),
	})

	str, err := token.SignedString([]byte("external-api-secret"))
	assert.NoError(t, err)
	return str
}

func TestAccessExpired(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		expired bool
	}{
		{
			name:    "нет токена",
			session: Session{},
			expired: true,
		},
		{
			name:    "живой токен",
			session: Session{Access: signToken(t, time.Now().Add(time.Hour))},
			expired: false,
		},
		{
			name:    "истекший токен",
			session: Session{Access: signToken(t, time.Now().Add(-time.Minute))},
			expired: true,
		},
		{
			name:    "мусор вместо токена",
			session: Session{Access: "not-a-jwt"},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.session.AccessExpired())
		})
	}
}
