package session

import (
	"context"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// CookieName - имя куки с ID сессии покупателя
const CookieName = "socialsh_session"

// Session - серверное состояние одного браузерного профиля: ключ корзины
// и пара токенов внешнего API (пустая у анонимного покупателя).
// Токены мы не выпускаем и не валидируем - это зона внешнего API.
type Session struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"` // идентификатор корзины в хранилище
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	CreatedAt time.Time `json:"created_at"`
}

// Authenticated - есть ли у сессии токен внешнего API
func (s *Session) Authenticated() bool {
	return s.Access != ""
}

// AccessExpired смотрит claim exp access-токена без проверки подписи:
// подпись проверяет внешнее API, нам достаточно знать, пора ли на refresh.
func (s *Session) AccessExpired() bool {
	if s.Access == "" {
		return true
	}

	token, _, err := new(jwt.Parser).ParseUnverified(s.Access, jwt.MapClaims{})
	if err != nil {
		return true
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return true
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		// Нет exp - считаем токен живым, пусть решает API
		return false
	}

	return time.Now().Unix() >= int64(exp)
}

// SessionRepo - репозиторий сессий покупателей
//
//go:generate mockgen -source=session.go -destination=../mocks/mock_session_repo.go -package=mocks
type SessionRepo interface {
	// FromRequest находит сессию по куке запроса.
	// ErrSessionNotFound, если куки нет или сессия истекла
	FromRequest(r *http.Request) (*Session, error)
	// Ensure возвращает сессию запроса, создавая анонимную при отсутствии
	// и выставляя куку
	Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error)
	// Save сохраняет сессию и продлевает ее TTL
	Save(ctx context.Context, s *Session) error
	// Delete удаляет сессию (logout)
	Delete(ctx context.Context, sessionID string) error
}
