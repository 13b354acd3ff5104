package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	errorspkg "socialsh-front/internal/types/errors"
)

type SessionRepository struct {
	RedisClient  *redis.Client
	Logger       *zap.SugaredLogger
	baseDuration time.Duration
}

func NewSessionRepository(
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
	baseDuration time.Duration,
) *SessionRepository {
	return &SessionRepository{
		RedisClient:  redisClient,
		Logger:       logger,
		baseDuration: baseDuration,
	}
}

func (sessionRepository *SessionRepository) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, errorspkg.ErrSessionNotFound
	}

	return sessionRepository.getSessionFromRedis(r.Context(), cookie.Value)
}

func (sessionRepository *SessionRepository) Ensure(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
) (*Session, error) {
	if sess, err := sessionRepository.FromRequest(r); err == nil {
		return sess, nil
	}

	// Создаём анонимную сессию: токенов нет, есть только профиль корзины
	session := &Session{
		ID:        uuid.New().String(),
		ProfileID: uuid.New().String(),
		CreatedAt: time.Now(),
	}

	if err := sessionRepository.saveSessionToRedis(ctx, session); err != nil {
		// Логируется внутри saveSessionToRedis
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	sessionRepository.Logger.Infof("Session %s created for cart profile %s", session.ID, session.ProfileID)
	return session, nil
}

func (sessionRepository *SessionRepository) Save(ctx context.Context, s *Session) error {
	return sessionRepository.saveSessionToRedis(ctx, s)
}

func (sessionRepository *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := sessionRepository.RedisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		sessionRepository.Logger.Error(
			"Failed delete session from Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return err
	}

	return nil
}

func sessionKey(sessionID string) string {
	return "socialsh_session:" + sessionID
}

func (sessionRepository *SessionRepository) saveSessionToRedis(
	ctx context.Context,
	session *Session,
) error {
	sessionDataJSON, err := json.Marshal(session)
	if err != nil {
		sessionRepository.Logger.Error(
			"Failed encode session to JSON",
			zap.Error(err),
			zap.String("sessionID", session.ID),
		)

		return err
	}

	err = sessionRepository.RedisClient.Set(
		ctx,
		sessionKey(session.ID),
		sessionDataJSON,
		sessionRepository.baseDuration,
	).Err()
	if err != nil {
		sessionRepository.Logger.Error(
			"Failed save session to Redis",
			zap.Error(err),
			zap.String("sessionID", session.ID),
		)

		return err
	}

	return nil
}

func (sessionRepository *SessionRepository) getSessionFromRedis(
	ctx context.Context,
	sessionID string,
) (*Session, error) {
	sessionDataJSON, err := sessionRepository.RedisClient.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorspkg.ErrSessionNotFound
		}

		sessionRepository.Logger.Error(
			"Failed get session from Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return nil, err
	}

	var session Session
	if err = json.Unmarshal(sessionDataJSON, &session); err != nil {
		sessionRepository.Logger.Error(
			"Failed decode session from JSON",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return nil, err
	}

	return &session, nil
}
