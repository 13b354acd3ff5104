package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"socialsh-front/internal/session"
	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
)

type SessKey string

var sessKey SessKey = "sessionKey"

// Auth пускает дальше только авторизованных покупателей. Токен не
// проверяется локально (подпись знает только внешнее API): смотрим, что он
// есть, и по истекшему access пробуем refresh. Если refresh не прошел -
// сессия разлогинивается и клиент получает 401.
func Auth(sessions session.SessionRepo, api shopapi.ShopAPI, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.FromRequest(r)
			if err != nil || !sess.Authenticated() {
				myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, logger)
				return
			}

			if sess.AccessExpired() {
				tokens, err := api.Refresh(r.Context(), sess.Refresh)
				if err != nil {
					logger.Infof("refresh failed for session %s, dropping tokens: %v", sess.ID, err)
					sess.Access = ""
					sess.Refresh = ""
					if err := sessions.Save(r.Context(), sess); err != nil {
						logger.Warnf("failed to save session %s: %v", sess.ID, err)
					}

					myErr.SendErrorTo(w, myErr.ErrSessionIsExpired, http.StatusUnauthorized, logger)
					return
				}

				sess.Access = tokens.Access
				sess.Refresh = tokens.Refresh
				if err := sessions.Save(r.Context(), sess); err != nil {
					logger.Warnf("failed to save refreshed session %s: %v", sess.ID, err)
				}
			}

			// Добавляем сессию в контекст и передаем дальше
			ctx := ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ContextWithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessKey, s)
}

func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessKey).(*session.Session)
	return s, ok
}
