package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
)

// AdminOnly пускает дальше только админов. Вешается поверх Auth,
// поэтому сессия с живым токеном в контексте уже лежит. Признак
// админа проверяет внешнее API - у нас ролей нет.
func AdminOnly(api shopapi.ShopAPI, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSessionFromContext(r.Context())
			if !ok {
				myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, logger)
				return
			}

			isAdmin, err := api.IsAdmin(r.Context(), sess.Access)
			if err != nil {
				logger.Warnw("admin check failed", "err", err)
				myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, logger)
				return
			}

			if !isAdmin {
				myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
