package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/VeloStudio-SeatingService/internal/api/handlers"
)

// OperatorIDHeader заголовок с идентификатором оператора студии
// Проставляется админ-ботом на каждый запрос к защищенным ручкам.
const OperatorIDHeader = "X-Operator-ID"

type operatorIDKey struct{}

const msgMissingOperatorID = "отсутствует идентификатор оператора"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware проверяет наличие идентификатора оператора
// и кладет его в контекст запроса
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operatorID := r.Header.Get(OperatorIDHeader)
			if operatorID == "" {
				logger.Warn("Auth: missing %s header for %s %s", OperatorIDHeader, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingOperatorID)
				return
			}

			ctx := context.WithValue(r.Context(), operatorIDKey{}, operatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperatorID возвращает идентификатор оператора из контекста
func GetOperatorID(ctx context.Context) (string, bool) {
	operatorID, ok := ctx.Value(operatorIDKey{}).(string)
	return operatorID, ok
}
