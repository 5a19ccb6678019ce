// handlers содержит REST-хендлеры newsroom-service поверх сервисного слоя.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/service"
	apierrors "github.com/pribylovaa/newsroom-service/internal/transport/http/errors"
	"github.com/pribylovaa/newsroom-service/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{Svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// principal достаёт принципала запроса; отсутствие — программная ошибка
// маршрутизации (хендлер за Auth-мидлваром), отвечаем 401.
func principal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return models.Principal{}, false
	}

	return p, true
}

// parseID разбирает path-параметр как UUID.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.ErrInvalidArgument
	}

	return id, nil
}
