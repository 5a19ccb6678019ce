// http — REST-транспорт newsroom-service поверх chi.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/newsroom-service/internal/service"
	"github.com/pribylovaa/newsroom-service/internal/transport/http/handlers"
	"github.com/pribylovaa/newsroom-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Metrics читает шаблон маршрута из chi route context,
	// поэтому подключается внутри роутера, а не во внешней цепочке.
	root.Use(middleware.Metrics())

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
	} else {
		registerRoutes(root, h, svc)
	}

	// Внешняя цепочка (внешний -> внутренний).
	outer := []middleware.Middleware{
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	}
	if opts.Timeout > 0 {
		outer = append(outer, middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	return middleware.Chain(root, outer...)
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Чтение контента и справочников доступно без токена; всё остальное —
// за Auth-мидлваром.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// auth
	r.Post("/auth/register", h.RegisterUser)
	r.Post("/auth/login", h.LoginUser)

	// публичное чтение
	r.Get("/articles", h.ListArticles)
	r.Get("/articles/{id}", h.GetArticleByID)
	r.Get("/newsletters/{id}", h.GetNewsletterByID)
	r.Get("/publishers", h.ListPublishers)
	r.Get("/publishers/{id}/staff", h.GetPublisherStaff)
	r.Get("/categories", h.ListCategories)

	// операции, требующие аутентификации
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Auth(svc))

		// статьи
		pr.Post("/articles", h.CreateArticle)
		pr.Patch("/articles/{id}", h.UpdateArticle)
		pr.Post("/articles/{id}/submit", h.SubmitArticle)
		pr.Post("/articles/{id}/approve", h.ApproveArticle)
		pr.Post("/articles/{id}/reject", h.RejectArticle)
		pr.Post("/articles/{id}/resubmit", h.ResubmitArticle)

		// рассылки
		pr.Post("/newsletters", h.CreateNewsletter)
		pr.Post("/newsletters/{id}/submit", h.SubmitNewsletter)
		pr.Post("/newsletters/{id}/approve", h.ApproveNewsletter)
		pr.Post("/newsletters/{id}/reject", h.RejectNewsletter)
		pr.Post("/newsletters/{id}/resubmit", h.ResubmitNewsletter)

		// справочники
		pr.Post("/publishers", h.CreatePublisher)
		pr.Get("/publishers/managed", h.ListManagedPublishers)
		pr.Post("/publishers/{id}/editors", h.GrantAuthority)
		pr.Post("/publishers/{id}/journalists", h.AddStaffJournalist)
		pr.Post("/categories", h.CreateCategory)

		// подписки
		pr.Post("/subscriptions", h.Subscribe)
		pr.Delete("/subscriptions/{kind}/{target_id}", h.Unsubscribe)
		pr.Get("/subscriptions", h.ListSubscriptions)
	})
}
