package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
	"github.com/mbolis/survei-haji/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.RequestID, middleware.RealIP, log.RequestLogger(), middleware.Recoverer)

	root.Get("/health", Health)
	root.Mount("/api", apiRouter(app))

	if app.StaticDir != "" {
		root.Mount("/", http.FileServer(http.Dir(app.StaticDir)))
	}

	return root
}

func apiRouter(app app.App) http.Handler {
	secret := app.TokenSecret
	anyone := middlewares.RequireRole(secret, httpx.RoleRespondent, httpx.RoleDashboard, httpx.RoleAdmin)
	dashboard := middlewares.RequireRole(secret, httpx.RoleDashboard, httpx.RoleAdmin)
	admin := middlewares.RequireRole(secret, httpx.RoleAdmin)
	cookieAuth := middlewares.CookieAuth(app.BearerServer)

	api := chi.NewRouter()

	api.Post("/session", Session(app))
	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	api.Group(func(r chi.Router) {
		r.Use(anyone)

		r.Get("/questions", GetQuestions(app))
		r.Post(`/surveys/steps/{step:^\d+$}`, ValidateStep(app))
		r.Post("/surveys", SubmitSurvey(app))
	})

	api.Route("/dashboard", func(r chi.Router) {
		r.With(dashboard).Get("/", Dashboard(app))
		r.With(cookieAuth, dashboard).Get("/export.csv", DashboardExport(app))
	})

	api.Route("/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(admin)

			r.Get("/questions", AdminGetQuestions(app))
			r.Put("/questions", AdminPutQuestions(app))

			r.Get("/surveys", ListEntries(app))
			r.Get("/surveys/{id}", GetEntry(app))
			r.Delete("/surveys/{id}", DeleteEntry(app))
		})

		// browser downloads cannot set headers
		r.Group(func(r chi.Router) {
			r.Use(cookieAuth, admin)

			r.Get("/surveys/export.csv", AdminExport(app))
			r.Get("/surveys/{id}/signature", GetSignature(app))
		})
	})

	return api
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/plain")
	w.Write([]byte("OK"))
}
