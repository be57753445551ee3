package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"promptstudio/internal/http/handlers"
	"promptstudio/internal/infra"
	"promptstudio/internal/middleware"
)

type Options struct {
	Logger          infra.Logger
	CORSOrigins     []string
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	RateLimitPerMin int
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Only enable it behind a proxy that overwrites them.
	TrustProxy bool
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(
		chimw.Recoverer,
		middleware.CORS(opts.CORSOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
		middleware.Logger(opts.Logger),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/options", app.CatalogOptions)
			r.Get("/options/{key}", app.CatalogGroup)
			r.Get("/palettes", app.CatalogPalettes)
		})

		// Local prompt building; no AI call.
		r.Post("/character/prompt", app.CharacterPrompt)
		r.Get("/images/batch/{id}/archive", app.ImagesArchive)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute, http.HandlerFunc(app.TooManyRequests)))

			r.Post("/character/analyze", app.CharacterAnalyze)
			r.Post("/movement", app.Movement)
			r.Post("/movement/advanced", app.AdvancedMovement)
			r.Post("/flow/composite", app.FlowComposite)
			r.Post("/product/action", app.ProductAction)
			r.Post("/product/background", app.ProductBackground)
			r.Post("/viral", app.Viral)
			r.Post("/collage", app.Collage)
			r.Post("/style/analyze", app.StyleAnalyze)
			r.Post("/style/transfer", app.StyleTransfer)
			r.Post("/background/analyze", app.BackgroundAnalyze)
			r.Post("/poster", app.Poster)
			r.Post("/info/extract", app.InfoExtract)
			r.Post("/graphic/analyze", app.GraphicAnalyze)
			r.Post("/scenes", app.Scenes)
			r.Post("/malay/variants", app.MalayVariants)
			r.Post("/assistant", app.Assistant)
			r.Get("/assistant/ws", app.AssistantWS)
			r.Post("/images/batch", app.ImagesBatch)
			r.Get("/images/batch/ws", app.ImagesBatchWS)
		})
	})

	return r
}
