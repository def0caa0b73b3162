package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/quizforge/quizforge/internal/adaptive"
	api "github.com/quizforge/quizforge/internal/api/http"
	auth "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/concepts"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/genai"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/quizstore"
	"github.com/quizforge/quizforge/internal/rbac"
	"github.com/quizforge/quizforge/internal/review"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quizstore.NewSQLStore(dbh, cfg.DBDriver)

	// --- Generative capability and pipeline services ---
	model := genai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ModelTimeout)
	generator := quizgen.NewGenerator(model)
	extractor := concepts.NewExtractor(model)
	grader := grading.NewGrader(model)
	reviews := review.NewStore()

	// --- External collaborators ---
	selector := adaptive.NewHTTPSelector(cfg.AdaptiveBaseURL, cfg.CollabTimeout)
	classifier := adaptive.NewHTTPClassifier(cfg.ClassifierBaseURL, cfg.CollabTimeout)

	// --- Auth (local JWT for offline/dev) ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Local login (enabled in offline mode by default; can be enabled online via env)
	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Instructor flow: extract concepts, review them, then generate.
		pr.With(rbac.Require("concepts:extract")).
			Post("/key-answers", api.ExtractKeyAnswersHandler(extractor, reviews))
		pr.With(rbac.Require("review:manage")).
			Post("/reviews/{conceptID}", api.MarkReviewHandler(reviews))
		pr.With(rbac.Require("review:manage")).
			Get("/reviews", api.ReviewStatusHandler(reviews))
		pr.With(rbac.Require("quiz:generate")).
			Post("/quizzes/generate", api.GenerateQuizHandler(generator, reviews, store))

		// Student/Instructor: fetch quiz (answers stripped unless quiz:view-full)
		pr.With(rbac.Require("quiz:view")).
			Get("/quizzes/{quizID}", api.GetQuizHandler(store))

		// Student flow
		pr.With(rbac.Require("submission:create")).
			Post("/submissions/grade", api.GradeSubmissionHandler(grader, store))
		pr.With(rbac.RequireAny("submission:view-own", "submission:view-all")).
			Get("/submissions/{submissionID}", api.GetSubmissionHandler(store))
		pr.With(rbac.Require("adaptive:next")).
			Post("/adaptive/next", api.AdaptiveNextHandler(selector))

		// Instructor tooling
		pr.With(rbac.Require("difficulty:classify")).
			Post("/difficulty/classify", api.ClassifyDifficultyHandler(classifier))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
