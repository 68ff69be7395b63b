package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/provamed/backend/internal/service"
	"github.com/provamed/backend/internal/transport/rest/handler"
	"github.com/provamed/backend/internal/transport/rest/middleware"
	"github.com/provamed/backend/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService        *service.AuthService
	QuestionService    *service.QuestionService
	AnswerService      *service.AnswerService
	PerformanceService *service.PerformanceService
	ErrorbookService   *service.ErrorbookService
	ResolutionService  *service.ResolutionService
	Generator          *service.GeneratorService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	answerHandler := handler.NewAnswerHandler(c.AnswerService)
	performanceHandler := handler.NewPerformanceHandler(c.PerformanceService)
	errorbookHandler := handler.NewErrorbookHandler(c.ErrorbookService)
	resolutionHandler := handler.NewResolutionHandler(c.ResolutionService, c.QuestionService, c.Generator)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/questions/{id}", questionHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/questions/{id}/resolution", resolutionHandler.GetOrGenerate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/answers", answerHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/answers", answerHandler.Reset).Methods("DELETE", "OPTIONS")
	userRoutes.HandleFunc("/performance", performanceHandler.GetSummary).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/errorbook", errorbookHandler.List).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
