package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"calmcompass/internal/service"
	"calmcompass/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	CheckinService  *service.CheckinService
	FeedbackService *service.FeedbackService
	DefaultRegion   string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	checkinHandler := handler.NewCheckinHandler(c.CheckinService)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackService)
	supportHandler := handler.NewSupportHandler(c.DefaultRegion)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Support-now: reachable without any session (skip-screening path).
	v1.HandleFunc("/support", supportHandler.Get).Methods("GET", "OPTIONS")

	// Check-in flow
	v1.HandleFunc("/checkins", checkinHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/checkins/instruments", checkinHandler.Instruments).Methods("GET", "OPTIONS")
	v1.HandleFunc("/checkins/{checkinId}/answers/{instrument}", checkinHandler.SubmitAnswers).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/checkins/{checkinId}/context", checkinHandler.UpdateContext).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/checkins/{checkinId}/result", checkinHandler.Result).Methods("GET", "OPTIONS")
	v1.HandleFunc("/checkins/{checkinId}/summary", checkinHandler.Summary).Methods("GET", "OPTIONS")
	v1.HandleFunc("/checkins/{checkinId}/summary", checkinHandler.SaveSummary).Methods("POST", "OPTIONS")

	// Feedback
	v1.HandleFunc("/feedback", feedbackHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/feedback/export", feedbackHandler.Export).Methods("GET", "OPTIONS")
	v1.HandleFunc("/feedback/actions", feedbackHandler.Actions).Methods("GET", "OPTIONS")

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
