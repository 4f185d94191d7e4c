package handler

import (
	"net/http"

	"github.com/anandsun/peanut-butter/internal/app"
)

// Handler is the Vercel serverless function entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	router, err := app.RouterFromEnv()
	if err != nil {
		http.Error(w, "config error", http.StatusInternalServerError)
		return
	}
	// Delegate to the shared Gin router.
	router.ServeHTTP(w, r)
}
