package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"resumewise-backend/internal/config"
	"resumewise-backend/internal/handlers"
	"resumewise-backend/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	screeningHandler *handlers.ScreeningHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check routes
	mux.HandleFunc("/health", healthHandler.HealthCheck)
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/auth/signup", authHandler.Signup)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", middleware.AuthMiddleware(authHandler.Logout, jwtCfg))
	mux.HandleFunc("/api/auth/user", middleware.AuthMiddleware(authHandler.GetUser, jwtCfg))

	// Screening routes
	mux.HandleFunc("/api/screen", middleware.AuthMiddleware(screeningHandler.Screen, jwtCfg))
	mux.HandleFunc("/api/screenings", middleware.AuthMiddleware(screeningHandler.History, jwtCfg))

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)

	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<html>
    <head><title>ResumeWise API</title></head>
    <body>
        <h1>Welcome to ResumeWise API</h1>
        <p>Visit <a href="/swagger/">/swagger/</a> for interactive API documentation</p>
    </body>
</html>`))
}
