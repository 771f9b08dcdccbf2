package server

import (
	"context"
	"net/http"
	"os"

	"alliswell/auth"
	cachepackage "alliswell/cache"
	"alliswell/config"
	"alliswell/database"
	"alliswell/handlers"
	"alliswell/relay"
	"alliswell/session"
	"alliswell/wellness"

	"github.com/umakantv/go-utils/httpserver"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// checkAuth resolves the session cookie for gated routes. A request is
// authenticated only while its session is unexpired and the user row
// still exists; anything else is anonymous.
func checkAuth(authService *auth.Service) func(r *http.Request) (bool, httpserver.RequestAuth) {
	return func(r *http.Request) (bool, httpserver.RequestAuth) {
		sessionID := session.FromRequest(r)
		if sessionID == "" {
			return false, httpserver.RequestAuth{}
		}

		user, err := authService.RequireSession(r.Context(), sessionID)
		if err != nil {
			return false, httpserver.RequestAuth{}
		}

		return true, httpserver.RequestAuth{
			Type:   "session",
			Client: user.Name,
			Claims: map[string]interface{}{
				"user_id": user.ID,
				"email":   user.Email,
			},
		}
	}
}

func StartServer() {
	// Initialize logger
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting wellness service...")

	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		logger.Error("GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	// Initialize database
	dbConn := database.InitializeDatabase(cfg.DatabasePath, cfg.MigrationsDir)
	defer dbConn.Close()

	// Initialize cache (session backing store)
	cache := cachepackage.InitializeCache(cfg.RedisAddr, cfg.RedisPassword)
	defer cache.Close()

	// Core services
	userStore := database.NewUserStore(dbConn)
	sessionStore := session.NewCacheStore(cache)
	authService := auth.NewService(userStore, sessionStore, cfg.SessionTTL)
	geminiRelay := relay.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ChatTimeout)
	crisisDetector := wellness.NewCrisisDetector(cfg.CrisisKeywords)

	cookieOpts := session.CookieOptions{Secure: cfg.Production()}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cookieOpts)
	chatHandler := handlers.NewChatHandler(geminiRelay, crisisDetector)
	assessmentHandler := handlers.NewAssessmentHandler()
	pagesHandler := handlers.NewPagesHandler(authService, "./public")

	// Create HTTP server with session authentication
	server := httpserver.New(cfg.AppPort, checkAuth(authService))

	// Register routes
	server.Register(httpserver.Route{
		Name:     "HealthCheck",
		Method:   "GET",
		Path:     "/health",
		AuthType: "none",
	}, httpserver.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "alliswell"}`))
	}))

	server.Register(httpserver.Route{
		Name:     "Home",
		Method:   "GET",
		Path:     "/",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Home))

	server.Register(httpserver.Route{
		Name:     "LoginPage",
		Method:   "GET",
		Path:     "/login",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Login))

	server.Register(httpserver.Route{
		Name:     "SignupPage",
		Method:   "GET",
		Path:     "/signup",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Signup))

	server.Register(httpserver.Route{
		Name:     "Register",
		Method:   "POST",
		Path:     "/register",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Register))

	server.Register(httpserver.Route{
		Name:     "Login",
		Method:   "POST",
		Path:     "/login",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Login))

	server.Register(httpserver.Route{
		Name:     "Logout",
		Method:   "GET",
		Path:     "/logout",
		AuthType: "none",
	}, httpserver.HandlerFunc(authHandler.Logout))

	server.Register(httpserver.Route{
		Name:     "GamesIndex",
		Method:   "GET",
		Path:     "/games",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Games))

	server.Register(httpserver.Route{
		Name:     "GamePage",
		Method:   "GET",
		Path:     "/games/{game}",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Game))

	// Gated page redirects: the handlers answer anonymous callers with
	// a login redirect, so they register as AuthType none.
	server.Register(httpserver.Route{
		Name:     "AssessmentPage",
		Method:   "GET",
		Path:     "/assessment",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Assessment))

	server.Register(httpserver.Route{
		Name:     "ChatPage",
		Method:   "GET",
		Path:     "/chat",
		AuthType: "none",
	}, httpserver.HandlerFunc(pagesHandler.Chat))

	// Gated JSON APIs: checkAuth answers anonymous callers with 401.
	server.Register(httpserver.Route{
		Name:     "Me",
		Method:   "GET",
		Path:     "/api/me",
		AuthType: "session",
	}, httpserver.HandlerFunc(authHandler.Me))

	server.Register(httpserver.Route{
		Name:     "Chat",
		Method:   "POST",
		Path:     "/api/chat",
		AuthType: "session",
	}, httpserver.HandlerFunc(chatHandler.Chat))

	server.Register(httpserver.Route{
		Name:     "Assessment",
		Method:   "POST",
		Path:     "/api/assessment",
		AuthType: "session",
	}, httpserver.HandlerFunc(assessmentHandler.Submit))

	server.Register(httpserver.Route{
		Name:     "AssessmentQuestions",
		Method:   "GET",
		Path:     "/api/assessment/questions",
		AuthType: "none",
	}, httpserver.HandlerFunc(assessmentHandler.Questions))

	logger.Info("Wellness service started", zap.String("port", cfg.AppPort))
	logger.Info("Health check: GET /health")
	logger.Info("API endpoints: POST /api/chat, POST /api/assessment, GET /api/me")

	// Start server
	if err := server.Start(); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
		os.Exit(1)
	}
}
