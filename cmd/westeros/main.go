package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go-westeros/internal/actions"
	"go-westeros/internal/bots"
	"go-westeros/internal/conflicts"
	"go-westeros/internal/messages"
	"go-westeros/internal/monarchy"
	"go-westeros/internal/profiles"
	"go-westeros/internal/realtime"
	"go-westeros/internal/registry"
	"go-westeros/pkg/app"
	"go-westeros/pkg/config"
	"go-westeros/pkg/handlers"
	"go-westeros/pkg/module"
	"go-westeros/pkg/version"

	westerosMiddleware "go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "go.uber.org/automaxprocs"
)

// customLoggerMiddleware logs requests but excludes health check endpoints
func customLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") {
			next.ServeHTTP(w, r)
			return
		}
		middleware.Logger(next).ServeHTTP(w, r)
	})
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	versionInfo := version.Get()
	log.Printf("Version: %s | Build: %s", version.GetVersionString(), versionInfo.BuildDate)
	log.Printf("CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx := context.Background()

	appCtx, err := app.InitializeApp("westeros")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	// Initialize Chi router
	r := chi.NewRouter()

	r.Use(customLoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)
	r.Use(handlers.TracingMiddleware("westeros"))

	r.Get("/health", enhancedHealthHandler)

	// Shared auth for every rule endpoint
	sessionAuth := westerosMiddleware.NewSessionAuth()

	// Initialize modules. The profile repository is the single shared
	// mutable surface; every rules module mutates through it.
	registryModule := registry.NewModule()
	profilesModule := profiles.NewModule(appCtx.MongoDB, appCtx.Redis, registryModule.Service(), appCtx.Events, sessionAuth)
	profileRepo := profilesModule.Service().Repository()

	messagesModule := messages.NewModule(appCtx.MongoDB, appCtx.Redis, appCtx.Events, sessionAuth)
	conflictsModule := conflicts.NewModule(appCtx.MongoDB, appCtx.Redis, profileRepo, appCtx.Events, sessionAuth)
	actionsModule := actions.NewModule(appCtx.MongoDB, appCtx.Redis, profileRepo, registryModule.Service(),
		conflictsModule.Service(), messagesModule.Service(), appCtx.Events, sessionAuth)
	monarchyModule := monarchy.NewModule(appCtx.MongoDB, appCtx.Redis, profileRepo, messagesModule.Service(),
		appCtx.Events, sessionAuth)
	botsModule := bots.NewModule(appCtx.MongoDB, appCtx.Redis, profileRepo, appCtx.Events, sessionAuth)
	realtimeModule := realtime.NewModule(appCtx.MongoDB, appCtx.Redis, appCtx.Events, sessionAuth)

	// A realm without a crown elects one the first time anyone looks.
	profilesModule.SetRealmListHook(func(ctx context.Context, realmKey string) {
		if _, err := monarchyModule.Service().EnsureMonarch(ctx, realmKey); err != nil {
			slog.ErrorContext(ctx, "Background election failed", "error", err, "realm", realmKey)
		}
	})

	modules := []module.Module{
		registryModule,
		profilesModule,
		messagesModule,
		conflictsModule,
		actionsModule,
		monarchyModule,
		botsModule,
		realtimeModule,
	}

	// Mount module routes with configurable API prefix
	apiPrefix := config.GetAPIPrefix()

	humaConfig := huma.DefaultConfig("Westeros Realm Server", "1.0.0")
	humaConfig.Info.Description = "Game rules engine for a realm of warring houses: profiles, actions, conflicts, monarchy and ravens."

	var unifiedAPI huma.API
	if apiPrefix == "" {
		unifiedAPI = humachi.New(r, humaConfig)
	} else {
		r.Route(apiPrefix, func(prefixRouter chi.Router) {
			unifiedAPI = humachi.New(prefixRouter, humaConfig)
		})
	}

	registryModule.RegisterUnifiedRoutes(unifiedAPI, "/registry")
	profilesModule.RegisterUnifiedRoutes(unifiedAPI, "/profiles")
	messagesModule.RegisterUnifiedRoutes(unifiedAPI, "/messages")
	conflictsModule.RegisterUnifiedRoutes(unifiedAPI, "/conflicts")
	actionsModule.RegisterUnifiedRoutes(unifiedAPI, "/actions")
	monarchyModule.RegisterUnifiedRoutes(unifiedAPI, "/monarchy")
	botsModule.RegisterUnifiedRoutes(unifiedAPI, "/bots")
	realtimeModule.RegisterUnifiedRoutes(unifiedAPI, "/realtime")

	// WebSocket upgrade bypasses Huma; it needs raw response control.
	r.Route(apiPrefix+"/realtime", func(wsRouter chi.Router) {
		realtimeModule.Routes(wsRouter)
	})

	// Start background services for all modules
	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	// HTTP server setup
	port := app.GetPort("8080")
	host := config.GetHost()

	srv := &http.Server{
		Addr:         host + ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if host == "0.0.0.0" {
		log.Printf("Server: http://localhost:%s%s | OpenAPI: %s/openapi.json", port, apiPrefix, apiPrefix)
	} else {
		log.Printf("Server: http://%s:%s%s | OpenAPI: %s/openapi.json", host, port, apiPrefix, apiPrefix)
	}

	go func() {
		slog.Info("Starting Westeros realm server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("Westeros shutdown completed successfully")
}

func enhancedHealthHandler(w http.ResponseWriter, r *http.Request) {
	// Health checks are excluded from logging to reduce noise
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	versionInfo := version.Get()
	response := fmt.Sprintf(`{
		"status": "healthy",
		"service": "westeros",
		"version": "%s",
		"git_commit": "%s",
		"build_date": "%s",
		"go_version": "%s",
		"platform": "%s"
	}`, versionInfo.Version, versionInfo.GitCommit, versionInfo.BuildDate, versionInfo.GoVersion, versionInfo.Platform)

	w.Write([]byte(response))
}
