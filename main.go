package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puntogo/auth"
	"puntogo/cart"
	"puntogo/cartstore"
	"puntogo/checkout"
	"puntogo/config"
	"puntogo/geo"
	"puntogo/kv"
	"puntogo/orders"
	"puntogo/products"
	"puntogo/ratelim"
	"puntogo/routes"
	"puntogo/ventify"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

func setupRouter(cfg config.Config, store kv.Store) *httprouter.Router {
	rateLimiter := ratelim.NewRateLimiter()

	carts := cartstore.New(store)
	orderStore := orders.NewStore(store)
	client := ventify.New(cfg.Ventify)

	authHandler := auth.NewHandler(store)
	productHandler := products.NewHandler(client)
	cartHandler := cart.NewHandler(carts, cfg.Tiers)
	checkoutHandler := checkout.NewHandler(carts, orderStore, client, cfg.Tiers)
	orderHandler := orders.NewHandler(orderStore)
	geoHandler := geo.NewHandler(geo.New(cfg.GeocoderBase))

	router := httprouter.New()
	routes.AddAuthRoutes(router, rateLimiter, authHandler)
	routes.AddProductRoutes(router, rateLimiter, productHandler)
	routes.AddCartRoutes(router, rateLimiter, cartHandler)
	routes.AddCheckoutRoutes(router, rateLimiter, checkoutHandler)
	routes.AddOrderRoutes(router, rateLimiter, orderHandler)
	routes.AddGeoRoutes(router, rateLimiter, geoHandler)
	routes.AddUtilityRoutes(router, rateLimiter)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	cfg := config.Load()

	store := kv.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	router := setupRouter(cfg, store)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
