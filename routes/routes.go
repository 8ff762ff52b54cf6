package routes

import (
	"net/http"

	"puntogo/auth"
	"puntogo/cart"
	"puntogo/checkout"
	"puntogo/geo"
	"puntogo/middleware"
	"puntogo/orders"
	"puntogo/products"
	"puntogo/ratelim"
	"puntogo/utils"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/proofpic/*filepath", http.Dir("static/proofpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *auth.Handler) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.GET("/api/profile", middleware.Authenticate(h.GetProfile))
	router.PATCH("/api/profile", middleware.Authenticate(h.UpdateProfile))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *products.Handler) {
	router.GET("/api/products", rl.Limit(h.ListProducts))
	router.GET("/api/products/:productid", rl.Limit(h.GetProduct))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/cart", middleware.OptionalAuth(h.GetCart))
	router.POST("/api/cart", rl.Limit(middleware.OptionalAuth(h.AddToCart)))
	router.PUT("/api/cart/:productid", rl.Limit(middleware.OptionalAuth(h.UpdateQuantity)))
	router.DELETE("/api/cart/:productid", rl.Limit(middleware.OptionalAuth(h.RemoveFromCart)))
	router.DELETE("/api/cart", rl.Limit(middleware.OptionalAuth(h.ClearCart)))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *checkout.Handler) {
	router.GET("/api/checkout/quote", middleware.OptionalAuth(h.Quote))
	router.POST("/api/checkout/order", rl.Limit(middleware.OptionalAuth(h.PlaceOrder)))
	router.POST("/api/checkout/proof", rl.Limit(middleware.OptionalAuth(h.UploadProof)))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *orders.Handler) {
	router.GET("/api/orders/last", middleware.OptionalAuth(h.GetLastOrder))
	router.GET("/api/orders/last/receipt", rl.Limit(middleware.OptionalAuth(h.PrintReceipt)))
}

func AddGeoRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *geo.Handler) {
	router.GET("/api/geo/reverse", rl.Limit(h.ReverseGeocode))
}

func AddUtilityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/session", rl.Limit(utils.NewSession))
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
