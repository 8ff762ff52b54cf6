package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"puntogo/cartstore"
	"puntogo/models"
	"puntogo/pricing"
	"puntogo/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	carts *cartstore.Store
	tiers pricing.Tiers
}

func NewHandler(carts *cartstore.Store, tiers pricing.Tiers) *Handler {
	return &Handler{carts: carts, tiers: tiers}
}

// cartView is what every page showing cart state consumes: the lines plus the
// pricing derived from them, recomputed on each mutation.
type cartView struct {
	Lines   []models.CartLine `json:"lines"`
	Pricing pricing.Quote     `json:"pricing"`
}

func (h *Handler) view(lines []models.CartLine) cartView {
	return cartView{
		Lines:   lines,
		Pricing: pricing.Compute(cartstore.Subtotal(lines), h.tiers),
	}
}

// AddToCart increments quantity if the product is already in the cart, or
// appends a new line.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	var req struct {
		Product  models.Product `json:"product"`
		Quantity int            `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Product.ID == "" || req.Product.Price < 0 || req.Quantity < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}

	lines, err := h.carts.Add(ctx, sessionID, req.Product, req.Quantity)
	if err != nil {
		log.Println("AddToCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, h.view(lines))
}

// GetCart returns the cart lines and the derived pricing.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	lines, err := h.carts.Lines(ctx, sessionID)
	if err != nil {
		log.Println("GetCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.view(lines))
}

// UpdateQuantity sets the quantity of one line; zero or less removes it.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("UpdateQuantity decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	lines, err := h.carts.SetQuantity(ctx, sessionID, ps.ByName("productid"), req.Quantity)
	if err != nil {
		log.Println("UpdateQuantity error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.view(lines))
}

// RemoveFromCart drops a line entirely.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	lines, err := h.carts.Remove(ctx, sessionID, ps.ByName("productid"))
	if err != nil {
		log.Println("RemoveFromCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.view(lines))
}

// ClearCart empties the cart for the session.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		log.Println("ClearCart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.view([]models.CartLine{}))
}
