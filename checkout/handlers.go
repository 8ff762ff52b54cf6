package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"puntogo/cartstore"
	"puntogo/models"
	"puntogo/orders"
	"puntogo/pricing"
	"puntogo/utils"
	"puntogo/ventify"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	carts   *cartstore.Store
	orders  *orders.Store
	ventify *ventify.Client
	tiers   pricing.Tiers
}

func NewHandler(carts *cartstore.Store, orderStore *orders.Store, client *ventify.Client, tiers pricing.Tiers) *Handler {
	return &Handler{carts: carts, orders: orderStore, ventify: client, tiers: tiers}
}

type placeOrderRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	PaymentMethod    string `json:"paymentMethod"`
	PaymentReference string `json:"paymentReference"`
	ProofFile        string `json:"proofFile"`
}

// PlaceOrder turns the session cart into a priced, validated order. The
// snapshot is stored locally before Ventify is called, so the confirmation
// page renders no matter what the remote side does.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("PlaceOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	lines, err := h.carts.Lines(ctx, sessionID)
	if err != nil {
		log.Println("PlaceOrder cart load error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load cart")
		return
	}
	if len(lines) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	quote := pricing.Compute(cartstore.Subtotal(lines), h.tiers)

	form := Form{
		Name:             req.Name,
		Phone:            req.Phone,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		HasProofFile:     req.ProofFile != "",
	}
	if err := ValidateForm(form, quote.MinimumMet); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   NormalizePhone(req.Phone),
		Address: req.Address,
	}
	reference := req.PaymentReference
	if reference == "" && req.ProofFile != "" {
		reference = "File: " + req.ProofFile
	}
	order := AssembleOrder(customer, req.PaymentMethod, reference, lines, quote)

	// Local snapshot first; the confirmation page must work even if the
	// remote call is slow or fails.
	if err := h.orders.SaveLast(ctx, sessionID, order); err != nil {
		log.Println("PlaceOrder snapshot save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not record order")
		return
	}

	result := h.ventify.CreateSaleRequest(ctx, buildPayload(order))
	if !result.OK {
		// Best-effort sync: log and move on, never block the order.
		log.Println("PlaceOrder remote sync skipped:", result.Message)
	} else if result.OrderID != "" {
		order.ID = result.OrderID
		if err := h.orders.SaveLast(ctx, sessionID, order); err != nil {
			log.Println("PlaceOrder snapshot update error:", err)
		}
	}

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		log.Println("PlaceOrder cart cleanup error:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// Quote reports the priced cart so the checkout page can show shipping and
// block submission below the minimum order.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	lines, err := h.carts.Lines(ctx, sessionID)
	if err != nil {
		log.Println("Quote cart load error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pricing.Compute(cartstore.Subtotal(lines), h.tiers))
}

func buildPayload(order models.Order) ventify.OrderPayload {
	items := make([]ventify.OrderItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, ventify.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Title,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
	}
	// Notes carry the delivery details Ventify has no fields for.
	notes := fmt.Sprintf("Address: %s | Shipping: S/ %.2f", order.Customer.Address, order.ShippingCost)
	if order.PaymentReference != "" {
		notes += " | Payment ref: " + order.PaymentReference
	}
	return ventify.OrderPayload{
		CustomerName:           order.Customer.Name,
		CustomerEmail:          order.Customer.Email,
		CustomerPhone:          order.Customer.Phone,
		Items:                  items,
		Total:                  order.Total,
		PreferredPaymentMethod: order.PaymentMethod,
		Notes:                  notes,
	}
}
