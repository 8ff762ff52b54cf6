package orders

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"puntogo/kv"
	"puntogo/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type Handler struct {
	orders *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{orders: store}
}

// GetLastOrder returns the confirmation-page data: the snapshot written at
// checkout, whether or not the remote submission went through.
func (h *Handler) GetLastOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	order, err := h.orders.Last(ctx, sessionID)
	if errors.Is(err, kv.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "No order found")
		return
	}
	if err != nil {
		log.Println("GetLastOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// PrintReceipt renders the last order as a PDF with a QR of the order id, so
// the customer can keep a proof of the request.
func (h *Handler) PrintReceipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := utils.SessionID(r)
	if sessionID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing session")
		return
	}

	order, err := h.orders.Last(ctx, sessionID)
	if errors.Is(err, kv.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "No order found")
		return
	}
	if err != nil {
		log.Println("PrintReceipt load error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load order")
		return
	}

	qrPNG, err := qrcode.Encode(order.ID, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "PuntoGo - Order Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02/01/2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s (%s)", order.Customer.Name, order.Customer.Phone))
	pdf.Ln(8)
	if order.Customer.Address != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Delivery: %s", order.Customer.Address))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, line := range order.Lines {
		pdf.Cell(0, 7, fmt.Sprintf("%d x %s - S/ %.2f", line.Quantity, line.Product.Title, line.Product.Price*float64(line.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: S/ %.2f", order.Subtotal))
	pdf.Ln(7)
	if order.ShippingCost > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Shipping: S/ %.2f", order.ShippingCost))
	} else {
		pdf.Cell(0, 8, "Shipping: free")
	}
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total: S/ %.2f", order.Total))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Payment: %s", order.PaymentMethod))

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+order.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
