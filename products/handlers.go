package products

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"puntogo/models"
	"puntogo/utils"
	"puntogo/ventify"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	catalog *ventify.Client
}

func NewHandler(catalog *ventify.Client) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) load(ctx context.Context) []models.Product {
	items, err := h.catalog.FetchProducts(ctx)
	if err != nil {
		log.Println("products: falling back to seed catalog:", err)
		return SeedCatalog()
	}
	if len(items) == 0 {
		return SeedCatalog()
	}
	return items
}

// ListProducts returns the catalog, in-stock products first, with an optional
// ?category= filter.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items := h.load(ctx)

	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := items[:0]
		for _, p := range items {
			if p.Category == cat {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}

	// keep catalog order within each group, sold-out items last
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Stock > 0 && items[j].Stock == 0
	})

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GetProduct looks a product up by id. A miss is a dedicated not-found
// response, not an error page.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("productid")
	for _, p := range h.load(ctx) {
		if p.ID == id {
			utils.RespondWithJSON(w, http.StatusOK, p)
			return
		}
	}

	utils.RespondWithError(w, http.StatusNotFound, "Product not found")
}
