package chathandlers

import (
	"net/http"

	"otto/models"
	"otto/search"
	"otto/utils"

	"github.com/julienschmidt/httprouter"
)

// SearchCatalog handles GET /api/products/search?q=...&category=...: keyword
// search over the catalog, optionally narrowed to one category.
func SearchCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "q is required")
		return
	}
	category := models.ProductCategory(r.URL.Query().Get("category"))

	products := search.SearchProducts(query, category)
	if products == nil {
		products = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": products})
}
