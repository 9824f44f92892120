package chathandlers

import (
	"encoding/json"
	"net/http"

	"otto/catalog"
	"otto/models"
	"otto/utils"

	"github.com/julienschmidt/httprouter"
)

type cartSummary struct {
	Items           []models.CartItem `json:"items"`
	TotalPrice      float64           `json:"totalPrice"`
	Currency        string            `json:"currency"`
	MaxDeliveryDays int               `json:"maxDeliveryDays"`
}

func summarize(items []models.CartItem) cartSummary {
	sum := cartSummary{Items: items, Currency: "CLP"}
	for _, it := range items {
		sum.TotalPrice += it.Product.Price * float64(it.Quantity)
		if it.Product.DeliveryDays > sum.MaxDeliveryDays {
			sum.MaxDeliveryDays = it.Product.DeliveryDays
		}
	}
	return sum
}

// GetCart handles GET /api/cart: items plus totals and the slowest delivery
// estimate.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, summarize(chatStore.CartItems()))
}

type addCartRequest struct {
	ProductID string `json:"productId"`
	Role      string `json:"role,omitempty"`
}

// AddCartItem handles POST /api/cart: adds a catalog product, bumping the
// quantity when it is already there.
func AddCartItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required")
		return
	}

	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	chatStore.AddToCart(product, req.Role)
	utils.RespondWithJSON(w, http.StatusOK, summarize(chatStore.CartItems()))
}

// RemoveCartItem handles DELETE /api/cart/:productid. Removes the entry
// entirely regardless of quantity.
func RemoveCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	chatStore.RemoveFromCart(ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, summarize(chatStore.CartItems()))
}

// ClearCart handles DELETE /api/cart: empties the cart and drops the
// solution it came from.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	chatStore.ClearCart()
	utils.RespondWithJSON(w, http.StatusOK, summarize(nil))
}

// ToggleCart handles POST /api/cart/toggle: flips the cart panel open flag.
func ToggleCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	chatStore.ToggleCart()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"isCartOpen": chatStore.Snapshot().IsCartOpen})
}
