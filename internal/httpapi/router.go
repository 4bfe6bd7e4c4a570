package httpapi

import (
	"net/http"

	"bloomshop-be/internal/logger"
	"bloomshop-be/internal/middleware"

	"github.com/gorilla/mux"
)

// Routes wires the storefront endpoints behind request-ID, logging and
// rate-limit middleware.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()

	r.Use(
		logger.RequestIDMiddleware,
		logger.LoggingMiddleware,
		middleware.RateLimitMiddleware,
	)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)

	r.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items", h.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/cart/items", h.RemoveItem).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items/increase", h.IncreaseQuantity).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/decrease", h.DecreaseQuantity).Methods(http.MethodPost)

	r.HandleFunc("/checkout", h.SubmitOrder).Methods(http.MethodPost)

	return r
}
