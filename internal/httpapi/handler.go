package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bloomshop-be/internal/cart"
	"bloomshop-be/internal/catalog"
	"bloomshop-be/internal/checkout"
	"bloomshop-be/internal/logger"
	"bloomshop-be/internal/money"
	"bloomshop-be/internal/notify"
	"bloomshop-be/internal/order"
	"bloomshop-be/internal/transport"
	"bloomshop-be/internal/utils"

	"go.uber.org/zap"
)

// Handler exposes the storefront's programmatic boundary over REST.
type Handler struct {
	catalogSvc catalog.Service
	cartSvc    cart.Service
	orderSvc   order.Service
}

func NewHandler(catalogSvc catalog.Service, cartSvc cart.Service, orderSvc order.Service) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		cartSvc:    cartSvc,
		orderSvc:   orderSvc,
	}
}

type cartItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant"`
}

type cartResponseDTO struct {
	Items        []cart.LineItem `json:"items"`
	Total        money.Amount    `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

type validationResponseDTO struct {
	Error  string                `json:"error"`
	Fields []checkout.FieldError `json:"fields"`
}

func cartResponse(c *cart.Cart) cartResponseDTO {
	total := c.Total()
	return cartResponseDTO{
		Items:        c.Items,
		Total:        total,
		TotalDisplay: total.Format(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		logger.FromCtx(r.Context()).Error("catalog load failed", zap.Error(err))
		utils.WriteJSONError(w, "catalog unavailable", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := transport.SessionID(w, r)

	c, err := h.cartSvc.Get(r.Context(), sessionID)
	if err != nil {
		utils.WriteJSONError(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, cartResponse(c))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := transport.SessionID(w, r)

	var req cartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		utils.WriteJSONError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	c, err := h.cartSvc.Add(r.Context(), sessionID, req.ProductID, req.Variant)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, cartResponse(c))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.cartSvc.Remove)
}

func (h *Handler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.cartSvc.IncreaseQuantity)
}

func (h *Handler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.mutateItem(w, r, h.cartSvc.DecreaseQuantity)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := transport.SessionID(w, r)

	if err := h.cartSvc.Clear(r.Context(), sessionID); err != nil {
		utils.WriteJSONError(w, "failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, cartResponse(cart.NewCart()))
}

func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := transport.SessionID(w, r)

	var draft checkout.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	receipt, err := h.orderSvc.Submit(r.Context(), sessionID, draft)
	if err != nil {
		h.writeSubmitError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, receipt)
}

func (h *Handler) writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cart.ErrVariantRequired):
		utils.WriteJSONError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.FromCtx(r.Context()).Error("cart mutation failed", zap.Error(err))
		utils.WriteJSONError(w, "cart operation failed", http.StatusInternalServerError)
	}
}

func (h *Handler) writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *checkout.ValidationError
	var serr *notify.SubmitError

	switch {
	case errors.Is(err, order.ErrCartEmpty):
		utils.WriteJSONError(w, "cart is empty", http.StatusConflict)
	case errors.Is(err, order.ErrSubmissionInFlight):
		utils.WriteJSONError(w, "submission already in progress", http.StatusConflict)
	case errors.As(err, &verr):
		utils.WriteJSON(w, http.StatusUnprocessableEntity, validationResponseDTO{
			Error:  "validation failed",
			Fields: verr.Fields,
		})
	case errors.As(err, &serr):
		utils.WriteJSONError(w, serr.Error(), http.StatusBadGateway)
	default:
		logger.FromCtx(r.Context()).Error("order submission failed", zap.Error(err))
		utils.WriteJSONError(w, "order submission failed", http.StatusInternalServerError)
	}
}

type mutateFunc func(ctx context.Context, sessionID, productID, variant string) (*cart.Cart, error)

func (h *Handler) mutateItem(w http.ResponseWriter, r *http.Request, fn mutateFunc) {
	sessionID := transport.SessionID(w, r)

	var req cartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		utils.WriteJSONError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	c, err := fn(r.Context(), sessionID, req.ProductID, req.Variant)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, cartResponse(c))
}
