package checkout

// OrderDraft is the transient checkout form data. The checkout UI owns it
// exclusively and hands an immutable snapshot to the order submitter; it is
// discarded once the submission attempt resolves.
type OrderDraft struct {
	SenderName  string `json:"sender_name" validate:"required"`
	SenderEmail string `json:"sender_email" validate:"required,email"`
	SenderPhone string `json:"sender_phone" validate:"required,min=10"`

	DeliveryDate string `json:"delivery_date" validate:"required"`
	DeliveryTime string `json:"delivery_time" validate:"required"`

	AgreeTerms bool `json:"agree_terms" validate:"eq=true"`

	// Optional fields pass through unvalidated.
	ContactMethod    string `json:"contact_method,omitempty"`
	DeliveryMethod   string `json:"delivery_method,omitempty"`
	RecipientAddress string `json:"recipient_address,omitempty"`
	Comment          string `json:"comment,omitempty"`
	PromoCode        string `json:"promo_code,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
}
