package order

import "bloomshop-be/internal/money"

// Receipt confirms a delivered order. The reference is generated locally;
// the message ID comes from the notification endpoint's acknowledgement.
type Receipt struct {
	OrderRef  string       `json:"order_ref"`
	MessageID int64        `json:"message_id"`
	Total     money.Amount `json:"total"`
}
