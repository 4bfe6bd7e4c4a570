package notify

import (
	"fmt"
	"html"
	"strings"

	"bloomshop-be/internal/cart"
	"bloomshop-be/internal/checkout"
)

// RenderOrderMessage formats the order as a single Telegram HTML message:
// sender block, delivery block, enumerated line items and the cart total.
// User-entered values are escaped because the message is sent with HTML
// parse mode.
func RenderOrderMessage(draft checkout.OrderDraft, c *cart.Cart) string {
	var b strings.Builder

	b.WriteString("<b>📦 New order!</b>\n\n")

	b.WriteString("<b>👤 Sender:</b>\n")
	fmt.Fprintf(&b, "- Name: %s\n", html.EscapeString(draft.SenderName))
	fmt.Fprintf(&b, "- Email: %s\n", html.EscapeString(draft.SenderEmail))
	fmt.Fprintf(&b, "- Phone: %s\n", html.EscapeString(draft.SenderPhone))
	if draft.ContactMethod != "" {
		fmt.Fprintf(&b, "- Preferred contact: %s\n", html.EscapeString(draft.ContactMethod))
	}
	b.WriteString("\n")

	b.WriteString("<b>📅 Delivery:</b>\n")
	fmt.Fprintf(&b, "- Date: %s\n", html.EscapeString(draft.DeliveryDate))
	fmt.Fprintf(&b, "- Time: %s\n", html.EscapeString(draft.DeliveryTime))
	if draft.DeliveryMethod != "" {
		fmt.Fprintf(&b, "- Method: %s\n", html.EscapeString(draft.DeliveryMethod))
	}
	if draft.RecipientAddress != "" {
		fmt.Fprintf(&b, "- Address: %s\n", html.EscapeString(draft.RecipientAddress))
	}
	b.WriteString("\n")

	b.WriteString("<b>🛒 Items:</b>\n")
	for i, item := range c.Items {
		label := html.EscapeString(item.Name)
		if item.Variant != "" {
			label = fmt.Sprintf("%s (%s)", label, html.EscapeString(item.Variant))
		}
		fmt.Fprintf(&b, "%d. %s - %d × %s\n", i+1, label, item.Quantity, item.UnitPrice.Format())
	}

	if draft.Comment != "" {
		fmt.Fprintf(&b, "\n<b>💬 Comment:</b> %s\n", html.EscapeString(draft.Comment))
	}
	if draft.PromoCode != "" {
		fmt.Fprintf(&b, "- Promo code: %s\n", html.EscapeString(draft.PromoCode))
	}
	if draft.PaymentMethod != "" {
		fmt.Fprintf(&b, "- Payment: %s\n", html.EscapeString(draft.PaymentMethod))
	}

	fmt.Fprintf(&b, "\n<b>💰 Total: %s</b>", c.Total().Format())

	return b.String()
}
