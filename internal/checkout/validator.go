package checkout

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes one violated checkout field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field, not just the first, so
// the UI can render all messages at once.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "checkout validation failed: " + strings.Join(msgs, "; ")
}

// ValidateDraft checks the order draft synchronously and without side
// effects. A nil return means the draft may be submitted.
func ValidateDraft(draft OrderDraft) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldName(fe.StructField()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldName(structField string) string {
	switch structField {
	case "SenderName":
		return "sender_name"
	case "SenderEmail":
		return "sender_email"
	case "SenderPhone":
		return "sender_phone"
	case "DeliveryDate":
		return "delivery_date"
	case "DeliveryTime":
		return "delivery_time"
	case "AgreeTerms":
		return "agree_terms"
	default:
		return structField
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "SenderName":
		return "sender name is required"
	case "SenderEmail":
		if fe.Tag() == "required" {
			return "email is required"
		}
		return "invalid email address"
	case "SenderPhone":
		if fe.Tag() == "required" {
			return "phone is required"
		}
		return "phone must contain at least 10 characters"
	case "DeliveryDate":
		return "choose a delivery date"
	case "DeliveryTime":
		return "choose a delivery time"
	case "AgreeTerms":
		return "you must agree to the terms"
	default:
		return "invalid value"
	}
}
