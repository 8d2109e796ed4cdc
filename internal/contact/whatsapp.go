package contact

import (
	"fmt"
	"net/url"
	"strings"
)

// Form carries the structured contact-form fields the deep link is
// built from. Name, email and message are required.
type Form struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Reason     string `json:"reason"`
	Urgency    string `json:"urgency"`
	Department string `json:"department"`
	Message    string `json:"message"`
}

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

func (f *Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Field: "email"}
	}
	if strings.TrimSpace(f.Message) == "" {
		return &ValidationError{Field: "message"}
	}
	return nil
}

// BuildWhatsAppLink renders the prefilled wa.me link for the given
// phone number. Fire and forget: there is no response contract, the
// client just opens the link.
func BuildWhatsAppLink(phone string, form Form) string {
	var msg strings.Builder

	msg.WriteString("Hello! I'm reaching out through your website contact form.\n\n")
	msg.WriteString("📝 *Contact Details:*\n")
	msg.WriteString(fmt.Sprintf("• Name: %s\n", form.Name))
	msg.WriteString(fmt.Sprintf("• Email: %s\n", form.Email))
	if form.Phone != "" {
		msg.WriteString(fmt.Sprintf("• Phone: %s\n", form.Phone))
	}
	if form.Company != "" {
		msg.WriteString(fmt.Sprintf("• Company: %s\n", form.Company))
	}

	msg.WriteString("\n🎯 *Inquiry Details:*\n")
	if form.Reason != "" {
		msg.WriteString(fmt.Sprintf("• Reason: %s\n", form.Reason))
	}
	if form.Urgency != "" {
		msg.WriteString(fmt.Sprintf("• Urgency: %s\n", form.Urgency))
	}
	if form.Department != "" {
		msg.WriteString(fmt.Sprintf("• Department: %s\n", form.Department))
	}

	msg.WriteString(fmt.Sprintf("\n💬 *Message:*\n%s\n\n", form.Message))
	msg.WriteString("Looking forward to hearing from you!")

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(msg.String()))
}
