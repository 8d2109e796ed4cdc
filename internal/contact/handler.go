package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/pkg"
)

type linkResponse struct {
	Link string `json:"link"`
}

// Handler validates the contact form and returns the prefilled
// WhatsApp deep link for the client to open.
type Handler struct {
	whatsAppPhone string
}

func NewHandler(whatsAppPhone string) *Handler {
	return &Handler{
		whatsAppPhone: whatsAppPhone,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/contact/whatsapp", handler.handleWhatsAppLink).Methods("POST", "OPTIONS").Name("contact-whatsapp")
}

func (handler *Handler) handleWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("contact form, unmarshal json params: %s", err)
		http.Error(w, "contact form invalid", http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "contact form invalid", http.StatusBadRequest)
		return
	}

	link := BuildWhatsAppLink(handler.whatsAppPhone, form)

	respJson, err := json.Marshal(linkResponse{Link: link})
	if err != nil {
		log.Errorf("marshal contact link response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
