package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Handler serves the marketing pages and their static assets.
type Handler struct {
	templates *template.Template
	static    http.Handler
}

func New() (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("mount static assets: %w", err)
	}

	return &Handler{
		templates: tmpl,
		static:    http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))),
	}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleLanding)
	r.Get("/payment", h.handlePayment)
	r.Get("/payment.html", h.handlePayment)
	r.Get("/payment-success", h.handlePaymentSuccess)
	r.Get("/payment-success.html", h.handlePaymentSuccess)
	r.Handle("/static/*", h.static)
}

func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "landing.html", nil)
}

func (h *Handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	// Each visit gets a fresh order id so retried payments never collide.
	data := struct {
		MerchantUID string
	}{
		MerchantUID: "XIVIX_" + uuid.NewString(),
	}
	h.render(w, "payment.html", data)
}

func (h *Handler) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	h.render(w, "payment_success.html", nil)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[pages] render %s: %v", name, err)
	}
}
