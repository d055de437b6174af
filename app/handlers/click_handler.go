package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/ibrohimdev/arzon-market/app/services"
)

type ClickHandler struct {
	tracker services.TrackerService
}

func NewClickHandler(t services.TrackerService) *ClickHandler {
	return &ClickHandler{tracker: t}
}

// Redirect handles GET /go/{id}: record the click, then send the visitor
// on to the external affiliate storefront. The affiliate URL is stored
// as-is and never validated; a broken link fails in the visitor's browser,
// not here.
func (h *ClickHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	target, err := h.tracker.TrackClick(r.Context(), productID, helpers.ClientIP(r), r.UserAgent())
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Yo'naltirish amalga oshmadi", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}
