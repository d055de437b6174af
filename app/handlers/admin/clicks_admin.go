package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/models/other"
)

const clicksPerPage = 50

type AdminClicksPageData struct {
	other.BasePageData
	Clicks      []models.ProductClick
	CurrentPage int
	TotalPages  int
	TotalClicks int64
}

// GetClicksPage lists the click audit trail, newest first. The log is
// read-only: there are no add, edit or delete routes for click records.
func (h *AdminHandler) GetClicksPage(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * clicksPerPage

	data := &AdminClicksPageData{
		BasePageData: h.baseData(r, "Kliklar jurnali"),
		CurrentPage:  page,
	}

	clicks, total, err := h.clickRepo.GetRecentPaginated(r.Context(), clicksPerPage, offset)
	if err != nil {
		log.Printf("GetClicksPage: failed to load click records: %v", err)
		data.Message = "Kliklar jurnalini yuklab bo'lmadi."
		data.MessageStatus = "error"
	} else {
		data.Clicks = clicks
		data.TotalClicks = total
		data.TotalPages = int((total + clicksPerPage - 1) / clicksPerPage)
	}

	h.render.HTML(w, http.StatusOK, "admin/clicks/index", data)
}
