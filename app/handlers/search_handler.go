package handlers

import (
	"net/http"
	"strconv"

	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/unrolled/render"
)

type SearchHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewSearchHandler(p repositories.ProductRepositoryImpl, c repositories.CategoryRepositoryImpl, r *render.Render) *SearchHandler {
	return &SearchHandler{p, c, r}
}

// Search renders substring matches across name, description and keywords.
// A blank query renders an empty result page, not the full catalog.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * productsPerPage

	products, total, err := h.productRepo.SearchPaginated(r.Context(), query, productsPerPage, offset)
	if err != nil {
		http.Error(w, "Qidiruv amalga oshmadi", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Kategoriyalarni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":        "Qidiruv",
		"searchQuery":  query,
		"products":     products,
		"categories":   categories,
		"totalResults": total,
		"current":      page,
		"totalPages":   int((total + productsPerPage - 1) / productsPerPage),
	})

	_ = h.render.HTML(w, http.StatusOK, "search", data)
}
