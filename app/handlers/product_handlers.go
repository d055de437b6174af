package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/ibrohimdev/arzon-market/app/services"
	"github.com/unrolled/render"
)

const productsPerPage = 12

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	tracker      services.TrackerService
	render       *render.Render
}

func NewProductHandler(p repositories.ProductRepositoryImpl, c repositories.CategoryRepositoryImpl, t services.TrackerService, r *render.Render) *ProductHandler {
	return &ProductHandler{p, c, t, r}
}

// Products renders the paginated list, optionally filtered with
// ?category=<slug>. "all" (or no parameter) lists everything.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	categorySlug := r.URL.Query().Get("category")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * productsPerPage

	var (
		products        []models.Product
		total           int64
		err             error
		currentCategory *models.Category
	)

	if categorySlug != "" && categorySlug != "all" {
		currentCategory, err = h.categoryRepo.GetBySlug(r.Context(), categorySlug)
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, "Kategoriyani yuklab bo'lmadi", http.StatusInternalServerError)
			return
		}
		products, total, err = h.productRepo.GetByCategorySlugPaginated(r.Context(), categorySlug, productsPerPage, offset)
	} else {
		categorySlug = "all"
		products, total, err = h.productRepo.GetPaginated(r.Context(), productsPerPage, offset)
	}

	if err != nil {
		http.Error(w, "Mahsulotlarni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAllWithProductCount(r.Context())
	if err != nil {
		http.Error(w, "Kategoriyalarni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          "Mahsulotlar",
		"products":       products,
		"categories":     categories,
		"current":        page,
		"totalPages":     int((total + productsPerPage - 1) / productsPerPage),
		"activeCategory": categorySlug,
	})
	if currentCategory != nil {
		data["currentCategory"] = currentCategory
	}

	_ = h.render.HTML(w, http.StatusOK, "products", data)
}

// ProductDetail renders the detail page. Every hit counts as a view, with
// no per-visitor deduplication.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["slug"]
	if productSlug == "" {
		http.NotFound(w, r)
		return
	}

	product, err := h.productRepo.GetBySlug(r.Context(), productSlug)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Mahsulotni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	product, err = h.tracker.RecordView(r.Context(), product.ID)
	if err != nil {
		http.Error(w, "Mahsulotni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	related, err := h.productRepo.GetRelated(r.Context(), product.CategoryID, product.ID, 4)
	if err != nil {
		http.Error(w, "O'xshash mahsulotlarni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           product.Name,
		"metaTitle":       product.MetaTitle,
		"metaDescription": product.MetaDescription,
		"keywords":        product.Keywords,
		"product":         product,
		"related":         related,
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}
