package handlers

import (
	"net/http"

	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewHomeHandler(r *render.Render, c repositories.CategoryRepositoryImpl, p repositories.ProductRepositoryImpl) *HomeHandler {
	return &HomeHandler{
		render:       r,
		categoryRepo: c,
		productRepo:  p,
	}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Kategoriyalarni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	featured, err := h.productRepo.GetLatest(r.Context(), 12)
	if err != nil {
		http.Error(w, "Mahsulotlarni yuklab bo'lmadi", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Bosh sahifa",
		"categories": categories,
		"featured":   featured,
	})

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
