package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/models/other"
	"github.com/ibrohimdev/arzon-market/app/repositories"
)

type CategoryForm struct {
	ID          string
	Name        string `form:"name" validate:"required,min=2,max=255"`
	Icon        string `form:"icon" validate:"max=255"`
	Description string `form:"description"`
}

type AdminCategoryPageData struct {
	other.BasePageData
	Categories   []repositories.CategoryWithCount
	CategoryData *CategoryForm
	IsEdit       bool
	FormAction   string
	Errors       map[string]string
}

func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{BasePageData: h.baseData(r, "Kategoriyalar")}

	categories, err := h.categoryRepo.GetAllWithProductCount(r.Context())
	if err != nil {
		log.Printf("GetCategoriesPage: failed to load categories: %v", err)
		data.Message = "Kategoriyalarni yuklab bo'lmadi."
		data.MessageStatus = "error"
	} else {
		data.Categories = categories
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/index", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{
		BasePageData: h.baseData(r, "Yangi kategoriya"),
		FormAction:   "/admin/categories/add",
		CategoryData: &CategoryForm{},
		Errors:       make(map[string]string),
	}
	h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseCategoryForm(w, r, "/admin/categories/add", false)
	if !ok {
		return
	}

	category := &models.Category{
		Name:        form.Name,
		Icon:        form.Icon,
		Description: form.Description,
	}

	if err := h.catalogSvc.CreateCategory(r.Context(), category); err != nil {
		log.Printf("AddCategoryPost: failed to create category: %v", err)
		redirectWithMessage(w, r, "/admin/categories/add", "error", "Kategoriyani saqlab bo'lmadi.")
		return
	}

	redirectWithMessage(w, r, "/admin/categories", "success", "Kategoriya qo'shildi.")
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("EditCategoryPage: failed to load category %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Kategoriyani yuklab bo'lmadi.")
		return
	}

	data := &AdminCategoryPageData{
		BasePageData: h.baseData(r, "Kategoriyani tahrirlash"),
		FormAction:   "/admin/categories/edit/" + category.ID,
		IsEdit:       true,
		CategoryData: &CategoryForm{
			ID:          category.ID,
			Name:        category.Name,
			Icon:        category.Icon,
			Description: category.Description,
		},
		Errors: make(map[string]string),
	}
	h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("EditCategoryPost: failed to load category %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Kategoriyani yuklab bo'lmadi.")
		return
	}

	form, ok := h.parseCategoryForm(w, r, "/admin/categories/edit/"+id, true)
	if !ok {
		return
	}

	// Slug intentionally untouched: it is fixed at creation.
	category.Name = form.Name
	category.Icon = form.Icon
	category.Description = form.Description

	if err := h.catalogSvc.UpdateCategory(r.Context(), category); err != nil {
		log.Printf("EditCategoryPost: failed to update category %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Kategoriyani saqlab bo'lmadi.")
		return
	}

	redirectWithMessage(w, r, "/admin/categories", "success", "Kategoriya yangilandi.")
}

// DeleteCategoryPost removes the category; its products and their click
// records cascade away with it.
func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalogSvc.DeleteCategory(r.Context(), id); err != nil {
		log.Printf("DeleteCategoryPost: failed to delete category %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/categories", "error", "Kategoriyani o'chirib bo'lmadi.")
		return
	}

	redirectWithMessage(w, r, "/admin/categories", "success", "Kategoriya o'chirildi.")
}

func (h *AdminHandler) parseCategoryForm(w http.ResponseWriter, r *http.Request, formAction string, isEdit bool) (*CategoryForm, bool) {
	if err := r.ParseForm(); err != nil {
		log.Printf("parseCategoryForm: failed to parse form: %v", err)
		redirectWithMessage(w, r, formAction, "error", "Formani o'qib bo'lmadi.")
		return nil, false
	}

	form := &CategoryForm{
		Name:        r.PostFormValue("name"),
		Icon:        r.PostFormValue("icon"),
		Description: r.PostFormValue("description"),
	}

	if err := h.validator.Struct(form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		data := &AdminCategoryPageData{
			BasePageData: h.baseData(r, "Kategoriya"),
			FormAction:   formAction,
			IsEdit:       isEdit,
			CategoryData: form,
			Errors:       helpers.FormatValidationErrors(validationErrors),
		}
		h.render.HTML(w, http.StatusUnprocessableEntity, "admin/categories/form", data)
		return nil, false
	}

	return form, true
}
