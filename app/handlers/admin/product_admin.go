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
	"github.com/shopspring/decimal"
)

type ProductForm struct {
	ID              string
	Name            string `form:"name" validate:"required,min=3,max=255"`
	Description     string `form:"description" validate:"required,min=10"`
	Price           string `form:"price" validate:"required,numeric"`
	AffiliateLink   string `form:"affiliate_link" validate:"required,url,max=500"`
	CategoryID      string `form:"category_id" validate:"required,uuid4"`
	Image           string `form:"image" validate:"max=255"`
	MetaTitle       string `form:"meta_title" validate:"max=255"`
	MetaDescription string `form:"meta_description"`
	Keywords        string `form:"keywords" validate:"max=500"`
}

type AdminProductPageData struct {
	other.BasePageData
	Products    []models.Product
	ProductData *ProductForm
	IsEdit      bool
	FormAction  string
	Errors      map[string]string
	Categories  []models.Category
}

func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{BasePageData: h.baseData(r, "Mahsulotlar")}

	products, _, err := h.productRepo.GetPaginated(r.Context(), 50, 0)
	if err != nil {
		log.Printf("GetProductsPage: failed to load products: %v", err)
		data.Message = "Mahsulotlarni yuklab bo'lmadi."
		data.MessageStatus = "error"
	} else {
		data.Products = products
	}

	h.render.HTML(w, http.StatusOK, "admin/products/index", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{
		BasePageData: h.baseData(r, "Yangi mahsulot"),
		FormAction:   "/admin/products/add",
		ProductData:  &ProductForm{},
		Errors:       make(map[string]string),
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AddProductPage: failed to load categories: %v", err)
		data.Message = "Kategoriyalarni yuklab bo'lmadi."
		data.MessageStatus = "error"
	}
	data.Categories = categories

	h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	form, price, ok := h.parseProductForm(w, r, "/admin/products/add", false)
	if !ok {
		return
	}

	product := &models.Product{
		CategoryID:      form.CategoryID,
		Name:            form.Name,
		Image:           form.Image,
		Description:     form.Description,
		Price:           price,
		AffiliateLink:   form.AffiliateLink,
		MetaTitle:       form.MetaTitle,
		MetaDescription: form.MetaDescription,
		Keywords:        form.Keywords,
	}

	if err := h.catalogSvc.CreateProduct(r.Context(), product); err != nil {
		log.Printf("AddProductPost: failed to create product: %v", err)
		redirectWithMessage(w, r, "/admin/products/add", "error", "Mahsulotni saqlab bo'lmadi.")
		return
	}

	redirectWithMessage(w, r, "/admin/products", "success", "Mahsulot qo'shildi.")
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("EditProductPage: failed to load product %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/products", "error", "Mahsulotni yuklab bo'lmadi.")
		return
	}

	data := &AdminProductPageData{
		BasePageData: h.baseData(r, "Mahsulotni tahrirlash"),
		FormAction:   "/admin/products/edit/" + product.ID,
		IsEdit:       true,
		ProductData: &ProductForm{
			ID:              product.ID,
			Name:            product.Name,
			Description:     product.Description,
			Price:           product.Price.String(),
			AffiliateLink:   product.AffiliateLink,
			CategoryID:      product.CategoryID,
			Image:           product.Image,
			MetaTitle:       product.MetaTitle,
			MetaDescription: product.MetaDescription,
			Keywords:        product.Keywords,
		},
		Errors: make(map[string]string),
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("EditProductPage: failed to load categories: %v", err)
	}
	data.Categories = categories

	h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("EditProductPost: failed to load product %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/products", "error", "Mahsulotni yuklab bo'lmadi.")
		return
	}

	form, price, ok := h.parseProductForm(w, r, "/admin/products/edit/"+id, true)
	if !ok {
		return
	}

	// Slug stays as assigned at creation; SEO fields are taken verbatim
	// from the form and never re-derived here.
	product.CategoryID = form.CategoryID
	product.Name = form.Name
	product.Image = form.Image
	product.Description = form.Description
	product.Price = price
	product.AffiliateLink = form.AffiliateLink
	product.MetaTitle = form.MetaTitle
	product.MetaDescription = form.MetaDescription
	product.Keywords = form.Keywords

	if err := h.catalogSvc.UpdateProduct(r.Context(), product); err != nil {
		log.Printf("EditProductPost: failed to update product %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/products", "error", "Mahsulotni saqlab bo'lmadi.")
		return
	}

	redirectWithMessage(w, r, "/admin/products", "success", "Mahsulot yangilandi.")
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalogSvc.DeleteProduct(r.Context(), id); err != nil {
		log.Printf("DeleteProductPost: failed to delete product %s: %v", id, err)
		redirectWithMessage(w, r, "/admin/products", "error", "Mahsulotni o'chirib bo'lmadi.")
		return
	}

	redirectWithMessage(w, r, "/admin/products", "success", "Mahsulot o'chirildi.")
}

func (h *AdminHandler) parseProductForm(w http.ResponseWriter, r *http.Request, formAction string, isEdit bool) (*ProductForm, decimal.Decimal, bool) {
	if err := r.ParseForm(); err != nil {
		log.Printf("parseProductForm: failed to parse form: %v", err)
		redirectWithMessage(w, r, formAction, "error", "Formani o'qib bo'lmadi.")
		return nil, decimal.Zero, false
	}

	form := &ProductForm{
		Name:            r.PostFormValue("name"),
		Description:     r.PostFormValue("description"),
		Price:           r.PostFormValue("price"),
		AffiliateLink:   r.PostFormValue("affiliate_link"),
		CategoryID:      r.PostFormValue("category_id"),
		Image:           r.PostFormValue("image"),
		MetaTitle:       r.PostFormValue("meta_title"),
		MetaDescription: r.PostFormValue("meta_description"),
		Keywords:        r.PostFormValue("keywords"),
	}

	if err := h.validator.Struct(form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		h.renderProductFormWithErrors(w, r, form, formAction, isEdit, helpers.FormatValidationErrors(validationErrors))
		return nil, decimal.Zero, false
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() {
		h.renderProductFormWithErrors(w, r, form, formAction, isEdit, map[string]string{
			"price": "Narx musbat son bo'lishi kerak.",
		})
		return nil, decimal.Zero, false
	}

	return form, price, true
}

func (h *AdminHandler) renderProductFormWithErrors(w http.ResponseWriter, r *http.Request, form *ProductForm, formAction string, isEdit bool, formErrors map[string]string) {
	data := &AdminProductPageData{
		BasePageData: h.baseData(r, "Mahsulot"),
		FormAction:   formAction,
		IsEdit:       isEdit,
		ProductData:  form,
		Errors:       formErrors,
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("renderProductFormWithErrors: failed to load categories: %v", err)
	}
	data.Categories = categories

	h.render.HTML(w, http.StatusUnprocessableEntity, "admin/products/form", data)
}
