package admin

import (
	"log"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/models/other"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/ibrohimdev/arzon-market/app/services"
	"github.com/ibrohimdev/arzon-market/app/utils/sessions"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	clickRepo    repositories.ProductClickRepositoryImpl
	userRepo     repositories.UserRepositoryImpl
	catalogSvc   services.CatalogService
	sessionStore sessions.SessionStore
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	clickRepo repositories.ProductClickRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	catalogSvc services.CatalogService,
	sessionStore sessions.SessionStore,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		validator:    validator,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		clickRepo:    clickRepo,
		userRepo:     userRepo,
		catalogSvc:   catalogSvc,
		sessionStore: sessionStore,
	}
}

type AdminPageData struct {
	other.BasePageData
	TotalProducts   int64
	TotalCategories int64
	TotalClicks     int64
	RecentClicks    []models.ProductClick
}

func (h *AdminHandler) baseData(r *http.Request, title string) other.BasePageData {
	data := other.BasePageData{
		Title:         title,
		IsAdminPage:   true,
		CurrentPath:   r.URL.Path,
		CSRFField:     csrf.TemplateField(r),
		Message:       r.URL.Query().Get("message"),
		MessageStatus: r.URL.Query().Get("status"),
		Query:         r.URL.Query(),
	}

	if userVal := r.Context().Value(helpers.ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			data.User = &other.UserForTemplate{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
				Role:      user.Role,
			}
			data.IsLoggedIn = true
			data.UserID = user.ID
		}
	}

	return data
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := &AdminPageData{BasePageData: h.baseData(r, "Boshqaruv paneli")}

	var err error
	if data.TotalProducts, err = h.productRepo.Count(r.Context()); err != nil {
		log.Printf("Dashboard: failed to count products: %v", err)
	}
	if data.TotalCategories, err = h.categoryRepo.Count(r.Context()); err != nil {
		log.Printf("Dashboard: failed to count categories: %v", err)
	}
	if data.TotalClicks, err = h.clickRepo.Count(r.Context()); err != nil {
		log.Printf("Dashboard: failed to count clicks: %v", err)
	}
	if clicks, _, err := h.clickRepo.GetRecentPaginated(r.Context(), 10, 0); err != nil {
		log.Printf("Dashboard: failed to load recent clicks: %v", err)
	} else {
		data.RecentClicks = clicks
	}

	h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, status, message string) {
	http.Redirect(w, r, path+"?status="+status+"&message="+url.QueryEscape(message), http.StatusSeeOther)
}
