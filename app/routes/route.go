package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/ibrohimdev/arzon-market/app/configs"
	"github.com/ibrohimdev/arzon-market/app/handlers"
	"github.com/ibrohimdev/arzon-market/app/handlers/admin"
	"github.com/ibrohimdev/arzon-market/app/middlewares"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/ibrohimdev/arzon-market/app/services"
	"github.com/ibrohimdev/arzon-market/app/utils/renderer"
	"github.com/ibrohimdev/arzon-market/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	rnd := renderer.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	clickRepo := repositories.NewProductClickRepository(db)
	userRepo := repositories.NewUserRepository(db)

	catalogSvc := services.NewCatalogService(productRepo, categoryRepo)
	tracker := services.NewTrackerService(productRepo, clickRepo)

	var sessionStore sessions.SessionStore
	if sessionKeys, err := configs.LoadSessionKeysFromEnv(); err != nil {
		log.Printf("Session keys not configured (%v), using APP_AUTH_KEY as-is", err)
		sessionStore = sessions.NewCookieSessionStore([]byte(env.AppAuthKey))
	} else {
		sessionStore = sessions.NewCookieSessionStore(sessionKeys.AuthKey, sessionKeys.EncKey)
	}

	router := mux.NewRouter()
	router.Use(middlewares.SessionMiddleware(sessionStore, userRepo))

	homeHandler := handlers.NewHomeHandler(rnd, categoryRepo, productRepo)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, tracker, rnd)
	searchHandler := handlers.NewSearchHandler(productRepo, categoryRepo, rnd)
	clickHandler := handlers.NewClickHandler(tracker)
	sitemapHandler := handlers.NewSitemapHandler(productRepo, categoryRepo, env.AppURL)

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/product/{slug}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/search", searchHandler.Search).Methods("GET")
	router.HandleFunc("/go/{id}", clickHandler.Redirect).Methods("GET")
	router.HandleFunc("/sitemap.xml", sitemapHandler.Serve).Methods("GET")

	adminHandler := admin.NewAdminHandler(rnd, validate, productRepo, categoryRepo, clickRepo, userRepo, catalogSvc, sessionStore)

	router.HandleFunc("/admin/login", adminHandler.LoginPage).Methods("GET")
	router.HandleFunc("/admin/login", adminHandler.LoginPost).Methods("POST")
	router.HandleFunc("/admin/logout", adminHandler.Logout).Methods("GET")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(userRepo))
	adminRouter.Use(csrf.Protect([]byte(env.CSRFKey), csrf.Secure(env.AppEnv == "production")))

	adminRouter.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")

	adminRouter.HandleFunc("/categories", adminHandler.GetCategoriesPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/edit/{id}", adminHandler.EditCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/edit/{id}", adminHandler.EditCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/delete/{id}", adminHandler.DeleteCategoryPost).Methods("POST")

	adminRouter.HandleFunc("/products", adminHandler.GetProductsPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/edit/{id}", adminHandler.EditProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/edit/{id}", adminHandler.EditProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/delete/{id}", adminHandler.DeleteProductPost).Methods("POST")

	adminRouter.HandleFunc("/clicks", adminHandler.GetClicksPage).Methods("GET")

	return router
}
