package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSitemapRouter(db *gorm.DB) *mux.Router {
	handler := NewSitemapHandler(
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
		"https://arzon-market.uz",
	)

	router := mux.NewRouter()
	router.HandleFunc("/sitemap.xml", handler.Serve).Methods("GET")
	return router
}

func TestSitemapListsProductsAndCategories(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Shoes", "shoes")
	seedProduct(t, db, category, "Running Shoe", "running-shoe")

	router := setupSitemapRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.Contains(t, body, "<loc>https://arzon-market.uz/product/running-shoe</loc>")
	assert.Contains(t, body, "<loc>https://arzon-market.uz/products?category=shoes</loc>")
	assert.Contains(t, body, "<changefreq>daily</changefreq>")
	assert.Contains(t, body, "<changefreq>weekly</changefreq>")
}

func TestSitemapEmptyCatalog(t *testing.T) {
	db := freshDB(t)
	router := setupSitemapRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "urlset")
}
