package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/ibrohimdev/arzon-market/app/repositories"
)

const sitemapTimeLayout = "2006-01-02"

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type SitemapHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	baseURL      string
}

func NewSitemapHandler(p repositories.ProductRepositoryImpl, c repositories.CategoryRepositoryImpl, baseURL string) *SitemapHandler {
	return &SitemapHandler{
		productRepo:  p,
		categoryRepo: c,
		baseURL:      baseURL,
	}
}

// Serve writes sitemap.xml with every product (lastmod from updated_at)
// and every category (lastmod from created_at).
func (h *SitemapHandler) Serve(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(products)+len(categories)),
	}

	for _, product := range products {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/product/%s", h.baseURL, product.Slug),
			LastMod:    product.UpdatedAt.Format(sitemapTimeLayout),
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}
	for _, category := range categories {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/products?category=%s", h.baseURL, category.Slug),
			LastMod:    category.CreatedAt.Format(sitemapTimeLayout),
			ChangeFreq: "weekly",
			Priority:   "0.9",
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, xml.Header)
	// Headers are already out; an encode error here is a client write
	// failure and there is nothing left to send.
	_ = xml.NewEncoder(w).Encode(urlSet)
}
