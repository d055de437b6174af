package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ibrohimdev/arzon-market/app/models"
)

const (
	metaTitleSuffix     = " - Arzon narxda xarid qiling"
	metaDescriptionSize = 150
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML markup from a rich-text description, leaving the
// plain text.
func StripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// ApplySEODefaults fills blank SEO fields at creation time. Fields that
// already hold a value are left untouched, and the defaults are never
// recomputed on later saves even if name, description or price change.
func ApplySEODefaults(product *models.Product) {
	if product.MetaTitle == "" {
		product.MetaTitle = product.Name + metaTitleSuffix
	}
	if product.MetaDescription == "" {
		desc := StripTags(product.Description)
		if runes := []rune(desc); len(runes) > metaDescriptionSize {
			desc = string(runes[:metaDescriptionSize])
		}
		product.MetaDescription = fmt.Sprintf("%s. Narxi: %s so'm.", desc, product.Price.StringFixed(2))
	}
}
