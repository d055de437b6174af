package other

import (
	"html/template"
	"net/url"
)

type UserForTemplate struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

type BasePageData struct {
	Title         string
	IsLoggedIn    bool
	User          *UserForTemplate
	UserID        string
	CSRFField     template.HTML
	Message       string
	MessageStatus string
	Query         url.Values
	IsAdminPage   bool
	CurrentPath   string
}
