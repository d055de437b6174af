package helpers

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/models/other"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

// ClientIP extracts the requester's address, preferring the first entry of
// X-Forwarded-For when the app sits behind a proxy.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Arzon Market"
	}

	if _, exists := pageSpecificData["Query"]; !exists {
		pageSpecificData["Query"] = r.URL.Query()
	}

	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			pageSpecificData["User"] = &other.UserForTemplate{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
				Role:      user.Role,
			}
			pageSpecificData["IsLoggedIn"] = true
			pageSpecificData["UserID"] = user.ID
		} else {
			log.Printf("GetBaseData: User in context is not of type *models.User or is nil. Value: %+v", userVal)
			pageSpecificData["User"] = nil
			pageSpecificData["IsLoggedIn"] = false
			pageSpecificData["UserID"] = ""
		}
	}

	if status := r.URL.Query().Get("status"); status != "" {
		pageSpecificData["MessageStatus"] = status
	} else {
		pageSpecificData["MessageStatus"] = ""
	}
	if msg := r.URL.Query().Get("message"); msg != "" {
		pageSpecificData["Message"] = msg
	} else {
		pageSpecificData["Message"] = ""
	}

	return pageSpecificData
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s to'ldirilishi shart.", err.Field())
		case "url":
			errorMessages[field] = fmt.Sprintf("%s to'g'ri havola bo'lishi kerak.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s raqam bo'lishi kerak.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s kamida %s belgidan iborat bo'lishi kerak.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s ko'pi bilan %s belgidan iborat bo'lishi kerak.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s maydoni uchun %s tekshiruvi o'tmadi.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
