package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/models/other"
	"github.com/ibrohimdev/arzon-market/app/repositories"
)

type LoginPageData struct {
	other.BasePageData
	Email string
}

func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := &LoginPageData{BasePageData: h.baseData(r, "Kirish")}
	h.render.HTML(w, http.StatusOK, "admin/login", data)
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/admin/login", "error", "Formani o'qib bo'lmadi.")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("LoginPost: failed to look up user %s: %v", email, err)
		}
		redirectWithMessage(w, r, "/admin/login", "error", "Email yoki parol noto'g'ri.")
		return
	}

	if user.Role != "admin" || !helpers.PasswordCompare(user.Password, []byte(password)) {
		redirectWithMessage(w, r, "/admin/login", "error", "Email yoki parol noto'g'ri.")
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPost: failed to save session for user %s: %v", user.ID, err)
		redirectWithMessage(w, r, "/admin/login", "error", "Sessiyani saqlab bo'lmadi.")
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
