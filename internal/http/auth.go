package http

import (
	"net/http"

	"team-builder-service/internal/service"
)

// Flash copy shown on the login page, keyed by the service error code. The
// wording matches the original UI.
var registerFlashByCode = map[string]string{
	"BAD_REQUEST":       "Por favor completa todos los campos",
	"PASSWORD_MISMATCH": "Las contraseñas no coinciden",
	"USERNAME_TAKEN":    "El nombre de usuario ya está en uso",
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Sessions.Put(r.Context(), sessionFlashKey, "Usuario o contraseña incorrectos")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.Auth.Login(r.Context(), username, password)
	if err != nil {
		h.Log.Info("login rejected", "username", username)
		h.Sessions.Put(r.Context(), sessionFlashKey, "Usuario o contraseña incorrectos")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// New session token on privilege change.
	if err := h.Sessions.RenewToken(r.Context()); err != nil {
		h.writeError(w, "login", err)
		return
	}
	h.Sessions.Put(r.Context(), sessionUserIDKey, user.ID)
	h.Sessions.Put(r.Context(), sessionUsernameKey, user.Username)
	h.Sessions.Put(r.Context(), sessionFlashKey, "¡Inicio de sesión exitoso!")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Sessions.Put(r.Context(), sessionFlashKey, "Error en el registro. Por favor intenta nuevamente.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	passwordConfirm := r.PostFormValue("password_confirm")

	h.Log.Info("registration attempt", "username", username)

	user, err := h.Auth.Register(r.Context(), username, password, passwordConfirm)
	if err != nil {
		flash := "Error en el registro. Por favor intenta nuevamente."
		if appErr, ok := err.(*service.AppError); ok {
			if msg, known := registerFlashByCode[appErr.Code]; known {
				flash = msg
			}
		}
		h.Sessions.Put(r.Context(), sessionFlashKey, flash)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.Log.Info("user registered", "username", user.Username)

	if err := h.Sessions.RenewToken(r.Context()); err != nil {
		h.writeError(w, "register", err)
		return
	}
	h.Sessions.Put(r.Context(), sessionUserIDKey, user.ID)
	h.Sessions.Put(r.Context(), sessionUsernameKey, user.Username)
	h.Sessions.Put(r.Context(), sessionFlashKey, "¡Registro exitoso! Bienvenido.")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(r.Context()); err != nil {
		h.writeError(w, "logout", err)
		return
	}
	h.Sessions.Put(r.Context(), sessionFlashKey, "Has cerrado sesión exitosamente")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
