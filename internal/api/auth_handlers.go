package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"dhatucraft-be/internal/otp"
	"dhatucraft-be/internal/user"
)

const sessionCookie = "access_token"

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   h.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "email, password and name are required")
		return
	}

	token, u, err := h.Users.Register(r.Context(), user.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: mapUser(u)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := h.Users.Login(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, user.ErrInvalidCredentials.Error())
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: mapUser(u)})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.Users.RequestPasswordReset(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		writeError(w, http.StatusInternalServerError, "could not start password reset")
		return
	}

	// Same answer whether or not the account exists.
	writeMessage(w, http.StatusOK, "if the account exists, a reset code has been sent")
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OTP == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "otp and newPassword are required")
		return
	}

	err := h.Users.ResetPassword(r.Context(),
		strings.TrimSpace(strings.ToLower(req.Email)), req.OTP, req.NewPassword)
	if err != nil {
		if errors.Is(err, otp.ErrCodeExpired) || errors.Is(err, otp.ErrCodeInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "could not reset password")
		return
	}

	writeMessage(w, http.StatusOK, "password updated")
}
