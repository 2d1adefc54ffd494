package api

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/aromabeans/coffee-feedback/store"
	"github.com/aromabeans/coffee-feedback/utils"
	"golang.org/x/crypto/bcrypt"
)

// SignupRequest represents the payload for shopkeeper registration
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
	Password string `json:"password"`
}

// LoginRequest represents the payload for shopkeeper login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the payload for forgot password
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the payload for resetting password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// SignupHandler registers a shopkeeper account.
func (s *Server) SignupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, Email and Password are required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	sk := models.Shopkeeper{
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.InsertShopkeeper(r.Context(), &sk); err != nil {
		if errors.Is(err, store.ErrExists) {
			utils.RespondError(w, http.StatusConflict, "Shopkeeper with this email already exists")
			return
		}
		s.log.WithError(err).Error("failed to create shopkeeper")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create shopkeeper")
		return
	}

	s.log.WithField("email", sk.Email).Info("shopkeeper registered")
	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "Shopkeeper registered successfully",
		"id":      sk.ID.Hex(),
	})
}

// LoginHandler verifies credentials and returns a JWT.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sk, err := s.store.ShopkeeperByEmail(r.Context(), strings.ToLower(req.Email))
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(sk.Password), []byte(req.Password)); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(sk.ID.Hex())
	if err != nil {
		s.log.WithError(err).Error("failed to generate token")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"name":  sk.Name,
		"email": sk.Email,
	})
}

// ForgotPasswordHandler generates an OTP and emails it to the shopkeeper.
func (s *Server) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sk, err := s.store.ShopkeeperByEmail(r.Context(), strings.ToLower(req.Email))
	if err != nil {
		// Same response whether or not the account exists.
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "If the account exists, an OTP has been sent",
		})
		return
	}

	sk.OTP = generateOTP()
	if err := s.store.UpdateShopkeeper(r.Context(), sk); err != nil {
		s.log.WithError(err).Error("failed to store OTP")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to process request")
		return
	}

	if err := utils.SendEmail(sk.Name, sk.Email, "Reset your password",
		fmt.Sprintf("Your OTP is: %s", sk.OTP),
		fmt.Sprintf("<h1>Your OTP is: <strong>%s</strong></h1>", sk.OTP)); err != nil {
		s.log.WithError(err).Warn("failed to send OTP email")
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "If the account exists, an OTP has been sent",
	})
}

// ResetPasswordHandler verifies the OTP and replaces the password.
func (s *Server) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OTP == "" || req.NewPassword == "" {
		utils.RespondError(w, http.StatusBadRequest, "OTP and new password are required")
		return
	}

	sk, err := s.store.ShopkeeperByEmail(r.Context(), strings.ToLower(req.Email))
	if err != nil || sk.OTP == "" || sk.OTP != req.OTP {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid OTP")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	sk.Password = string(hashedPassword)
	sk.OTP = ""
	if err := s.store.UpdateShopkeeper(r.Context(), sk); err != nil {
		s.log.WithError(err).Error("failed to update password")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update password")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// requireAuth guards dashboard endpoints with a Bearer JWT.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		if _, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer ")); err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next(w, r)
	}
}

func generateOTP() string {
	otp := make([]byte, 6)
	buf := make([]byte, 6)
	rand.Read(buf)
	for i := range otp {
		otp[i] = '0' + buf[i]%10
	}
	return string(otp)
}
