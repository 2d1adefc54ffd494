package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aromabeans/coffee-feedback/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	config.JWTSecret = "test-secret"
	srv, _, _ := newTestServer(t)

	w := postJSON(srv.SignupHandler, "/auth/signup",
		`{"name":"Asha","email":"Asha@Example.com","phone_number":"15550001111","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email is rejected.
	w = postJSON(srv.SignupHandler, "/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login is case-insensitive on email.
	w = postJSON(srv.LoginHandler, "/auth/login",
		`{"email":"ASHA@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "Asha", resp["name"])

	w = postJSON(srv.LoginHandler, "/auth/login",
		`{"email":"asha@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(srv.LoginHandler, "/auth/login",
		`{"email":"nobody@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupRequiresFields(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postJSON(srv.SignupHandler, "/auth/signup", `{"email":"x@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestForgotPasswordHidesAccountExistence(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postJSON(srv.ForgotPasswordHandler, "/auth/forgot-password",
		`{"email":"ghost@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If the account exists")
}

func TestResetPasswordWithOTP(t *testing.T) {
	config.JWTSecret = "test-secret"
	srv, st, _ := newTestServer(t)

	w := postJSON(srv.SignupHandler, "/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"oldpass"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	sk, err := st.ShopkeeperByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	sk.OTP = "123456"
	require.NoError(t, st.UpdateShopkeeper(context.Background(), sk))

	w = postJSON(srv.ResetPasswordHandler, "/auth/reset-password",
		`{"email":"asha@example.com","otp":"999999","new_password":"newpass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(srv.ResetPasswordHandler, "/auth/reset-password",
		`{"email":"asha@example.com","otp":"123456","new_password":"newpass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, new one does, OTP is single-use.
	w = postJSON(srv.LoginHandler, "/auth/login",
		`{"email":"asha@example.com","password":"oldpass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(srv.LoginHandler, "/auth/login",
		`{"email":"asha@example.com","password":"newpass"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(srv.ResetPasswordHandler, "/auth/reset-password",
		`{"email":"asha@example.com","otp":"123456","new_password":"again"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth(t *testing.T) {
	config.JWTSecret = "test-secret"
	srv, _, _ := newTestServer(t)

	protected := srv.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := record(protected, httptestGet("/dashboard/stats"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptestGet("/dashboard/stats")
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = record(protected, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(srv.SignupHandler, "/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = postJSON(srv.LoginHandler, "/auth/login",
		`{"email":"asha@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req = httptestGet("/dashboard/stats")
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	w = record(protected, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := generateOTP()
		require.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}
