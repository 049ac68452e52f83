package webserver_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nbrandao/equidade/internal/webserver"
	"github.com/nbrandao/equidade/internal/webserver/infrastructure"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

func TestAuthentication(t *testing.T) {
	db := infrastructure.Connect(":memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{}, webserver.Config{})

	data := url.Values{
		"email":    {"admin@example.com"},
		"password": {"admin"},
	}

	t.Run("Try to log in with good and bad credentials", func(t *testing.T) {
		// Check that login page is accessible
		response, err := getRequest(nil, app, "/login")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		// Use no credentials to log in
		req, err := http.NewRequest(http.MethodPost, "/login", nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
		response, err = app.Test(req, testTimeoutMs)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)

		// Use wrong password to log in
		wrong := url.Values{
			"email":    {"admin@example.com"},
			"password": {"nope"},
		}
		req, _ = http.NewRequest(http.MethodPost, "/login", strings.NewReader(wrong.Encode()))
		req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
		response, err = app.Test(req, testTimeoutMs)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)

		// Use good credentials to log in
		req, _ = http.NewRequest(http.MethodPost, "/login", strings.NewReader(data.Encode()))
		req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
		response, err = app.Test(req, testTimeoutMs)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		// Check that user is redirected to the dashboard after a successful log in
		mustRedirectTo(response, "/", t)
	})

	t.Run("Access the dashboard with a session cookie", func(t *testing.T) {
		cookie, err := login(app, "admin@example.com", "admin")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(cookie, app, "/")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)
	})

	t.Run("Deactivated accounts cannot log in", func(t *testing.T) {
		usersRepository := &model.UserRepository{DB: db}
		password, err := model.HashPassword("inactive")
		if err != nil {
			t.Fatal(err)
		}
		user := &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Inactive",
			Username: "inactive",
			Email:    "inactive@example.com",
			Password: password,
			Role:     model.RoleRegular,
			Active:   true,
		}
		if err := usersRepository.Create(user); err != nil {
			t.Fatal(err)
		}
		if err := usersRepository.SetActive(user.Uuid, false); err != nil {
			t.Fatal(err)
		}

		inactive := url.Values{
			"email":    {"inactive@example.com"},
			"password": {"inactive"},
		}
		response, err := postRequest(inactive, nil, app, "/login")
		if response == nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)
	})

	t.Run("Log out removes the session", func(t *testing.T) {
		cookie, err := login(app, "admin@example.com", "admin")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		response, err := getRequest(cookie, app, "/logout")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, "/login", t)
	})
}
