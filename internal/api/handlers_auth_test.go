package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestSignup_CreatesAccountAndReturnsToken(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/users/signup", map[string]any{
		"email":    "sam@example.com",
		"username": "sam",
		"password": "secret123",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	payload := struct {
		Token string `json:"token"`
		User  struct {
			ID         string `json:"id"`
			Email      string `json:"email"`
			Username   string `json:"username"`
			Role       string `json:"role"`
			Points     int    `json:"points"`
			Level      int    `json:"level"`
			FilledForm bool   `json:"filledForm"`
		} `json:"user"`
	}{}
	decodeBody(t, response.Body, &payload)

	if payload.Token == "" {
		t.Fatal("expected a bearer token")
	}
	if payload.User.ID == "" {
		t.Fatal("expected a public user id")
	}
	if payload.User.Email != "sam@example.com" || payload.User.Username != "sam" {
		t.Fatalf("unexpected profile %+v", payload.User)
	}
	if payload.User.Role != "student" || payload.User.Points != 0 || payload.User.Level != 1 {
		t.Fatalf("expected fresh student account, got %+v", payload.User)
	}
	if payload.User.FilledForm {
		t.Fatal("expected filledForm false for a new account")
	}
}

func TestSignup_NeverSerializesPasswordHash(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/users/signup", map[string]any{
		"email":    "sam@example.com",
		"username": "sam",
		"password": "secret123",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Fatalf("password material leaked into response: %s", body)
	}
}

func TestSignup_RejectsDuplicates(t *testing.T) {
	app, _ := newTestApp(t)
	signupTestUser(t, app, "sam@example.com", "sam")

	tests := []struct {
		name     string
		email    string
		username string
		want     string
	}{
		{name: "duplicate email", email: "sam@example.com", username: "other", want: "user already exists"},
		{name: "duplicate username", email: "other@example.com", username: "sam", want: "username is already taken"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			request := jsonRequest(t, http.MethodPost, "/users/signup", map[string]any{
				"email":    testCase.email,
				"username": testCase.username,
				"password": "secret123",
			})
			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("signup request failed: %v", err)
			}
			defer response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
			if got := readAPIError(t, response.Body); got != testCase.want {
				t.Fatalf("expected error %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestSignup_RejectsMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/users/signup", map[string]any{
		"email":    "not-an-email",
		"username": "sam",
		"password": "secret123",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestLogin_AwardsDailyBonusOnce(t *testing.T) {
	app, _ := newTestApp(t)
	signupTestUser(t, app, "sam@example.com", "sam")

	login := func() (int, int) {
		request := jsonRequest(t, http.MethodPost, "/users/login", map[string]any{
			"email":    "sam@example.com",
			"password": "secret123",
		})
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("login request failed: %v", err)
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", response.StatusCode)
		}
		payload := struct {
			Token string `json:"token"`
			User  struct {
				Points int `json:"points"`
				Level  int `json:"level"`
			} `json:"user"`
		}{}
		decodeBody(t, response.Body, &payload)
		if payload.Token == "" {
			t.Fatal("expected a bearer token")
		}
		return payload.User.Points, payload.User.Level
	}

	points, level := login()
	if points != 5 || level != 1 {
		t.Fatalf("expected 5 points at level 1 after first login, got %d/%d", points, level)
	}

	// Second login on the same day does not award again.
	points, level = login()
	if points != 5 || level != 1 {
		t.Fatalf("expected unchanged totals on same-day login, got %d/%d", points, level)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	signupTestUser(t, app, "sam@example.com", "sam")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "sam@example.com", password: "wrong-pass"},
		{name: "unknown email", email: "ghost@example.com", password: "secret123"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			request := jsonRequest(t, http.MethodPost, "/users/login", map[string]any{
				"email":    testCase.email,
				"password": testCase.password,
			})
			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("login request failed: %v", err)
			}
			defer response.Body.Close()

			if response.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", response.StatusCode)
			}
		})
	}
}
