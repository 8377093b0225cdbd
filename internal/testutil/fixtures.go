package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kerem/fitness-tracker-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
	isAdmin  bool
	height   float64
	weight   float64
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     "Test User",
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		height:   180,
		weight:   75,
	}
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// AsAdmin marks the user as an administrator
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Height:       b.height,
		Weight:       b.weight,
		IsAdmin:      b.isAdmin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// CreateWorkout inserts a catalog workout directly into the database
func CreateWorkout(t *testing.T, db *gorm.DB, name, muscle string, caloriesBurned float64) *domain.Workout {
	t.Helper()

	workout := &domain.Workout{
		Name:           name,
		Muscle:         muscle,
		Sets:           3,
		Repeats:        12,
		CaloriesBurned: caloriesBurned,
	}
	if err := db.Create(workout).Error; err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}
	return workout
}

// LoginResponse matches the API login response
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserRole    string `json:"userRole"`
}

// Login authenticates via the API and returns the access token and refresh cookie
func (ts *TestServer) Login(t *testing.T, email, password string) (string, *http.Cookie) {
	t.Helper()

	resp := ts.PostJSON(t, "/user/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	var refreshCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "refreshToken" {
			refreshCookie = cookie
		}
	}
	if refreshCookie == nil {
		t.Fatal("login response did not set a refresh cookie")
	}

	return loginResp.AccessToken, refreshCookie
}

// Request performs an HTTP request with an optional bearer token and JSON body
func (ts *TestServer) Request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// PostJSON posts a JSON body, optionally authenticated
func (ts *TestServer) PostJSON(t *testing.T, path, token string, body any) *http.Response {
	t.Helper()
	return ts.Request(t, http.MethodPost, path, token, body)
}
