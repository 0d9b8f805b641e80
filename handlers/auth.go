package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hogl3g/tracker/config"
	"github.com/hogl3g/tracker/middleware"
	"github.com/hogl3g/tracker/models"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userPayload struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// Login exchanges an email/password pair for a session token.
//
// The configured admin identity (ADMIN_EMAIL/ADMIN_PASSWORD) is checked
// against its password and auto-provisioned on first login. Any other
// email with an existing user row is accepted WITHOUT a password check
// unless ALLOW_PASSWORDLESS_LOGIN=false. That fallback is a development
// convenience carried over from the original sign-in flow; do not leave
// it enabled on a real deployment.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail != "" && adminPassword != "" && req.Email == adminEmail {
		if req.Password != adminPassword {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		u, err := findOrCreateAdmin(adminEmail, adminPassword)
		if err != nil {
			log.Printf("Failed to provision admin user: %v", err)
			http.Error(w, "login failed", http.StatusInternalServerError)
			return
		}
		respondWithToken(w, u)
		return
	}

	if os.Getenv("ALLOW_PASSWORDLESS_LOGIN") == "false" {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Dev fallback: any known email signs in, no password verification.
	var u models.User
	if err := config.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	respondWithToken(w, &u)
}

func findOrCreateAdmin(email, password string) (*models.User, error) {
	var u models.User
	err := config.DB.Where("email = ?", email).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u = models.User{
		Email:        email,
		Name:         "Admin",
		Role:         "admin",
		PasswordHash: string(hash),
	}
	if err := config.DB.Create(&u).Error; err != nil {
		return nil, err
	}
	log.Println("Provisioned admin user:", email)
	return &u, nil
}

func respondWithToken(w http.ResponseWriter, u *models.User) {
	token, err := middleware.GenerateToken(u.ID.String(), u.Email, u.Name, u.Role)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}
	out := loginResp{
		Token: token,
		User: userPayload{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Profile returns the identity carried by the current session token.
func Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	response := map[string]interface{}{
		"userID": claims.UserID,
		"email":  claims.Email,
		"name":   claims.Name,
		"role":   claims.Role,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
