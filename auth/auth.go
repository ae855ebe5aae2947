// Package auth serves the account endpoints of the nursery API.
package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Tokens holds what the handlers need to sign session tokens.
type Tokens struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func (t Tokens) issue(userID string) (string, error) {
	now := time.Now()
	if t.Now != nil {
		now = t.Now()
	}
	return IssueToken(t.Secret, userID, t.TTL, now)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func respond(c *gin.Context, tokens Tokens, log zerolog.Logger, status int, u *models.User) {
	token, err := tokens.issue(u.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", u.ID).Msg("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Token generation failed"})
		return
	}
	c.JSON(status, gin.H{"data": gin.H{"user": u.Render(), "token": token}})
}

// POST /api/user/login
func Login(store repository.Store, tokens Tokens, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}

		u, err := store.UserByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		if !u.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"message": "Account is disabled"})
			return
		}

		respond(c, tokens, log, http.StatusOK, u)
	}
}

// POST /api/user/register (multipart form)
func Register(store repository.Store, tokens Tokens, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		email := strings.TrimSpace(c.PostForm("email"))
		mobile := strings.TrimSpace(c.PostForm("mobile"))
		password := c.PostForm("password")
		if name == "" || email == "" || mobile == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name, email, mobile and password are required"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}

		lat, _ := strconv.ParseFloat(c.PostForm("latitude"), 64)
		lng, _ := strconv.ParseFloat(c.PostForm("longitude"), 64)
		u := &models.User{
			Email:        email,
			Mobile:       mobile,
			Name:         name,
			PasswordHash: string(hash),
			Address: models.Address{
				Area:    c.PostForm("area"),
				Ward:    c.PostForm("ward"),
				PinCode: c.PostForm("pinCode"),
				City:    c.PostForm("city"),
				State:   c.PostForm("state"),
				Country: c.PostForm("country"),
			},
			Location: models.Location{Latitude: lat, Longitude: lng},
			IsActive: true,
		}

		err = store.CreateUser(c.Request.Context(), u)
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("create user failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		log.Info().Str("user_id", u.ID).Msg("user registered")
		respond(c, tokens, log, http.StatusCreated, u)
	}
}
