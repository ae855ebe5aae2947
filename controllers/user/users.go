package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/darshan2121/PlantApp/middleware"
	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
)

// GET /api/user/profile
func GetUser(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.UserByID(c.Request.Context(), middleware.UserID(c))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": user.Render()})
	}
}

// GET /api/admin/users
func GetAllUsers(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := store.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
			return
		}
		for i := range users {
			users[i].Render()
		}
		c.JSON(http.StatusOK, gin.H{"data": users})
	}
}

type UpdateUserInput struct {
	Name         *string         `json:"name"`
	NameGujarati *string         `json:"nameGujarati"`
	Mobile       *string         `json:"mobile"`
	Address      *models.Address `json:"address"`
}

// PUT /api/user/profile
func UpdateUser(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		user, err := store.UpdateUser(c.Request.Context(), middleware.UserID(c), func(u *models.User) error {
			if input.Name != nil {
				u.Name = strings.TrimSpace(*input.Name)
			}
			if input.NameGujarati != nil {
				u.NameGujarati = strings.TrimSpace(*input.NameGujarati)
			}
			if input.Mobile != nil {
				u.Mobile = strings.TrimSpace(*input.Mobile)
			}
			if input.Address != nil {
				u.Address = *input.Address
			}
			return nil
		})
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "data": user.Render()})
	}
}
