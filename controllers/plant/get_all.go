package plantControllers

import (
	"errors"
	"net/http"

	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
)

// GET /api/items
func GetItems(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		plants, err := store.ListPlants(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch plants"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": plants})
	}
}

// GET /api/items/:id
func GetItemByID(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		plant, err := store.PlantByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Plant not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch plant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": plant})
	}
}

// GET /api/categories
func GetCategories(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": categories})
	}
}
