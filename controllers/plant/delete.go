package plantControllers

import (
	"errors"
	"net/http"

	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
)

func DeletePlant(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := store.DeletePlant(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Plant not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete plant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Plant deleted successfully"})
	}
}
