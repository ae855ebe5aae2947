package plantControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CreateCategory takes name, nameGujarati and an optional icon image.
func CreateCategory(store repository.Store, uploadDir string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
			return
		}

		icon, err := saveUpload(c, "icon", uploadDir, "categories")
		if err != nil {
			log.Error().Err(err).Msg("category icon upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
			return
		}

		category := models.Category{
			Name:         name,
			NameGujarati: strings.TrimSpace(c.PostForm("nameGujarati")),
			Icon:         icon,
		}
		err = store.CreateCategory(c.Request.Context(), &category)
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "Category already exists"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"data": category})
	}
}
