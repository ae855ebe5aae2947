package plantControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CreatePlant adds a plant from a multipart form with an optional image.
func CreatePlant(store repository.Store, uploadDir string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
			return
		}

		stock := 0
		if s := c.PostForm("stock"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
				return
			}
			stock = n
		}
		difficulty, ok := normalizeDifficulty(c.PostForm("difficulty"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "difficulty must be Easy, Medium or Hard"})
			return
		}

		if _, err := store.PlantByName(c.Request.Context(), name); err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Plant already exists"})
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check plant"})
			return
		}

		imageURL, err := saveUpload(c, "image", uploadDir, "plants")
		if err != nil {
			log.Error().Err(err).Msg("plant image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save image"})
			return
		}

		plant := models.Plant{
			Name:                name,
			NameGujarati:        c.PostForm("nameGujarati"),
			Image:               imageURL,
			Description:         c.PostForm("description"),
			DescriptionGujarati: c.PostForm("descriptionGujarati"),
			CategoryID:          c.PostForm("category"),
			Tag:                 c.PostForm("tag"),
			Benefits:            splitList(c.PostForm("benefits")),
			BenefitsGujarati:    splitList(c.PostForm("benefitsGujarati")),
			Difficulty:          difficulty,
			Stock:               stock,
		}
		if imageURL != "" {
			plant.Images = []string{imageURL}
		}
		plant.SyncStock()

		if err := store.SavePlant(c.Request.Context(), &plant); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create plant"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"data": plant})
	}
}
