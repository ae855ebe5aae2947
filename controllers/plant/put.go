package plantControllers

import (
	"errors"
	"net/http"

	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
)

type UpdatePlantInput struct {
	Name                *string   `json:"name"`
	NameGujarati        *string   `json:"nameGujarati"`
	Description         *string   `json:"description"`
	DescriptionGujarati *string   `json:"descriptionGujarati"`
	Category            *string   `json:"category"`
	Tag                 *string   `json:"tag"`
	Benefits            *[]string `json:"benefits"`
	BenefitsGujarati    *[]string `json:"benefitsGujarati"`
	Difficulty          *string   `json:"difficulty"`
	Stock               *int      `json:"stock"`
}

// PUT /api/admin/items/:id
func UpdatePlant(store repository.Store) gin.HandlerFunc {
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

		var input UpdatePlantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.Name != nil {
			plant.Name = *input.Name
		}
		if input.NameGujarati != nil {
			plant.NameGujarati = *input.NameGujarati
		}
		if input.Description != nil {
			plant.Description = *input.Description
		}
		if input.DescriptionGujarati != nil {
			plant.DescriptionGujarati = *input.DescriptionGujarati
		}
		if input.Category != nil {
			plant.CategoryID = *input.Category
		}
		if input.Tag != nil {
			plant.Tag = *input.Tag
		}
		if input.Benefits != nil {
			plant.Benefits = *input.Benefits
		}
		if input.BenefitsGujarati != nil {
			plant.BenefitsGujarati = *input.BenefitsGujarati
		}
		if input.Difficulty != nil {
			d, ok := normalizeDifficulty(*input.Difficulty)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "difficulty must be Easy, Medium or Hard"})
				return
			}
			plant.Difficulty = d
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock"})
				return
			}
			plant.Stock = *input.Stock
		}
		plant.SyncStock()

		if err := store.SavePlant(c.Request.Context(), plant); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update plant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": plant})
	}
}
