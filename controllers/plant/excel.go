package plantControllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// Sheet columns shared by import and export.
var excelHeaders = []string{
	"ID", "Name", "NameGujarati", "Description", "DescriptionGujarati",
	"Category", "Tag", "Benefits", "BenefitsGujarati", "Difficulty",
	"Stock", "Image",
}

type ImportResult struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

func ImportPlantsFromExcel(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is empty or missing header row"})
			return
		}

		res, err := importSheet(c.Request.Context(), store, xlFile.Sheets[0])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": res.Created,
			"updated_count": res.Updated,
			"skipped_count": res.Skipped,
		})
	}
}

// importSheet upserts one plant per row after the header. Rows match an
// existing plant by ID first, then by name.
func importSheet(ctx context.Context, store repository.Store, sheet *xlsx.Sheet) (ImportResult, error) {
	var res ImportResult

	categories, err := store.ListCategories(ctx)
	if err != nil {
		return res, err
	}
	categoryID := func(v string) string {
		for _, cat := range categories {
			if cat.ID == v || strings.EqualFold(cat.Name, v) {
				return cat.ID
			}
		}
		return v
	}

	for i := 1; i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		if row == nil {
			res.Skipped++
			continue
		}
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		name := get(1)
		stock, stockErr := strconv.Atoi(get(10))
		difficulty, ok := normalizeDifficulty(get(9))
		if name == "" || stockErr != nil || stock < 0 || !ok {
			res.Skipped++
			continue
		}

		plant := &models.Plant{}
		existing := false
		if id := get(0); id != "" {
			if p, err := store.PlantByID(ctx, id); err == nil {
				plant, existing = p, true
			}
		}
		if !existing {
			if p, err := store.PlantByName(ctx, name); err == nil {
				plant, existing = p, true
			} else if !errors.Is(err, repository.ErrNotFound) {
				res.Skipped++
				continue
			}
		}

		plant.Name = name
		plant.NameGujarati = get(2)
		plant.Description = get(3)
		plant.DescriptionGujarati = get(4)
		plant.CategoryID = categoryID(get(5))
		plant.Tag = get(6)
		plant.Benefits = splitList(get(7))
		plant.BenefitsGujarati = splitList(get(8))
		plant.Difficulty = difficulty
		plant.Stock = stock
		if img := get(11); img != "" {
			plant.Image = img
		}
		plant.SyncStock()

		if err := store.SavePlant(ctx, plant); err != nil {
			res.Skipped++
			continue
		}
		if existing {
			res.Updated++
		} else {
			res.Created++
		}
	}
	return res, nil
}
