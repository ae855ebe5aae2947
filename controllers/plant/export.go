package plantControllers

import (
	"net/http"
	"strings"

	"github.com/darshan2121/PlantApp/models"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

func ExportPlantsToExcel(store repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		plants, err := store.ListPlants(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch plants"})
			return
		}

		file, err := buildSheet(plants)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=plants.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write Excel file"})
			return
		}
	}
}

func buildSheet(plants []models.Plant) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Plants")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range excelHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range plants {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.NameGujarati)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.DescriptionGujarati)
		row.AddCell().SetValue(p.CategoryID)
		row.AddCell().SetValue(p.Tag)
		row.AddCell().SetValue(strings.Join(p.Benefits, ","))
		row.AddCell().SetValue(strings.Join(p.BenefitsGujarati, ","))
		row.AddCell().SetValue(p.Difficulty)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Image)
	}
	return file, nil
}
