package itemControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

var excelHeaders = []string{
	"ID", "Name", "Description", "Price", "StockQuantity", "Category", "Image",
}

// ExportItemsToExcel streams the whole catalog as an xlsx download.
// GET /items/export
func ExportItemsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.FishItem
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Items")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Description)
			row.AddCell().SetValue(item.Price.String())
			row.AddCell().SetValue(item.StockQuantity)
			row.AddCell().SetValue(item.Category)
			row.AddCell().SetValue(item.Image)
		}

		c.Header("Content-Disposition", "attachment; filename=items.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write Excel file"})
			return
		}
	}
}

// ImportItemsFromExcel bulk-creates catalog entries from an uploaded
// xlsx in the export format. Rows with a missing name or unparsable
// price are skipped, not fatal.
// POST /items/import
func ImportItemsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is required"})
			return
		}

		upload, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to open Excel file"})
			return
		}
		defer upload.Close()

		xlFile, err := xlsx.OpenReaderAt(upload, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		created, skipped := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			price, priceErr := decimal.NewFromString(get(3))
			stock, stockErr := strconv.Atoi(get(4))
			if name == "" || priceErr != nil || stockErr != nil || price.IsNegative() || stock < 0 {
				skipped++
				continue
			}

			item := models.FishItem{
				Name:          name,
				Description:   get(2),
				Price:         price,
				StockQuantity: stock,
				Category:      get(5),
				Image:         get(6),
			}
			if err := db.Create(&item).Error; err != nil {
				skipped++
				continue
			}
			created++
		}

		c.JSON(http.StatusOK, gin.H{"created": created, "skipped": skipped})
	}
}
