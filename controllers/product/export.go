package productControllers

import (
	"net/http"

	"github.com/ARNOB663/Food-Network/catalog"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/products/export
func ExportProductsToExcel(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.GetAllProducts(c.Request.Context())

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Category", "Price", "Stock", "Description", "Image"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Image)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
