package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
)

// GetCategories returns the distinct category tags, each with its products.
func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		type categoryWithProducts struct {
			Name     string      `json:"name"`
			Products interface{} `json:"products"`
		}

		var out []categoryWithProducts
		for _, name := range cat.Categories() {
			out = append(out, categoryWithProducts{
				Name:     name,
				Products: cat.ByCategory(name),
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
