package productcontroller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	"github.com/defaulths/E-commerceWeb-GERALDO/models"
)

// GetProducts returns the catalog, optionally filtered and sorted.
// Query params: category, search, sort_by (id|name|price|rating), order (asc|desc).
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		category := c.Query("category")
		search := strings.ToLower(c.Query("search"))
		sortBy := c.DefaultQuery("sort_by", "id")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		// 2️⃣ Category filter
		products := cat.ByCategory(category)

		// 3️⃣ Search filter over name and description
		if search != "" {
			var matched []models.Product
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Name), search) ||
					strings.Contains(strings.ToLower(p.Description), search) {
					matched = append(matched, p)
				}
			}
			products = matched
		}

		// 4️⃣ Sorting
		less, ok := lessFunc(sortBy, products)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}
		sort.SliceStable(products, less)
		if sortOrder == "desc" {
			reverse(products)
		}

		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func lessFunc(sortBy string, products []models.Product) (func(i, j int) bool, bool) {
	switch sortBy {
	case "id":
		return func(i, j int) bool { return products[i].ID < products[j].ID }, true
	case "name":
		return func(i, j int) bool { return products[i].Name < products[j].Name }, true
	case "price":
		return func(i, j int) bool { return products[i].Price < products[j].Price }, true
	case "rating":
		return func(i, j int) bool { return products[i].Rating < products[j].Rating }, true
	default:
		return nil, false
	}
}

func reverse(products []models.Product) {
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}
