package catalog

import "github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"

const fallbackImageURL = "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=400&h=300&fit=crop"

// localProducts is the offline fallback catalog, used when API integration is
// disabled or the upstream products endpoint cannot be reached.
func localProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Croissant de Chocolate",
			Description: "Croissant mantecoso y hojaldrado relleno de rico chocolate oscuro",
			Price:       3.99,
			ImageURL:    "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=400&h=300&fit=crop",
			Stock:       20,
			Available:   true,
			Status:      models.ProductStatusActive,
		},
		{
			ID:          2,
			Name:        "Muffin de Arándanos",
			Description: "Muffin húmedo repleto de arándanos frescos con una dulce cobertura crujiente",
			Price:       2.99,
			ImageURL:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
			Stock:       18,
			Available:   true,
			Status:      models.ProductStatusActive,
		},
		{
			ID:          3,
			Name:        "Pan de Masa Madre",
			Description: "Pan de masa madre artesanal con corteza crujiente y sabor ácido",
			Price:       5.99,
			ImageURL:    "https://images.unsplash.com/photo-1586444248902-2f64eddc13df?w=400&h=300&fit=crop",
			Stock:       15,
			Available:   true,
			Status:      models.ProductStatusActive,
		},
		{
			ID:          4,
			Name:        "Rollito de Canela",
			Description: "Rollito de canela suave y pegajoso con glaseado de queso crema",
			Price:       4.49,
			ImageURL:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
			Stock:       22,
			Available:   true,
			Status:      models.ProductStatusActive,
		},
		{
			ID:          5,
			Name:        "Pastel de Manzana",
			Description: "Pastel de manzana clásico con corteza hojaldrada y manzanas con canela calientes",
			Price:       6.99,
			ImageURL:    "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=400&h=300&fit=crop",
			Stock:       13,
			Available:   true,
			Status:      models.ProductStatusActive,
		},
	}
}
