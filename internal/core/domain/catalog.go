package domain

// Product is a catalog entry as seen by the core.
type Product struct {
	ID          int64   `json:"id"                    yaml:"id"`
	Name        string  `json:"name"                  yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description"`
	Price       float64 `json:"price"                 yaml:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"    yaml:"image_url"`
	Category    string  `json:"category,omitempty"    yaml:"category"`
	Stock       int     `json:"stock"                 yaml:"stock"`
}

// ImageSource pairs a product with the URL its image is downloaded from.
type ImageSource struct {
	ProductID int64
	ImageURL  string
}

// OrderLine records that an order contained a product.
type OrderLine struct {
	OrderID   int64
	ProductID int64
}

// CartItem is one line of a shopping cart snapshot.
// An empty Category means the product carries no category.
type CartItem struct {
	ProductID int64  `json:"productId"`
	Category  string `json:"category,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// ScoredCandidate is a suggestion candidate with its co-purchase score.
type ScoredCandidate struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}
