package domain

// CatalogSeed is a complete catalog snapshot: products, past orders and open carts.
type CatalogSeed struct {
	Products []Product   `yaml:"products"`
	Orders   []SeedOrder `yaml:"orders"`
	Carts    []SeedCart  `yaml:"carts"`
}

// SeedOrder is a past order listing the products it contained.
type SeedOrder struct {
	ID         int64   `yaml:"id"`
	SessionID  string  `yaml:"session_id"`
	ProductIDs []int64 `yaml:"products"`
}

// SeedCart is the open cart of one session.
type SeedCart struct {
	SessionID string         `yaml:"session_id"`
	Items     []SeedCartItem `yaml:"items"`
}

// SeedCartItem is one line of a SeedCart.
type SeedCartItem struct {
	ProductID int64 `yaml:"product_id"`
	Quantity  int   `yaml:"quantity"`
}
