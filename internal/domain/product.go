package domain

// Product is one catalog record. ProductID is the business identifier and is
// never reassigned; stock is mutated by order placement.
type Product struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Stock     int     `json:"stock" bson:"stock"`
	Category  string  `json:"category" bson:"category"`
}

// ProductFields lists every product field accepted on creation.
var ProductFields = []string{"product_id", "name", "price", "stock", "category"}

// ProductUpdatable lists the fields a partial update may touch.
var ProductUpdatable = map[string]bool{
	"name":     true,
	"price":    true,
	"stock":    true,
	"category": true,
}
