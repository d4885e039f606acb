package domain

// Customer is one directory record. CustomerID is immutable after creation.
type Customer struct {
	CustomerID string `json:"customer_id" bson:"customer_id"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone" bson:"phone"`
	Address    string `json:"address" bson:"address"`
}

// CustomerFields lists every customer field accepted on creation.
var CustomerFields = []string{"customer_id", "name", "email", "phone", "address"}

// CustomerUpdatable lists the fields a partial update may touch.
var CustomerUpdatable = map[string]bool{
	"name":    true,
	"email":   true,
	"phone":   true,
	"address": true,
}
