package models

// Product is a menu item shown in the kiosk dropdowns and the company info
// blurb.
type Product struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Category is a feedback category name.
type Category struct {
	Name string `bson:"name" json:"name"`
}
