package domain

// Category is a named product grouping. ProductCount is computed by the
// listing query, not stored.
type Category struct {
	ID           int64  `db:"category_id"`
	Name         string `db:"category_name"`
	ImgName      string `db:"img_name"`
	ProductCount int    `db:"product_count"`
}

// Product exists here only as the referencing side of the category
// delete guard; the storefront owns the rest of its shape.
type Product struct {
	ID         int64   `db:"product_id"`
	CategoryID int64   `db:"category_id"`
	Name       string  `db:"name"`
	Price      float64 `db:"price"`
	Active     bool    `db:"active"`
	CreatedAt  string  `db:"created_at"`
}
