package entity

// Product is a catalog entry owned by a supplier. Rating is derived from the
// active ratings ledger and is never authoritative; 0.0 is the sentinel for
// "no active ratings", it is never left null or stale.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	IsActive    bool    `json:"is_active"`
	CategoryID  int64   `json:"category_id"`
	SupplierID  int64   `json:"supplier_id"`
}
