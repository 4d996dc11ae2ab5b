package entity

// Category is a node in the catalog's category tree. ParentID is nil for root
// categories. Nothing enforces acyclicity beyond the write paths only ever
// attaching to an existing node.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parent_id,omitempty"`
	IsActive bool   `json:"is_active"`
}
