package domain

// Category is a top-level grouping of products. The id is assigned by the
// database on create and stable afterwards.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
