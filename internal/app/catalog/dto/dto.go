package dto

// ProductDTO contains product fields returned by read queries.
// Prices come back as float64 straight from the FLOAT64 columns; display
// rounding happens in the layers above. Timestamps use *string (RFC3339)
// to mirror how they come from Spanner.
type ProductDTO struct {
	Name      string
	Wholesale float64
	Retail    float64
	CreatedAt *string
	UpdatedAt *string
}
