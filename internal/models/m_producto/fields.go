package m_producto

// Field constants for the productos table.
const (
	TableName = "productos"

	ColNameKey        = "name_key"
	ColID             = "id"
	ColName           = "name"
	ColWholesalePrice = "wholesale_price"
	ColRetailPrice    = "retail_price"
	ColCreatedAt      = "created_at"
	ColUpdatedAt      = "updated_at"
)
