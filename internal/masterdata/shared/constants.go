package shared

const (
	// Sort directions
	SortAsc  = "asc"
	SortDesc = "desc"

	// Active status values used by ledgers and districts.
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)
