package shared

// ListFilters represents the optional query filters the reference-data list
// endpoints accept. The console filters client-side, so every field is
// optional and the zero value means "return everything".
type ListFilters struct {
	Search  string
	State   string
	Status  string
	SortBy  string
	SortDir string
}
