package model

// Sort directions shared by list filters.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterAll is the sentinel that disables an equality filter.
const FilterAll = "all"
