package dto

// AccountOption is the minimal shape used by adoption dropdowns.
type AccountOption struct {
	ID     uint   `json:"id"`
	NameAr string `json:"name_ar"`
}
