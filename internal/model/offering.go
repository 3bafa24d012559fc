package model

// ServiceOffering is an entry of the static service catalog.
type ServiceOffering struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
}
