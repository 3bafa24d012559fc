package model

// Vendor is a service provider listed in the marketplace. Services is
// persisted as a JSON array in a text column and parsed leniently on read.
type Vendor struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Price    string   `json:"price"`
	Services []string `json:"services"`
}

// VendorAvailability lists the open time slots of a vendor on a given date.
// The JSON field name availableSlots is kept for frontend compatibility.
type VendorAvailability struct {
	VendorID       int      `json:"vendor_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}
