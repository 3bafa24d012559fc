package service

import "pawfectfind/internal/model"

// serviceCatalog is the static list of offered service categories.
var serviceCatalog = []model.ServiceOffering{
	{
		ID:          1,
		Name:        "Premium Pet Grooming",
		Description: "Professional grooming services with certified groomers across Singapore.",
		Price:       "From $45",
		Features:    []string{"Full wash & dry service", "Nail trimming & ear cleaning", "Professional styling"},
	},
	{
		ID:          2,
		Name:        "Reliable Pet Sitting",
		Description: "Experienced pet sitters for day care or overnight stays in your home.",
		Price:       "From $30/day",
		Features:    []string{"Background-checked sitters", "Daily photo updates", "Exercise & playtime"},
	},
	{
		ID:          3,
		Name:        "Premium Pet Hotels",
		Description: "5-star boarding facilities with round-the-clock care and supervision.",
		Price:       "From $60/night",
		Features:    []string{"Climate-controlled suites", "24/7 veterinary support", "Daily exercise programs"},
	},
	{
		ID:          4,
		Name:        "Professional Pet Training",
		Description: "Certified trainers for obedience training and behavioral modification.",
		Price:       "From $75/session",
		Features:    []string{"Obedience training", "Puppy classes", "Behavioral consultation"},
	},
}

// ServiceCatalog returns the static service offerings.
func ServiceCatalog() []model.ServiceOffering {
	return serviceCatalog
}
