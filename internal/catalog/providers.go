package catalog

import "allurra/internal/models"

// defaultProviders is the bundled service catalog
var defaultProviders = []models.ServiceProvider{
	{
		ID:          "sp1",
		Name:        "MC Deji Live",
		Category:    models.CategoryMC,
		Description: "High-energy master of ceremonies for weddings and corporate events",
		ImageURL:    "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800",
		BasePrice:   150000,
		Rating:      4.8,
		Reviews:     124,
		Location:    "Lagos",
	},
	{
		ID:          "sp2",
		Name:        "Amara the MC",
		Category:    models.CategoryMC,
		Description: "Bilingual event host specializing in traditional ceremonies",
		ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
		BasePrice:   100000,
		Rating:      4.6,
		Reviews:     87,
		Location:    "Abuja",
	},
	{
		ID:          "sp3",
		Name:        "Kenny Crackups",
		Category:    models.CategoryComedian,
		Description: "Stand-up comedian with a decade of corporate and social gigs",
		ImageURL:    "https://images.unsplash.com/photo-1527224857830-43a7acc85260?w=800",
		BasePrice:   200000,
		Rating:      4.9,
		Reviews:     210,
		Location:    "Lagos",
	},
	{
		ID:          "sp4",
		Name:        "Taste of Naija Catering",
		Category:    models.CategoryCatering,
		Description: "Full-service catering for events from 50 to 2000 guests",
		ImageURL:    "https://images.unsplash.com/photo-1555244162-803834f70033?w=800",
		BasePrice:   500000,
		Rating:      4.7,
		Reviews:     156,
		Location:    "Lagos",
		Portfolio: []models.PortfolioItem{
			{ID: "pf1", URL: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800", Type: "image"},
		},
	},
	{
		ID:          "sp5",
		Name:        "Golden Spoon Kitchens",
		Category:    models.CategoryCatering,
		Description: "Continental and local cuisine with on-site chef stations",
		ImageURL:    "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=800",
		BasePrice:   350000,
		Rating:      4.5,
		Reviews:     92,
		Location:    "Port Harcourt",
	},
	{
		ID:          "sp6",
		Name:        "Lens & Light Studios",
		Category:    models.CategoryPhotography,
		Description: "Award-winning event photography and same-day highlights",
		ImageURL:    "https://images.unsplash.com/photo-1452587925148-ce544e77e70d?w=800",
		BasePrice:   250000,
		Rating:      4.9,
		Reviews:     301,
		Location:    "Lagos",
		Portfolio: []models.PortfolioItem{
			{ID: "pf2", URL: "https://images.unsplash.com/photo-1519741497674-611481863552?w=800", Type: "image"},
			{ID: "pf3", URL: "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800", Type: "image"},
		},
	},
	{
		ID:          "sp7",
		Name:        "Everly Decor Co.",
		Category:    models.CategoryDecoration,
		Description: "Bespoke stage, floral and lighting design for premium events",
		ImageURL:    "https://images.unsplash.com/photo-1478146896981-b80fe463b330?w=800",
		BasePrice:   400000,
		Rating:      4.6,
		Reviews:     78,
		Location:    "Abuja",
	},
	{
		ID:          "sp8",
		Name:        "Royal Touch Decorations",
		Category:    models.CategoryDecoration,
		Description: "Traditional and modern decor packages with full setup crew",
		ImageURL:    "https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=800",
		BasePrice:   300000,
		Rating:      4.4,
		Reviews:     63,
		Location:    "Lagos",
	},
}
