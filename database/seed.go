package database

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"payanam.app/models"
)

type seedActivity struct {
	Name          string
	Description   string
	Category      string
	EstimatedCost float64
	DurationHours float64
	Rating        float64
	Tips          string
}

type seedCity struct {
	Name            string
	State           string
	Description     string
	Category        string
	AvgCostPerDay   float64
	BestTimeToVisit string
	Activities      []seedActivity
}

// SeedCatalog populates the city/activity reference data when the catalog is
// empty. Popularity score is derived from the activity count at seed time.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.City{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[DEBUG] Catalog already seeded with %d cities, skipping\n", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sc := range catalogSeed {
			city := models.City{
				CityID:          uuid.NewString(),
				Name:            sc.Name,
				State:           sc.State,
				Description:     sc.Description,
				Category:        sc.Category,
				PopularScore:    len(sc.Activities),
				AvgCostPerDay:   sc.AvgCostPerDay,
				BestTimeToVisit: sc.BestTimeToVisit,
			}
			if err := tx.Create(&city).Error; err != nil {
				return err
			}

			for _, sa := range sc.Activities {
				activity := models.Activity{
					ActivityID:    uuid.NewString(),
					CityID:        city.CityID,
					Name:          sa.Name,
					Description:   sa.Description,
					Category:      sa.Category,
					EstimatedCost: sa.EstimatedCost,
					DurationHours: sa.DurationHours,
					Rating:        sa.Rating,
					Tips:          sa.Tips,
				}
				if err := tx.Create(&activity).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("[DEBUG] Seeded catalog with %d cities\n", len(catalogSeed))
		return nil
	})
}

var catalogSeed = []seedCity{
	{
		Name:            "Jaipur",
		State:           "Rajasthan",
		Description:     "The Pink City, famous for its royal palaces, forts and vibrant bazaars.",
		Category:        "heritage",
		AvgCostPerDay:   2500,
		BestTimeToVisit: "October to March",
		Activities: []seedActivity{
			{Name: "Amber Fort", Description: "Hilltop fort with mirror palace and courtyards.", Category: "heritage", EstimatedCost: 500, DurationHours: 3, Rating: 4.7, Tips: "Go early to beat the crowds"},
			{Name: "Hawa Mahal", Description: "The Palace of Winds with its honeycomb facade.", Category: "heritage", EstimatedCost: 200, DurationHours: 1, Rating: 4.4, Tips: "Best photos in morning light"},
			{Name: "City Palace", Description: "Royal residence with museums and courtyards.", Category: "heritage", EstimatedCost: 500, DurationHours: 2, Rating: 4.5, Tips: "Royal museum inside"},
			{Name: "Johari Bazaar Shopping", Description: "Traditional market famous for jewelry and textiles.", Category: "shopping", EstimatedCost: 0, DurationHours: 3, Rating: 4.2, Tips: "Bargaining expected"},
		},
	},
	{
		Name:            "Jodhpur",
		State:           "Rajasthan",
		Description:     "The Blue City at the edge of the Thar desert.",
		Category:        "heritage",
		AvgCostPerDay:   2200,
		BestTimeToVisit: "October to March",
		Activities: []seedActivity{
			{Name: "Mehrangarh Fort", Description: "One of India's largest forts, towering over the old city.", Category: "heritage", EstimatedCost: 600, DurationHours: 4, Rating: 4.8, Tips: "Audio guide is worth it"},
			{Name: "Jaswant Thada", Description: "White marble memorial near the fort.", Category: "heritage", EstimatedCost: 30, DurationHours: 1, Rating: 4.3, Tips: ""},
			{Name: "Clock Tower Market", Description: "Bustling market around Ghanta Ghar.", Category: "shopping", EstimatedCost: 0, DurationHours: 2, Rating: 4.1, Tips: "Try the makhaniya lassi"},
		},
	},
	{
		Name:            "Goa",
		State:           "Goa",
		Description:     "Beaches, Portuguese heritage and seafood on the Konkan coast.",
		Category:        "beach",
		AvgCostPerDay:   3000,
		BestTimeToVisit: "November to February",
		Activities: []seedActivity{
			{Name: "Baga Beach", Description: "Popular beach with water sports and shacks.", Category: "relaxation", EstimatedCost: 0, DurationHours: 4, Rating: 4.2, Tips: "Parasailing available"},
			{Name: "Basilica of Bom Jesus", Description: "UNESCO-listed baroque church in Old Goa.", Category: "heritage", EstimatedCost: 0, DurationHours: 1.5, Rating: 4.5, Tips: "Dress modestly"},
			{Name: "Dudhsagar Falls", Description: "Four-tiered waterfall on the Mandovi river.", Category: "adventure", EstimatedCost: 1500, DurationHours: 6, Rating: 4.6, Tips: "Jeep safari from Mollem"},
			{Name: "Anjuna Flea Market", Description: "Wednesday market with handicrafts and food.", Category: "shopping", EstimatedCost: 0, DurationHours: 3, Rating: 4.0, Tips: "Wednesdays only"},
		},
	},
	{
		Name:            "Varanasi",
		State:           "Uttar Pradesh",
		Description:     "One of the world's oldest living cities, on the banks of the Ganges.",
		Category:        "pilgrimage",
		AvgCostPerDay:   1500,
		BestTimeToVisit: "October to March",
		Activities: []seedActivity{
			{Name: "Ganga Aarti at Dashashwamedh Ghat", Description: "Evening fire ritual on the riverfront.", Category: "spiritual", EstimatedCost: 0, DurationHours: 1.5, Rating: 4.8, Tips: "Arrive an hour early for a good spot"},
			{Name: "Sunrise Boat Ride", Description: "Boat ride past the ghats at dawn.", Category: "sightseeing", EstimatedCost: 300, DurationHours: 2, Rating: 4.7, Tips: "Shared boats are cheaper"},
			{Name: "Kashi Vishwanath Temple", Description: "Golden temple dedicated to Shiva.", Category: "spiritual", EstimatedCost: 0, DurationHours: 2, Rating: 4.6, Tips: "Long queues on Mondays"},
		},
	},
	{
		Name:            "Rishikesh",
		State:           "Uttarakhand",
		Description:     "Yoga capital of the world, gateway to the Garhwal Himalayas.",
		Category:        "adventure",
		AvgCostPerDay:   1800,
		BestTimeToVisit: "September to June",
		Activities: []seedActivity{
			{Name: "White Water Rafting", Description: "Rafting on the Ganges from Shivpuri.", Category: "adventure", EstimatedCost: 1000, DurationHours: 3, Rating: 4.7, Tips: "Book grade III+ rapids in season"},
			{Name: "Lakshman Jhula", Description: "Iconic suspension bridge across the Ganges.", Category: "sightseeing", EstimatedCost: 0, DurationHours: 1, Rating: 4.3, Tips: ""},
			{Name: "Beatles Ashram", Description: "Abandoned ashram covered in graffiti art.", Category: "sightseeing", EstimatedCost: 150, DurationHours: 2, Rating: 4.4, Tips: "Carry water"},
			{Name: "Ganga Aarti at Triveni Ghat", Description: "Evening prayer ceremony by the river.", Category: "spiritual", EstimatedCost: 0, DurationHours: 1, Rating: 4.5, Tips: ""},
		},
	},
	{
		Name:            "Munnar",
		State:           "Kerala",
		Description:     "Hill station wrapped in tea plantations in the Western Ghats.",
		Category:        "hill-station",
		AvgCostPerDay:   2000,
		BestTimeToVisit: "September to May",
		Activities: []seedActivity{
			{Name: "Tea Plantation Tour", Description: "Walk through working tea estates with tasting.", Category: "sightseeing", EstimatedCost: 300, DurationHours: 3, Rating: 4.5, Tips: "Mornings are misty and photogenic"},
			{Name: "Eravikulam National Park", Description: "Home of the endangered Nilgiri tahr.", Category: "adventure", EstimatedCost: 200, DurationHours: 3, Rating: 4.4, Tips: "Closed during calving season"},
			{Name: "Kundala Lake Pedal Boating", Description: "Boating on a reservoir above the clouds.", Category: "relaxation", EstimatedCost: 400, DurationHours: 1.5, Rating: 4.1, Tips: ""},
		},
	},
	{
		Name:            "Agra",
		State:           "Uttar Pradesh",
		Description:     "Home of the Taj Mahal and Mughal-era monuments.",
		Category:        "heritage",
		AvgCostPerDay:   2000,
		BestTimeToVisit: "October to March",
		Activities: []seedActivity{
			{Name: "Taj Mahal", Description: "The white marble mausoleum on the Yamuna.", Category: "heritage", EstimatedCost: 1100, DurationHours: 3, Rating: 4.9, Tips: "Sunrise entry avoids the crowds"},
			{Name: "Agra Fort", Description: "Red sandstone fort of the Mughal emperors.", Category: "heritage", EstimatedCost: 650, DurationHours: 2.5, Rating: 4.6, Tips: "Views of the Taj from the ramparts"},
			{Name: "Mehtab Bagh", Description: "Garden across the river facing the Taj.", Category: "sightseeing", EstimatedCost: 300, DurationHours: 1.5, Rating: 4.3, Tips: "Best at sunset"},
		},
	},
	{
		Name:            "Udaipur",
		State:           "Rajasthan",
		Description:     "The City of Lakes with whitewashed palaces.",
		Category:        "heritage",
		AvgCostPerDay:   2400,
		BestTimeToVisit: "September to March",
		Activities: []seedActivity{
			{Name: "City Palace Udaipur", Description: "Palace complex rising over Lake Pichola.", Category: "heritage", EstimatedCost: 400, DurationHours: 3, Rating: 4.6, Tips: ""},
			{Name: "Lake Pichola Boat Ride", Description: "Sunset cruise past Jag Mandir.", Category: "relaxation", EstimatedCost: 700, DurationHours: 1.5, Rating: 4.5, Tips: "Sunset slots sell out"},
			{Name: "Sajjangarh Monsoon Palace", Description: "Hilltop palace with valley views.", Category: "sightseeing", EstimatedCost: 200, DurationHours: 2, Rating: 4.2, Tips: "Go for the sunset"},
		},
	},
}
