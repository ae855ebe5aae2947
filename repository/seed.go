package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/darshan2121/PlantApp/models"
	"github.com/rs/zerolog"
)

var seedCategories = []models.Category{
	{ID: "Medicinal", Name: "Medicinal", NameGujarati: "ઔષધીય"},
	{ID: "Flowering", Name: "Flowering", NameGujarati: "ફૂલવાળા"},
	{ID: "Herbs", Name: "Herbs", NameGujarati: "વનસ્પતિ"},
}

var seedPlants = []models.Plant{
	{
		Name:                "Tulsi",
		NameGujarati:        "તુલસી",
		CategoryID:          "Medicinal",
		Tag:                 "holy basil",
		Description:         "Sacred basil that grows well in sunny balconies.",
		DescriptionGujarati: "તડકાવાળી બાલ્કનીમાં સારી રીતે ઉગતી પવિત્ર તુલસી.",
		Benefits:            []string{"Purifies air", "Soothes cough"},
		BenefitsGujarati:    []string{"હવા શુદ્ધ કરે છે", "ઉધરસમાં રાહત"},
		Difficulty:          "Easy",
		Stock:               50,
	},
	{
		Name:                "Neem",
		NameGujarati:        "લીમડો",
		CategoryID:          "Medicinal",
		Tag:                 "tree",
		Description:         "Hardy shade tree with antiseptic leaves.",
		DescriptionGujarati: "જંતુનાશક પાંદડાવાળું મજબૂત છાંયડાનું વૃક્ષ.",
		Benefits:            []string{"Natural pest repellent"},
		BenefitsGujarati:    []string{"કુદરતી જંતુ નિવારક"},
		Difficulty:          "Medium",
		Stock:               20,
	},
	{
		Name:                "Hibiscus",
		NameGujarati:        "જાસૂદ",
		CategoryID:          "Flowering",
		Tag:                 "flower",
		Description:         "Bright red flowers through most of the year.",
		DescriptionGujarati: "આખું વર્ષ તેજસ્વી લાલ ફૂલો.",
		Benefits:            []string{"Attracts pollinators"},
		BenefitsGujarati:    []string{"પરાગવાહકોને આકર્ષે છે"},
		Difficulty:          "Medium",
		Stock:               30,
	},
	{
		Name:                "Mint",
		NameGujarati:        "ફુદીનો",
		CategoryID:          "Herbs",
		Tag:                 "kitchen",
		Description:         "Fast growing kitchen herb for pots.",
		DescriptionGujarati: "કુંડા માટે ઝડપથી ઉગતી રસોડાની વનસ્પતિ.",
		Benefits:            []string{"Aids digestion"},
		BenefitsGujarati:    []string{"પાચનમાં મદદ કરે છે"},
		Difficulty:          "Easy",
		Stock:               0,
	},
}

// Seed fills an empty catalog with the starter categories and plants.
// A catalog that already has plants is left alone.
func Seed(ctx context.Context, store Store, log zerolog.Logger) error {
	plants, err := store.ListPlants(ctx)
	if err != nil {
		return fmt.Errorf("seed: list plants: %w", err)
	}
	if len(plants) > 0 {
		return nil
	}

	for _, c := range seedCategories {
		c := c
		if err := store.CreateCategory(ctx, &c); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed: category %s: %w", c.Name, err)
		}
	}
	for _, p := range seedPlants {
		p := p
		p.Benefits = append([]string(nil), p.Benefits...)
		p.BenefitsGujarati = append([]string(nil), p.BenefitsGujarati...)
		p.SyncStock()
		if err := store.SavePlant(ctx, &p); err != nil {
			return fmt.Errorf("seed: plant %s: %w", p.Name, err)
		}
	}
	log.Info().Int("categories", len(seedCategories)).Int("plants", len(seedPlants)).Msg("catalog seeded")
	return nil
}
