package types

import "encoding/json"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Plant is a catalog entry. Name, description and benefits come pre-translated.
type Plant struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	NameGujarati        string     `json:"nameGujarati"`
	Image               string     `json:"image"`
	Images              []string   `json:"images,omitempty"`
	Description         string     `json:"description"`
	DescriptionGujarati string     `json:"descriptionGujarati"`
	Category            string     `json:"category"`
	Tag                 string     `json:"tag"`
	Benefits            []string   `json:"benefits"`
	BenefitsGujarati    []string   `json:"benefitsGujarati"`
	InStock             bool       `json:"inStock"`
	Difficulty          Difficulty `json:"difficulty"`
}

// UnmarshalJSON accepts backend records keyed by "_id". An explicit "id" wins.
func (p *Plant) UnmarshalJSON(b []byte) error {
	type plant Plant
	var raw struct {
		plant
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Plant(raw.plant)
	if p.ID == "" {
		p.ID = raw.MongoID
	}
	return nil
}

func (p Plant) DisplayName(lang Language) string {
	return Pick(lang, p.Name, p.NameGujarati)
}

func (p Plant) DisplayDescription(lang Language) string {
	return Pick(lang, p.Description, p.DescriptionGujarati)
}

func (p Plant) DisplayBenefits(lang Language) []string {
	if lang == Gujarati && len(p.BenefitsGujarati) > 0 {
		return p.BenefitsGujarati
	}
	return p.Benefits
}

// APICategory is the category shape served by the backend.
type APICategory struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	NameGujarati string `json:"nameGujarati,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

// Category is the normalized chip shown above the catalog.
type Category struct {
	Key      string `json:"key"`
	English  string `json:"english"`
	Gujarati string `json:"gujarati"`
	Icon     string `json:"icon,omitempty"`
}

const AllCategoryKey = "All"

// AllCategory is always the first chip.
var AllCategory = Category{Key: AllCategoryKey, English: "All", Gujarati: "બધા"}

func (c Category) Label(lang Language) string {
	return Pick(lang, c.English, c.Gujarati)
}

// CartItem pairs a plant with a positive quantity.
type CartItem struct {
	Plant    Plant `json:"plant"`
	Quantity int   `json:"quantity"`
}
