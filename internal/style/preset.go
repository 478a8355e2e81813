package style

// Category - категория художественного стиля.
type Category string

const (
	CategoryArtMovements Category = "art_movements"
	CategoryPhotography  Category = "photography"
	CategoryIllustration Category = "illustration"
	CategoryRender3D     Category = "3d_render"
	CategoryExperimental Category = "experimental"
	CategoryCultural     Category = "cultural"
	CategoryHistorical   Category = "historical"
	CategoryGenre        Category = "genre"
)

// Categories возвращает все категории в фиксированном порядке.
func Categories() []Category {
	return []Category{
		CategoryArtMovements,
		CategoryPhotography,
		CategoryIllustration,
		CategoryRender3D,
		CategoryExperimental,
		CategoryCultural,
		CategoryHistorical,
		CategoryGenre,
	}
}

// Preset - предустановка художественного стиля. Prefix добавляется перед
// промптом, Suffix - после (через запятую его элементы дозируются по
// интенсивности).
type Preset struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          Category `json:"category"`
	Description       string   `json:"description"`
	Prefix            string   `json:"prompt_prefix,omitempty"`
	Suffix            string   `json:"prompt_suffix,omitempty"`
	NegativeAdditions []string `json:"negative_additions,omitempty"`
	RecommendedModels []string `json:"recommended_models,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// Summary - краткое описание стиля для API-ответов.
type Summary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (p Preset) Summary() Summary {
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Tags:        p.Tags,
	}
}
