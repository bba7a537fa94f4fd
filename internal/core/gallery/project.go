// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package gallery

// Category classifies a project by the kind of space it was built for.
type Category string

const (
	CategoryResidential Category = "주거"
	CategoryCommercial  Category = "상업"
	CategoryOffice      Category = "사무"
	CategoryLodging     Category = "숙박"
	CategoryFurniture   Category = "가구"
)

// CategoryAll is the pseudo-category accepted by the listing filter. It is
// never stored on a project.
const CategoryAll = "전체"

// Categories returns every storable category in display order.
func Categories() []Category {
	return []Category{
		CategoryResidential,
		CategoryCommercial,
		CategoryOffice,
		CategoryLodging,
		CategoryFurniture,
	}
}

// Space groups the photographs of one room or area within a project.
type Space struct {
	Name        string   `json:"name"`
	Images      []string `json:"images"`
	Description string   `json:"description,omitempty"`
}

// Comparison pairs a day and a night shot of the same vantage point.
type Comparison struct {
	Title string `json:"title"`
	Day   string `json:"day"`
	Night string `json:"night"`
}

// Project is a portfolio entry in the gallery. The JSON field names are the
// published API contract and match the payloads stored in the override table.
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    Category     `json:"category"`
	SubCategory string       `json:"subCategory"`
	Area        string       `json:"area"`
	Location    string       `json:"location"`
	Duration    string       `json:"duration"`
	Scope       string       `json:"scope"`
	Keywords    []string     `json:"keywords"`
	Thumbnail   string       `json:"thumbnail"`
	HeroImage   string       `json:"heroImage"`
	Spaces      []Space      `json:"spaces"`
	Details     []string     `json:"details"`
	Comparisons []Comparison `json:"comparisons,omitempty"`
	Description string       `json:"description"`
}

// Validation field identifiers.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldCategory  = "category"
	FieldThumbnail = "thumbnail"
	FieldSpaces    = "spaces"
)
