package catalog

import "errors"

var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrUnknownCategory = errors.New("unknown category")
)

// CategoryAll matches every product.
const CategoryAll = "all"

// Product is one catalog entry.
type Product struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

var categories = []string{CategoryAll, "cleanser", "serum", "moisturizer", "sunscreen"}

var products = []Product{
	{Name: "Vitamin C Serum", Price: "₹499", Description: "Brightens skin & reduces dark spots.", Tags: []string{"Glow", "Serum"}, Category: "serum"},
	{Name: "Hydrating Moisturizer", Price: "₹399", Description: "Deep hydration for dry & sensitive skin.", Tags: []string{"Hydration", "Moisturizer"}, Category: "moisturizer"},
	{Name: "Gentle Cleanser", Price: "₹299", Description: "Removes dirt without stripping skin.", Tags: []string{"Daily", "Cleanser"}, Category: "cleanser"},
	{Name: "Sunscreen SPF 50", Price: "₹599", Description: "Protects against UV damage & tanning.", Tags: []string{"Protection", "Sunscreen"}, Category: "sunscreen"},
	{Name: "Niacinamide Serum", Price: "₹549", Description: "Controls oil, reduces acne marks & pores.", Tags: []string{"Acne", "Serum"}, Category: "serum"},
	{Name: "Night Repair Cream", Price: "₹699", Description: "Repairs skin barrier while you sleep.", Tags: []string{"Night", "Moisturizer"}, Category: "moisturizer"},
	{Name: "Salicylic Acid Wash", Price: "₹349", Description: "Deep pore cleansing for acne-prone skin.", Tags: []string{"Acne", "Cleanser"}, Category: "cleanser"},
	{Name: "Retinol Night Serum", Price: "₹799", Description: "Anti-aging powerhouse for fine lines.", Tags: []string{"Anti-aging", "Serum"}, Category: "serum"},
	{Name: "Collagen Boost Cream", Price: "₹899", Description: "Firms skin & reduces sagging with peptides.", Tags: []string{"Anti-aging", "Moisturizer"}, Category: "moisturizer"},
	{Name: "Hyaluronic Acid Serum", Price: "₹449", Description: "Plumps skin & reduces fine lines instantly.", Tags: []string{"Hydration", "Serum"}, Category: "serum"},
	{Name: "Anti-Aging Eye Cream", Price: "₹649", Description: "Targets crow's feet, dark circles & puffiness.", Tags: []string{"Anti-aging", "Eye Care"}, Category: "moisturizer"},
}

// Categories returns the filter values, starting with "all".
func Categories() []string {
	return append([]string(nil), categories...)
}

func isCategory(v string) bool {
	for _, c := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func (p Product) clone() Product {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
