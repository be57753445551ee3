package catalog

import (
	"fmt"
	"strings"
)

type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Palette is a named set of swatches: a browsing category or a curated
// combination.
type Palette struct {
	Name   string   `json:"name"`
	Colors []Swatch `json:"colors"`
}

// swatches pairs up name, hex, name, hex, ...
func swatches(pairs ...string) []Swatch {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("catalog: odd swatch list %v", pairs))
	}
	out := make([]Swatch, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Swatch{Name: pairs[i], Hex: pairs[i+1]})
	}
	return out
}

var palettes = []Palette{
	{Name: "Neutrals & Earth Tones", Colors: swatches(
		"Alabaster", "#F2F0E6", "Ivory", "#FFFFF0", "Cloud White", "#F0F0F0", "Silver Sand", "#C4C4C4",
		"Stone", "#888C8D", "Dove Gray", "#6D6D6D", "Slate Gray", "#708090", "Charcoal", "#36454F",
		"Onyx", "#353839", "Beige", "#F5F5DC", "Khaki", "#C3B091", "Taupe", "#483C32",
		"Terracotta", "#E2725B", "Burnt Sienna", "#E97451", "Espresso", "#3B2F2F",
	)},
	{Name: "Luxury & Royal", Colors: swatches(
		"Royal Gold", "#FFD700", "Deep Purple", "#36013F", "Emerald", "#50C878",
		"Ruby Red", "#9B111E", "Sapphire Blue", "#0F52BA", "Black Pearl", "#1E272C",
	)},
	{Name: "Wes Anderson Style", Colors: swatches(
		"Grand Budapest Pink", "#F5A9B8", "Mendl's Blue", "#9BC4E2", "Yellow Submarine", "#F5D061",
		"Cheeky Red", "#E24E42", "Olive Drab", "#6B8E23",
	)},
	{Name: "Vibrant & Bold", Colors: swatches(
		"Fiery Red", "#D92027", "Crimson", "#DC143C", "Hot Pink", "#FF69B4", "Magenta", "#FF00FF",
		"Electric Orange", "#FF5F00", "Sunshine Yellow", "#FFDF00", "Lime Green", "#32CD32",
		"Chartreuse", "#DFFF00", "Emerald Green", "#50C878", "Teal", "#008080", "Turquoise", "#40E0D0",
		"Cobalt Blue", "#0047AB", "Royal Purple", "#7851A9", "Cyber Grape", "#58427C",
	)},
	{Name: "Pastels & Soft Tones", Colors: swatches(
		"Baby Pink", "#F4C2C2", "Peach", "#FFE5B4", "Light Coral", "#F08080", "Coral", "#FF7F50",
		"Pale Yellow", "#FFFFE0", "Cream", "#FFFDD0", "Mint Green", "#98FF98", "Seafoam", "#93E9BE",
		"Sage", "#BCB88A", "Powder Blue", "#B0E0E6", "Sky Blue", "#87CEEB", "Periwinkle", "#CCCCFF",
		"Lavender", "#E6E6FA", "Lilac", "#C8A2C8",
	)},
	{Name: "Deep & Moody", Colors: swatches(
		"Oxblood", "#4A0000", "Maroon", "#800000", "Burgundy", "#800020", "Aubergine", "#3B0910",
		"Plum", "#DDA0DD", "Indigo", "#4B0082", "Midnight Blue", "#191970", "Dark Sapphire", "#082567",
		"Prussian Blue", "#003153", "Deep Teal", "#005960", "Forest Green", "#228B22",
		"Racing Green", "#004225", "Gunmetal", "#2A3439", "Charcoal Gray", "#36454F",
	)},
	{Name: "Metallics", Colors: swatches(
		"Classic Gold", "#FFD700", "Rose Gold", "#B76E79", "Polished Silver", "#C0C0C0",
		"Antique Bronze", "#665D1E", "Copper", "#B87333",
	)},
}

var combinations = []Palette{
	{Name: "Ocean Sunset", Colors: swatches(
		"Deep Sapphire", "#082567", "Cobalt Blue", "#0047AB", "Coral", "#FF7F50", "Peach", "#FFE5B4", "Sunshine Yellow", "#FFDF00")},
	{Name: "Earthy Modern", Colors: swatches(
		"Charcoal", "#36454F", "Sage", "#BCB88A", "Terracotta", "#E2725B", "Beige", "#F5F5DC", "Ivory", "#FFFFF0")},
	{Name: "Black & Gold Luxury", Colors: swatches(
		"Matte Black", "#1B1B1B", "Metallic Gold", "#D4AF37", "Charcoal", "#36454F", "White", "#FFFFFF")},
	{Name: "Tiffany Dream", Colors: swatches(
		"Tiffany Blue", "#0ABAB5", "White", "#FFFFFF", "Silver", "#C0C0C0")},
	{Name: "Corporate Cool", Colors: swatches(
		"Slate Gray", "#708090", "Prussian Blue", "#003153", "Silver Sand", "#C4C4C4", "Cloud White", "#F0F0F0")},
	{Name: "Retro Groove", Colors: swatches(
		"Burnt Sienna", "#E97451", "Sunshine Yellow", "#FFDF00", "Teal", "#008080", "Espresso", "#3B2F2F")},
	{Name: "Playful Pastel", Colors: swatches(
		"Mint Green", "#98FF98", "Baby Pink", "#F4C2C2", "Periwinkle", "#CCCCFF", "Pale Yellow", "#FFFFE0", "Sky Blue", "#87CEEB")},
	{Name: "Luxurious Velvet", Colors: swatches(
		"Burgundy", "#800020", "Forest Green", "#228B22", "Royal Purple", "#7851A9", "Classic Gold", "#FFD700")},
	{Name: "Cyberpunk Neon", Colors: swatches(
		"Onyx", "#353839", "Magenta", "#FF00FF", "Turquoise", "#40E0D0", "Cyber Grape", "#58427C", "Lime Green", "#32CD32")},
	{Name: "Autumn Forest", Colors: swatches(
		"Maroon", "#800000", "Electric Orange", "#FF5F00", "Khaki", "#C3B091", "Racing Green", "#004225")},
}

// Palettes returns the browsing categories of the color palette tab.
func Palettes() []Palette { return palettes }

// Combinations returns the curated multi-color schemes.
func Combinations() []Palette { return combinations }

// ColorName resolves a hex value from the form color picker to a display
// name. Unknown values are returned unchanged.
func ColorName(hex string) string {
	for _, o := range Colors {
		if equalHex(o.Value, hex) {
			return o.Label
		}
	}
	for _, p := range palettes {
		for _, s := range p.Colors {
			if equalHex(s.Hex, hex) {
				return s.Name
			}
		}
	}
	return hex
}

func equalHex(a, b string) bool {
	b = strings.TrimSpace(b)
	return strings.HasPrefix(b, "#") && strings.EqualFold(a, b)
}
