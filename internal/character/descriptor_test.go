package character

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDescriptorUnmarshalFoldsClothing(t *testing.T) {
	raw := `{
		"gender": "female",
		"hairStyle": "freehair",
		"hijabColor": "soft beige",
		"clothingTrending": "Puffer Jacket",
		"clothingCultural": "Batik shirt",
		"clothingBottom": "jeans",
		"topColor": "#FF0000",
		"features": "dimples"
	}`
	var d Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if d.HairStyle != HairUncovered {
		t.Fatalf("HairStyle = %q, want %q", d.HairStyle, HairUncovered)
	}
	if got := d.Wardrobe.Top(); got != "Batik shirt" {
		t.Fatalf("Top() = %q, want %q", got, "Batik shirt")
	}
	if len(d.Wardrobe.Tops) != 2 {
		t.Fatalf("len(Tops) = %d, want 2", len(d.Wardrobe.Tops))
	}
	if d.HeadwearColor != "soft beige" || d.DistinguishingFeatures != "dimples" {
		t.Fatalf("unexpected head fields: %+v", d)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	for _, want := range []string{`"clothingCultural":"Batik shirt"`, `"hairStyle":"uncovered"`, `"features":"dimples"`} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("Marshal() = %s, missing %s", out, want)
		}
	}
}

func TestWithTopClearsOtherCategories(t *testing.T) {
	base := Descriptor{Wardrobe: Wardrobe{Tops: []Top{
		{Category: TopCasual, Item: "Hoodie"},
		{Category: TopTrending, Item: "Knit Cardigan"},
	}}}
	next := base.WithTop(TopIslamic, "Jubah / Thobe")
	if got := next.Wardrobe.Top(); got != "Jubah / Thobe" {
		t.Fatalf("Top() = %q, want %q", got, "Jubah / Thobe")
	}
	if len(next.Wardrobe.Tops) != 1 {
		t.Fatalf("len(Tops) = %d, want 1", len(next.Wardrobe.Tops))
	}
	if got := base.Wardrobe.Top(); got != "Hoodie" {
		t.Fatalf("base mutated: Top() = %q", got)
	}
	if cleared := base.WithTop(TopCasual, " "); len(cleared.Wardrobe.Tops) != 0 {
		t.Fatalf("blank item should clear tops, got %+v", cleared.Wardrobe.Tops)
	}
}

func TestMergeOverlaysNonEmpty(t *testing.T) {
	form := Descriptor{
		Name:          "Aminah",
		Gender:        "female",
		HairStyle:     HairHijab,
		DialogueTopic: "kuih raya",
		Wardrobe:      Wardrobe{Tops: []Top{{Category: TopCasual, Item: "T-shirt"}}},
	}
	analysis := Descriptor{
		Gender:   "feminine appearance",
		Age:      "45 years old",
		Wardrobe: Wardrobe{Tops: []Top{{Category: TopIslamic, Item: "Baju Kurung"}}, Bottom: "a pleated skirt"},
	}
	got := Merge(form, analysis)
	if got.Name != "Aminah" || got.DialogueTopic != "kuih raya" {
		t.Fatalf("Merge dropped form-only fields: %+v", got)
	}
	if got.Gender != "feminine appearance" || got.Age != "45 years old" {
		t.Fatalf("Merge did not overlay analysis: %+v", got)
	}
	if top := got.Wardrobe.Top(); top != "Baju Kurung" {
		t.Fatalf("Top() = %q, want %q", top, "Baju Kurung")
	}
	if got.HairStyle != HairHijab {
		t.Fatalf("HairStyle = %q, want %q", got.HairStyle, HairHijab)
	}
}

func TestParseHairStyle(t *testing.T) {
	tests := map[string]HairStyle{
		"freehair":  HairUncovered,
		"Uncovered": HairUncovered,
		" hijab ":   HairHijab,
		"TURBAN":    HairTurban,
		"bald":      HairBald,
		" Bald ":    HairStyle("Bald"),
		"shaved":    HairStyle("shaved"),
		"":          HairStyle(""),
	}
	for in, want := range tests {
		if got := ParseHairStyle(in); got != want {
			t.Fatalf("ParseHairStyle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDescriptorUnmarshalAcceptsFieldNames(t *testing.T) {
	raw := `{
		"gender": "female",
		"age": "28 years old",
		"hairStyle": "hijab",
		"headwearColor": "soft beige",
		"headwearStyleDetail": "Bawal style",
		"clothingIslamik": "Baju Kurung",
		"topColor": "#000000",
		"setting": "a cozy, modern cafe with warm lighting",
		"name": "Alex"
	}`
	var d Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := "A high-quality, detailed photo of a female, 28 years old character. " +
		"They are wearing a soft beige Bawal style. " +
		"For clothing, the character is wearing a Baju Kurung (color code: #000000). " +
		"The scene is a cozy, modern cafe with warm lighting. (Reference name: Alex)"
	if got := Build(d); got != want {
		t.Fatalf("Build() = %q, want %q", got, want)
	}
}

func TestDescriptorUnmarshalFormKeysWinOverAliases(t *testing.T) {
	raw := `{
		"features": "dimples",
		"distinguishingFeatures": "freckles",
		"headwearColor": "navy",
		"clothingStylized": "Blazer"
	}`
	var d Descriptor
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if d.DistinguishingFeatures != "dimples" {
		t.Fatalf("DistinguishingFeatures = %q, want %q", d.DistinguishingFeatures, "dimples")
	}
	if d.HeadwearColor != "navy" {
		t.Fatalf("HeadwearColor = %q, want %q", d.HeadwearColor, "navy")
	}
	if got := d.Wardrobe.Item(TopStylized); got != "Blazer" {
		t.Fatalf("Item(TopStylized) = %q, want %q", got, "Blazer")
	}
}
