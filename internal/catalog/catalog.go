// Package catalog holds the option tables the studio forms offer and the
// analysis schemas constrain answers to.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Group struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Options []Option `json:"options"`
}

// Label renders a display label for a raw option value.
func Label(value string) string {
	return cases.Title(language.English).String(strings.TrimSpace(value))
}

func values(vs ...string) []Option {
	out := make([]Option, len(vs))
	for i, v := range vs {
		out[i] = Option{Value: v, Label: Label(v)}
	}
	return out
}

func group(key string, opts []Option) Group {
	return Group{Key: key, Title: Label(strings.ReplaceAll(key, "_", " ")), Options: opts}
}

// Values lists the raw values of opts.
func Values(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

// Quoted formats opts as 'a', 'b', 'c' for inclusion in model instructions.
func Quoted(opts []Option) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = "'" + o.Value + "'"
	}
	return strings.Join(parts, ", ")
}

// Contains reports whether value is one of opts.
func Contains(opts []Option, value string) bool {
	for _, o := range opts {
		if strings.EqualFold(o.Value, strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}

// Groups returns every form option group in display order.
func Groups() []Group {
	return []Group{
		group("gender", Gender),
		group("ethnicity", Ethnicity),
		group("skin_tone", SkinTone),
		group("height", Height),
		group("body_build", BodyBuild),
		group("face_shape", FaceShape),
		group("eye_shape", EyeShape),
		group("eye_color", EyeColor),
		group("eyebrows", Eyebrows),
		group("nose_shape", NoseShape),
		group("lip_shape", LipShape),
		group("hair_style", HairStyle),
		group("hijab_style_detail", HijabStyleDetail),
		group("hair_type", HairType),
		group("hair_length", HairLength),
		group("voice_pitch", VoicePitch),
		group("voice_tone", VoiceTone),
		group("speaking_style", SpeakingStyle),
		group("language", Language),
		group("clothing_casual", ClothingCasual),
		group("clothing_islamic", ClothingIslamic),
		group("clothing_cultural", ClothingCultural),
		group("clothing_stylized", ClothingStylized),
		group("clothing_trending", ClothingTrending),
		group("clothing_bottom", ClothingBottom),
		group("color", Colors),
		group("personality", Personality),
		group("pose", Pose),
		group("setting", Setting),
		group("photo_style", PhotoStyle),
		group("visual_style", VisualStyle),
		group("genre", Genre),
		group("product_action", ProductAction),
		group("product_action_style", ProductActionStyle),
		group("product_angle", ProductAngle),
		group("product_background_style", ProductBackgroundStyle),
	}
}

// Find returns the group registered under key.
func Find(key string) (Group, bool) {
	for _, g := range Groups() {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}
