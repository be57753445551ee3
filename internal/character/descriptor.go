package character

import (
	"encoding/json"
	"strings"
)

// HairStyle selects which of the two head field groups of a Descriptor is
// meaningful: loose hair attributes or headwear attributes.
type HairStyle string

const (
	HairUncovered HairStyle = "uncovered"
	HairHijab     HairStyle = "hijab"
	HairTurban    HairStyle = "turban"
	HairBald      HairStyle = "bald"
)

// ParseHairStyle normalizes form input. Only the values that pick a head
// clause fold case: "freehair" and "uncovered" select HairUncovered, "hijab"
// and "turban" select headwear. Anything else, "bald" included, is kept
// verbatim and rendered as written.
func ParseHairStyle(v string) HairStyle {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "freehair", "free hair", string(HairUncovered):
		return HairUncovered
	case string(HairHijab):
		return HairHijab
	case string(HairTurban):
		return HairTurban
	}
	return HairStyle(v)
}

func (h HairStyle) covered() bool {
	return h == HairHijab || h == HairTurban
}

// TopCategory tags a wardrobe top with the form group it was picked from.
type TopCategory string

const (
	TopCasual   TopCategory = "casual"
	TopIslamic  TopCategory = "islamic"
	TopCultural TopCategory = "cultural"
	TopStylized TopCategory = "stylized"
	TopTrending TopCategory = "trending"
)

// TopPriority is the order in which tops win when more than one is set.
var TopPriority = []TopCategory{TopCasual, TopIslamic, TopCultural, TopStylized, TopTrending}

type Top struct {
	Category TopCategory `json:"category"`
	Item     string      `json:"item"`
}

type Wardrobe struct {
	Tops        []Top
	Bottom      string
	TopColor    string
	BottomColor string
	Accessories string
}

// Top returns the highest priority non-empty top, independent of slice order.
func (w Wardrobe) Top() string {
	for _, category := range TopPriority {
		if item := w.Item(category); item != "" {
			return item
		}
	}
	return ""
}

// Item returns the top selected for category, or "".
func (w Wardrobe) Item(category TopCategory) string {
	for _, t := range w.Tops {
		if t.Category != category {
			continue
		}
		if item := clean(t.Item); item != "" {
			return item
		}
	}
	return ""
}

// Descriptor is the character record consumed by the prompt builder. Every
// field is optional.
type Descriptor struct {
	Name      string
	Gender    string
	Age       string
	Ethnicity string
	SkinTone  string

	Height                 string
	Build                  string
	FaceShape              string
	EyeShape               string
	EyeColor               string
	Eyebrows               string
	NoseShape              string
	LipsShape              string
	DistinguishingFeatures string

	HairStyle           HairStyle
	HairType            string
	HairLength          string
	HairColor           string
	HeadwearStyleDetail string
	HeadwearColor       string

	VoicePitch    string
	VoiceTone     string
	SpeakingStyle string
	Language      string

	Wardrobe Wardrobe

	Personality string
	Pose        string
	Setting     string
	PhotoStyle  string

	DialogueTopic string
}

// WithTop returns a copy wearing item as its only top.
func (d Descriptor) WithTop(category TopCategory, item string) Descriptor {
	tops := make([]Top, 0, 1)
	if clean(item) != "" {
		tops = append(tops, Top{Category: category, Item: item})
	}
	d.Wardrobe.Tops = tops
	return d
}

// WithHairStyle returns a copy with the head covering switched.
func (d Descriptor) WithHairStyle(style HairStyle) Descriptor {
	d.HairStyle = ParseHairStyle(string(style))
	return d
}

// Merge overlays the non-empty fields of patch onto base. A patch carrying
// any top replaces the whole top selection.
func Merge(base, patch Descriptor) Descriptor {
	out := base
	out.Name = pick(base.Name, patch.Name)
	out.Gender = pick(base.Gender, patch.Gender)
	out.Age = pick(base.Age, patch.Age)
	out.Ethnicity = pick(base.Ethnicity, patch.Ethnicity)
	out.SkinTone = pick(base.SkinTone, patch.SkinTone)
	out.Height = pick(base.Height, patch.Height)
	out.Build = pick(base.Build, patch.Build)
	out.FaceShape = pick(base.FaceShape, patch.FaceShape)
	out.EyeShape = pick(base.EyeShape, patch.EyeShape)
	out.EyeColor = pick(base.EyeColor, patch.EyeColor)
	out.Eyebrows = pick(base.Eyebrows, patch.Eyebrows)
	out.NoseShape = pick(base.NoseShape, patch.NoseShape)
	out.LipsShape = pick(base.LipsShape, patch.LipsShape)
	out.DistinguishingFeatures = pick(base.DistinguishingFeatures, patch.DistinguishingFeatures)
	out.HairStyle = HairStyle(pick(string(base.HairStyle), string(patch.HairStyle)))
	out.HairType = pick(base.HairType, patch.HairType)
	out.HairLength = pick(base.HairLength, patch.HairLength)
	out.HairColor = pick(base.HairColor, patch.HairColor)
	out.HeadwearStyleDetail = pick(base.HeadwearStyleDetail, patch.HeadwearStyleDetail)
	out.HeadwearColor = pick(base.HeadwearColor, patch.HeadwearColor)
	out.VoicePitch = pick(base.VoicePitch, patch.VoicePitch)
	out.VoiceTone = pick(base.VoiceTone, patch.VoiceTone)
	out.SpeakingStyle = pick(base.SpeakingStyle, patch.SpeakingStyle)
	out.Language = pick(base.Language, patch.Language)
	if patch.Wardrobe.Top() != "" {
		out.Wardrobe.Tops = append([]Top(nil), patch.Wardrobe.Tops...)
	}
	out.Wardrobe.Bottom = pick(base.Wardrobe.Bottom, patch.Wardrobe.Bottom)
	out.Wardrobe.TopColor = pick(base.Wardrobe.TopColor, patch.Wardrobe.TopColor)
	out.Wardrobe.BottomColor = pick(base.Wardrobe.BottomColor, patch.Wardrobe.BottomColor)
	out.Wardrobe.Accessories = pick(base.Wardrobe.Accessories, patch.Wardrobe.Accessories)
	out.Personality = pick(base.Personality, patch.Personality)
	out.Pose = pick(base.Pose, patch.Pose)
	out.Setting = pick(base.Setting, patch.Setting)
	out.PhotoStyle = pick(base.PhotoStyle, patch.PhotoStyle)
	out.DialogueTopic = pick(base.DialogueTopic, patch.DialogueTopic)
	return out
}

func pick(base, patch string) string {
	if clean(patch) != "" {
		return patch
	}
	return base
}

// formRecord is the flat wire shape shared by the studio form and the
// character analysis response.
type formRecord struct {
	Name             string `json:"name,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Age              string `json:"age,omitempty"`
	Ethnicity        string `json:"ethnicity,omitempty"`
	SkinTone         string `json:"skinTone,omitempty"`
	Height           string `json:"height,omitempty"`
	Build            string `json:"build,omitempty"`
	FaceShape        string `json:"faceShape,omitempty"`
	EyeShape         string `json:"eyeShape,omitempty"`
	EyeColor         string `json:"eyeColor,omitempty"`
	Eyebrows         string `json:"eyebrows,omitempty"`
	NoseShape        string `json:"noseShape,omitempty"`
	LipsShape        string `json:"lipsShape,omitempty"`
	Features         string `json:"features,omitempty"`
	HairStyle        string `json:"hairStyle,omitempty"`
	HairType         string `json:"hairType,omitempty"`
	HairLength       string `json:"hairLength,omitempty"`
	HairColor        string `json:"hairColor,omitempty"`
	HijabStyleDetail string `json:"hijabStyleDetail,omitempty"`
	HijabColor       string `json:"hijabColor,omitempty"`
	VoicePitch       string `json:"voicePitch,omitempty"`
	VoiceTone        string `json:"voiceTone,omitempty"`
	SpeakingStyle    string `json:"speakingStyle,omitempty"`
	Language         string `json:"language,omitempty"`
	ClothingCasual   string `json:"clothingCasual,omitempty"`
	ClothingIslamik  string `json:"clothingIslamik,omitempty"`
	ClothingCultural string `json:"clothingCultural,omitempty"`
	ClothingStylo    string `json:"clothingStylo,omitempty"`
	ClothingTrending string `json:"clothingTrending,omitempty"`
	ClothingBottom   string `json:"clothingBottom,omitempty"`
	TopColor         string `json:"topColor,omitempty"`
	BottomColor      string `json:"bottomColor,omitempty"`
	Accessories      string `json:"accessories,omitempty"`
	Personality      string `json:"personality,omitempty"`
	Pose             string `json:"pose,omitempty"`
	Setting          string `json:"setting,omitempty"`
	PhotoStyle       string `json:"photoStyle,omitempty"`
	DialogueTopic    string `json:"dialogueTopic,omitempty"`
}

func (d Descriptor) MarshalJSON() ([]byte, error) {
	w := d.Wardrobe
	return json.Marshal(formRecord{
		Name:             d.Name,
		Gender:           d.Gender,
		Age:              d.Age,
		Ethnicity:        d.Ethnicity,
		SkinTone:         d.SkinTone,
		Height:           d.Height,
		Build:            d.Build,
		FaceShape:        d.FaceShape,
		EyeShape:         d.EyeShape,
		EyeColor:         d.EyeColor,
		Eyebrows:         d.Eyebrows,
		NoseShape:        d.NoseShape,
		LipsShape:        d.LipsShape,
		Features:         d.DistinguishingFeatures,
		HairStyle:        string(d.HairStyle),
		HairType:         d.HairType,
		HairLength:       d.HairLength,
		HairColor:        d.HairColor,
		HijabStyleDetail: d.HeadwearStyleDetail,
		HijabColor:       d.HeadwearColor,
		VoicePitch:       d.VoicePitch,
		VoiceTone:        d.VoiceTone,
		SpeakingStyle:    d.SpeakingStyle,
		Language:         d.Language,
		ClothingCasual:   w.Item(TopCasual),
		ClothingIslamik:  w.Item(TopIslamic),
		ClothingCultural: w.Item(TopCultural),
		ClothingStylo:    w.Item(TopStylized),
		ClothingTrending: w.Item(TopTrending),
		ClothingBottom:   w.Bottom,
		TopColor:         w.TopColor,
		BottomColor:      w.BottomColor,
		Accessories:      w.Accessories,
		Personality:      d.Personality,
		Pose:             d.Pose,
		Setting:          d.Setting,
		PhotoStyle:       d.PhotoStyle,
		DialogueTopic:    d.DialogueTopic,
	})
}

// fieldAliases accepts the descriptor field names for the keys the form
// spells differently. The form keys win when both are sent.
type fieldAliases struct {
	DistinguishingFeatures string `json:"distinguishingFeatures"`
	HeadwearStyleDetail    string `json:"headwearStyleDetail"`
	HeadwearColor          string `json:"headwearColor"`
	ClothingIslamic        string `json:"clothingIslamic"`
	ClothingStylized       string `json:"clothingStylized"`
}

func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var f formRecord
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var alias fieldAliases
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	f.Features = pick(alias.DistinguishingFeatures, f.Features)
	f.HijabStyleDetail = pick(alias.HeadwearStyleDetail, f.HijabStyleDetail)
	f.HijabColor = pick(alias.HeadwearColor, f.HijabColor)
	f.ClothingIslamik = pick(alias.ClothingIslamic, f.ClothingIslamik)
	f.ClothingStylo = pick(alias.ClothingStylized, f.ClothingStylo)
	var tops []Top
	for _, t := range []Top{
		{Category: TopCasual, Item: f.ClothingCasual},
		{Category: TopIslamic, Item: f.ClothingIslamik},
		{Category: TopCultural, Item: f.ClothingCultural},
		{Category: TopStylized, Item: f.ClothingStylo},
		{Category: TopTrending, Item: f.ClothingTrending},
	} {
		if clean(t.Item) != "" {
			tops = append(tops, t)
		}
	}
	*d = Descriptor{
		Name:                   f.Name,
		Gender:                 f.Gender,
		Age:                    f.Age,
		Ethnicity:              f.Ethnicity,
		SkinTone:               f.SkinTone,
		Height:                 f.Height,
		Build:                  f.Build,
		FaceShape:              f.FaceShape,
		EyeShape:               f.EyeShape,
		EyeColor:               f.EyeColor,
		Eyebrows:               f.Eyebrows,
		NoseShape:              f.NoseShape,
		LipsShape:              f.LipsShape,
		DistinguishingFeatures: f.Features,
		HairType:               f.HairType,
		HairLength:             f.HairLength,
		HairColor:              f.HairColor,
		HeadwearStyleDetail:    f.HijabStyleDetail,
		HeadwearColor:          f.HijabColor,
		VoicePitch:             f.VoicePitch,
		VoiceTone:              f.VoiceTone,
		SpeakingStyle:          f.SpeakingStyle,
		Language:               f.Language,
		Wardrobe: Wardrobe{
			Tops:        tops,
			Bottom:      f.ClothingBottom,
			TopColor:    f.TopColor,
			BottomColor: f.BottomColor,
			Accessories: f.Accessories,
		},
		Personality:   f.Personality,
		Pose:          f.Pose,
		Setting:       f.Setting,
		PhotoStyle:    f.PhotoStyle,
		DialogueTopic: f.DialogueTopic,
	}
	if f.HairStyle != "" {
		d.HairStyle = ParseHairStyle(f.HairStyle)
	}
	return nil
}
