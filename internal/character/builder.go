package character

import (
	"fmt"
	"strings"
)

// NamePlacement controls where the reference name suffix lands.
type NamePlacement int

const (
	// NameAfterDialogue appends the name after the dialogue request, which is
	// the order the studio has always produced.
	NameAfterDialogue NamePlacement = iota
	// NameAfterDescription keeps the name inside the descriptive paragraph.
	NameAfterDescription
)

// ParseNamePlacement accepts "after_dialogue" and "after_description".
func ParseNamePlacement(v string) NamePlacement {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "after_description", "description":
		return NameAfterDescription
	default:
		return NameAfterDialogue
	}
}

func (p NamePlacement) String() string {
	if p == NameAfterDescription {
		return "after_description"
	}
	return "after_dialogue"
}

const (
	photoLead     = "A high-quality, detailed photo of "
	dialogueBreak = "\n\n"
)

// Builder turns a Descriptor into a single text-to-image prompt. The zero
// value is ready to use.
type Builder struct {
	NamePlacement NamePlacement
}

// Build renders d with the default Builder.
func Build(d Descriptor) string {
	return Builder{}.Build(d)
}

// Build assembles the ordered clauses for d. It never fails: empty fields are
// omitted and the result is always a non-empty, normalized string.
func (b Builder) Build(d Descriptor) string {
	clauses := []string{openingClause(d)}
	for _, clause := range []string{
		headClause(d),
		voiceClause(d),
		wardrobeClause(d.Wardrobe),
		accessoriesClause(d.Wardrobe),
		poseClause(d),
		settingClause(d),
		photoStyleClause(d),
	} {
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}
	paragraph := normalize(strings.Join(clauses, " "))
	return b.place(paragraph, dialogueBlock(d.DialogueTopic), nameSuffix(d.Name))
}

func (b Builder) place(paragraph, dialogue, name string) string {
	if name != "" && (b.NamePlacement == NameAfterDescription || dialogue == "") {
		paragraph += " " + name
		name = ""
	}
	if dialogue == "" {
		return paragraph
	}
	out := paragraph + dialogueBreak + dialogue
	if name != "" {
		out += " " + name
	}
	return out
}

func openingClause(d Descriptor) string {
	core := nonEmpty(d.Gender, d.Age, d.Ethnicity, d.SkinTone, d.Build, d.Height,
		d.FaceShape, d.EyeShape, d.EyeColor, d.Eyebrows, d.NoseShape, d.LipsShape)
	s := photoLead + "a character"
	if len(core) > 0 {
		s = photoLead + "a " + strings.Join(core, ", ") + " character"
	}
	if features := clean(d.DistinguishingFeatures); features != "" {
		s += ", with " + features
	}
	return s + "."
}

func headClause(d Descriptor) string {
	style := ParseHairStyle(string(d.HairStyle))
	switch {
	case style == HairUncovered:
		if parts := nonEmpty(d.HairLength, d.HairType, d.HairColor); len(parts) > 0 {
			return fmt.Sprintf("They have %s hair.", strings.Join(parts, " "))
		}
	case style.covered():
		detail := clean(d.HeadwearStyleDetail)
		if detail == "" {
			detail = string(style)
		}
		return fmt.Sprintf("They are wearing a %s.", strings.Join(nonEmpty(d.HeadwearColor, detail), " "))
	case style != "":
		return fmt.Sprintf("They are %s.", style)
	}
	return ""
}

func voiceClause(d Descriptor) string {
	var fragments []string
	if voice := nonEmpty(article(d.VoicePitch), article(d.VoiceTone)); len(voice) > 0 {
		fragments = append(fragments, "has "+strings.Join(voice, " and "))
	}
	if style := clean(d.SpeakingStyle); style != "" {
		fragments = append(fragments, style)
	}
	if lang := clean(d.Language); lang != "" {
		fragments = append(fragments, "speaks in "+lang)
	}
	if len(fragments) == 0 {
		return ""
	}
	return "Their voice and speech pattern is distinct: the character " + strings.Join(fragments, ", ") + "."
}

func wardrobeClause(w Wardrobe) string {
	top := withColor(w.Top(), w.TopColor)
	bottom := withColor(clean(w.Bottom), w.BottomColor)
	var wearing string
	switch {
	case top != "" && bottom != "":
		wearing = "wearing a " + top + " with " + bottom
	case top != "":
		wearing = "wearing a " + top
	case bottom != "":
		wearing = "wearing " + bottom
	default:
		return ""
	}
	return "For clothing, the character is " + wearing + "."
}

func accessoriesClause(w Wardrobe) string {
	if acc := clean(w.Accessories); acc != "" {
		return "They are accessorized with " + acc + "."
	}
	return ""
}

func poseClause(d Descriptor) string {
	personality := clean(d.Personality)
	if personality != "" {
		personality = "has a " + personality + " expression"
	}
	parts := nonEmpty(d.Pose, personality)
	if len(parts) == 0 {
		return ""
	}
	return "The character is " + strings.Join(parts, " and ") + "."
}

func settingClause(d Descriptor) string {
	if setting := clean(d.Setting); setting != "" {
		return "The scene is " + setting + "."
	}
	return ""
}

func photoStyleClause(d Descriptor) string {
	if style := clean(d.PhotoStyle); style != "" {
		return "The image should be in a " + style + " style."
	}
	return ""
}

func dialogueBlock(topic string) string {
	topic = clean(topic)
	if topic == "" {
		return ""
	}
	return normalize("Additionally, generate a short monologue or dialogue for this character. " +
		"The character is speaking about \"" + topic + "\". " +
		"The speech should reflect their specified voice, personality, and language traits.")
}

func nameSuffix(name string) string {
	if name = clean(name); name != "" {
		return "(Reference name: " + name + ")"
	}
	return ""
}

func withColor(item, color string) string {
	if item == "" {
		return ""
	}
	if color = clean(color); color != "" {
		return item + " (color code: " + color + ")"
	}
	return item
}

func article(v string) string {
	if v = clean(v); v != "" {
		return "a " + v
	}
	return ""
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = clean(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

// normalize collapses whitespace runs and repairs stray " . " joins.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, " . ", ". ")
}
