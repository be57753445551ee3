package character

import (
	"strings"
	"testing"
)

const dialogueText = "Additionally, generate a short monologue or dialogue for this character. " +
	"The character is speaking about \"kopi pagi\". " +
	"The speech should reflect their specified voice, personality, and language traits."

func TestBuildClauses(t *testing.T) {
	tests := []struct {
		name string
		in   Descriptor
		want string
	}{
		{
			name: "empty descriptor",
			want: "A high-quality, detailed photo of a character.",
		},
		{
			name: "scenario hijab cafe",
			in: Descriptor{
				Gender:              "female",
				Age:                 "28 years old",
				HairStyle:           HairHijab,
				HeadwearColor:       "soft beige",
				HeadwearStyleDetail: "Bawal style",
				Wardrobe: Wardrobe{
					Tops:     []Top{{Category: TopIslamic, Item: "Baju Kurung"}},
					TopColor: "#000000",
				},
				Setting: "a cozy, modern cafe with warm lighting",
				Name:    "Alex",
			},
			want: "A high-quality, detailed photo of a female, 28 years old character. " +
				"They are wearing a soft beige Bawal style. " +
				"For clothing, the character is wearing a Baju Kurung (color code: #000000). " +
				"The scene is a cozy, modern cafe with warm lighting. (Reference name: Alex)",
		},
		{
			name: "core order and features",
			in: Descriptor{
				LipsShape:              "full lips",
				Gender:                 "male",
				Build:                  "athletic build",
				Height:                 "tall",
				DistinguishingFeatures: "a small scar on the chin",
			},
			want: "A high-quality, detailed photo of a male, athletic build, tall, full lips character, with a small scar on the chin.",
		},
		{
			name: "features without core",
			in:   Descriptor{DistinguishingFeatures: "freckles"},
			want: "A high-quality, detailed photo of a character, with freckles.",
		},
		{
			name: "legacy freehair alias",
			in: Descriptor{
				HairStyle:  "freehair",
				HairLength: "long hair",
				HairType:   "wavy hair",
				HairColor:  "natural black",
			},
			want: "A high-quality, detailed photo of a character. They have long hair wavy hair natural black hair.",
		},
		{
			name: "uncovered without attributes",
			in:   Descriptor{HairStyle: HairUncovered},
			want: "A high-quality, detailed photo of a character.",
		},
		{
			name: "turban falls back to style",
			in:   Descriptor{HairStyle: HairTurban},
			want: "A high-quality, detailed photo of a character. They are wearing a turban.",
		},
		{
			name: "bald",
			in:   Descriptor{HairStyle: HairBald},
			want: "A high-quality, detailed photo of a character. They are bald.",
		},
		{
			name: "mixed case bald kept as written",
			in:   Descriptor{HairStyle: HairStyle("Bald")},
			want: "A high-quality, detailed photo of a character. They are Bald.",
		},
		{
			name: "full voice",
			in: Descriptor{
				VoicePitch:    "deep voice",
				VoiceTone:     "warm tone",
				SpeakingStyle: "speaks slowly and deliberately",
				Language:      "Tamil",
			},
			want: "A high-quality, detailed photo of a character. Their voice and speech pattern is distinct: " +
				"the character has a deep voice and a warm tone, speaks slowly and deliberately, speaks in Tamil.",
		},
		{
			name: "tone only",
			in:   Descriptor{VoiceTone: "gentle tone"},
			want: "A high-quality, detailed photo of a character. Their voice and speech pattern is distinct: the character has a gentle tone.",
		},
		{
			name: "top and bottom",
			in: Descriptor{Wardrobe: Wardrobe{
				Tops:        []Top{{Category: TopCasual, Item: "T-shirt"}},
				Bottom:      "jeans",
				BottomColor: "#000080",
			}},
			want: "A high-quality, detailed photo of a character. For clothing, the character is wearing a T-shirt with jeans (color code: #000080).",
		},
		{
			name: "bottom only",
			in:   Descriptor{Wardrobe: Wardrobe{Bottom: "palazzo pants"}},
			want: "A high-quality, detailed photo of a character. For clothing, the character is wearing palazzo pants.",
		},
		{
			name: "accessories pose setting style",
			in: Descriptor{
				Wardrobe:    Wardrobe{Accessories: "a silver watch"},
				Pose:        "standing confidently",
				Personality: "cheerful and smiling",
				Setting:     "a lush green nature park",
				PhotoStyle:  "candid, street photography",
			},
			want: "A high-quality, detailed photo of a character. They are accessorized with a silver watch. " +
				"The character is standing confidently and has a cheerful and smiling expression. " +
				"The scene is a lush green nature park. The image should be in a candid, street photography style.",
		},
		{
			name: "whitespace collapsed",
			in:   Descriptor{Gender: "  female  ", Setting: "a   busy\tmarket"},
			want: "A high-quality, detailed photo of a female character. The scene is a busy market.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Build(tc.in); got != tc.want {
				t.Fatalf("Build() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildNamePlacement(t *testing.T) {
	d := Descriptor{Gender: "male", DialogueTopic: "kopi pagi", Name: "Ali"}
	paragraph := "A high-quality, detailed photo of a male character."

	tests := []struct {
		name      string
		placement NamePlacement
		want      string
	}{
		{
			name:      "after dialogue",
			placement: NameAfterDialogue,
			want:      paragraph + "\n\n" + dialogueText + " (Reference name: Ali)",
		},
		{
			name:      "after description",
			placement: NameAfterDescription,
			want:      paragraph + " (Reference name: Ali)\n\n" + dialogueText,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Builder{NamePlacement: tc.placement}.Build(d)
			if got != tc.want {
				t.Fatalf("Build() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildDialogueWithoutName(t *testing.T) {
	got := Build(Descriptor{DialogueTopic: "  kopi pagi "})
	want := "A high-quality, detailed photo of a character.\n\n" + dialogueText
	if got != want {
		t.Fatalf("Build() = %q, want %q", got, want)
	}
}

func TestWardrobePriority(t *testing.T) {
	d := Descriptor{Wardrobe: Wardrobe{Tops: []Top{
		{Category: TopTrending, Item: "Utility Vest"},
		{Category: TopCultural, Item: "Kimono"},
		{Category: TopIslamic, Item: "Baju Melayu"},
	}}}
	got := Build(d)
	if !strings.Contains(got, "wearing a Baju Melayu.") {
		t.Fatalf("Build() = %q, want islamic top to win", got)
	}
	for _, loser := range []string{"Utility Vest", "Kimono"} {
		if strings.Contains(got, loser) {
			t.Fatalf("Build() = %q, must not mention %q", got, loser)
		}
	}

	d.Wardrobe.Tops = append(d.Wardrobe.Tops, Top{Category: TopCasual, Item: "Hoodie"})
	if got := d.Wardrobe.Top(); got != "Hoodie" {
		t.Fatalf("Top() = %q, want %q", got, "Hoodie")
	}
}

func TestHairBranchExclusivity(t *testing.T) {
	hijab := Descriptor{HairStyle: HairHijab, HeadwearColor: "navy"}
	withHair := hijab
	withHair.HairType = "curly hair"
	withHair.HairLength = "short hair"
	withHair.HairColor = "dyed blonde"
	if Build(hijab) != Build(withHair) {
		t.Fatalf("hair attributes leaked into hijab output: %q", Build(withHair))
	}

	loose := Descriptor{HairStyle: HairUncovered, HairType: "straight hair"}
	withHeadwear := loose
	withHeadwear.HeadwearColor = "red"
	withHeadwear.HeadwearStyleDetail = "Shawl style"
	if Build(loose) != Build(withHeadwear) {
		t.Fatalf("headwear attributes leaked into uncovered output: %q", Build(withHeadwear))
	}
}

func TestBuildOmitsEmptyFragments(t *testing.T) {
	full := Descriptor{
		Name: "Siti", Gender: "female", Age: "30 years old", Ethnicity: "Southeast Asian",
		SkinTone: "tan skin", Height: "short", Build: "slim build", FaceShape: "oval face",
		EyeShape: "round eyes", EyeColor: "brown eyes", Eyebrows: "thin eyebrows",
		NoseShape: "button nose", LipsShape: "thin lips", DistinguishingFeatures: "dimples",
		HairStyle: HairUncovered, HairType: "wavy hair", HairLength: "long hair", HairColor: "black",
		VoicePitch: "high-pitched voice", VoiceTone: "gentle tone", SpeakingStyle: "speaks quickly",
		Language: "Manglish",
		Wardrobe: Wardrobe{
			Tops:   []Top{{Category: TopStylized, Item: "Blazer"}},
			Bottom: "chinos", TopColor: "#FFFFFF", BottomColor: "#36454F", Accessories: "glasses",
		},
		Personality: "shy and gentle", Pose: "sitting thoughtfully", Setting: "a studio",
		PhotoStyle: "soft-focus, dreamy portrait", DialogueTopic: "her bakery",
	}
	blanks := []func(*Descriptor){
		func(d *Descriptor) { d.Name = "" },
		func(d *Descriptor) { d.Gender = "" },
		func(d *Descriptor) { d.DistinguishingFeatures = "" },
		func(d *Descriptor) { d.HairColor = "" },
		func(d *Descriptor) { d.VoicePitch = "" },
		func(d *Descriptor) { d.SpeakingStyle = "" },
		func(d *Descriptor) { d.Wardrobe.Tops = nil },
		func(d *Descriptor) { d.Wardrobe.TopColor = "" },
		func(d *Descriptor) { d.Wardrobe.Bottom = "" },
		func(d *Descriptor) { d.Wardrobe.Accessories = "" },
		func(d *Descriptor) { d.Pose = "" },
		func(d *Descriptor) { d.PhotoStyle = "" },
		func(d *Descriptor) { d.DialogueTopic = "" },
	}
	for i, blank := range blanks {
		d := full
		blank(&d)
		got := Build(d)
		for _, bad := range []string{"undefined", "null", ",,", ", ,", "()", "  ", " .", "a  "} {
			if strings.Contains(got, bad) {
				t.Fatalf("case %d: Build() = %q contains %q", i, got, bad)
			}
		}
		if got != Build(d) {
			t.Fatalf("case %d: Build() is not deterministic", i)
		}
	}
}

func TestParseNamePlacement(t *testing.T) {
	if got := ParseNamePlacement("after_description"); got != NameAfterDescription {
		t.Fatalf("ParseNamePlacement() = %v, want %v", got, NameAfterDescription)
	}
	if got := ParseNamePlacement(""); got != NameAfterDialogue {
		t.Fatalf("ParseNamePlacement() = %v, want %v", got, NameAfterDialogue)
	}
}
