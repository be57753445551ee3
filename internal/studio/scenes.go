package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"promptstudio/internal/domain"
	"promptstudio/internal/providers/gemini"
)

const (
	maxScenes        = 20
	sceneDurationSec = 8
)

// SceneOptions configures the storyboard breakdown of a description.
type SceneOptions struct {
	Description   string `json:"description"`
	NumScenes     int    `json:"numScenes"`
	Style         string `json:"style"`
	Narrative     bool   `json:"narrativeMode"`
	Transitions   bool   `json:"includeTransitions"`
	Genre         string `json:"genre"`
	TikTok        bool   `json:"tiktokFormat"`
	NoTextOverlay bool   `json:"disableTextOverlay"`
}

const standardDialogue = `,
  "dialogue": [
    {
      "speaker": "[Character Name or 'Voice Over' or 'Off-screen']",
      "voice": "[e.g., Friendly, tired, etc.]",
      "language": "ms-MY",
      "line": "[Dialogue line in Bahasa Melayu]"
    }
  ],
  "lip_sync_director_note": "[Note for the animator]"`

const tiktokDialogue = `,
  "dialogue": [
    {
      "speaker": "[Character Name]",
      "voice": "[e.g., Whispering, Excited]",
      "language": "ms-MY",
      "line": "[Short and catchy dialogue line in Bahasa Melayu, if any]"
    }
  ],
  "lip_sync_director_note": "Ensure lip-sync matches the short dialogue precisely."`

func standardSceneFormat(style string) string {
	return fmt.Sprintf(`{
  "scene_id": "S[scene_number]",
  "duration_sec": %d,
  "visual_style": %q,
  "background_lock": {
    "setting": "[Overall location]",
    "scenery": "[Specific details of the environment]",
    "props": "[Objects in the scene]",
    "lighting": "[Lighting description]"
  },
  "camera": {
    "framing": "[e.g., Medium Wide Shot (MWS), Close-Up (CU)]",
    "angle": "[e.g., Eye-level, Low angle]",
    "movement": "[e.g., Static hold, Slow dolly forward]",
    "focus": "[Description of focus]"
  },
  "foley_and_ambience": {
    "ambience": ["[Sound 1]", "[Sound 2]"],
    "fx": ["[Sound Effect 1]", "[Sound Effect 2]"],
    "music": "[Music description]"
  }%s
}`, sceneDurationSec, style, standardDialogue)
}

func tiktokSceneFormat(style string, textOverlay bool) string {
	overlay := ""
	if textOverlay {
		overlay = ",\n  \"text_overlay\": \"[Text that appears on screen, e.g., 'Part 1', 'Wait till the end...']\""
	}
	return fmt.Sprintf(`{
  "scene_id": "S[scene_number]",
  "duration_sec": %d,
  "visual_style": %q,
  "background_lock": { "setting": "...", "scenery": "...", "props": "...", "lighting": "..." },
  "camera": {
    "framing": "[e.g., Medium Close-Up (MCU), Selfie angle]",
    "angle": "[e.g., POV, Eye-level]",
    "movement": "[e.g., Quick zoom in, Whip pan, Static hold]",
    "focus": "[Description of focus]"
  },
  "tiktok_flow": {
    "hook": "[1-3 second visual or audio hook to grab attention.]",
    "buildup": "[3-5 seconds of developing action. Keep it concise.]",
    "reveal_or_climax": "[The key moment, punchline, or surprise.]",
    "call_to_action_or_cliffhanger": "[Action to encourage engagement or lead to the next scene.]"
  }%s,
  "foley_and_ambience": {
    "ambience": [],
    "fx": ["[Sound Effect 1]", "[Sound Effect 2]"],
    "music": "[Suggest a style of trending TikTok audio, e.g., 'A trending, upbeat pop song']"
  }%s
}`, sceneDurationSec, style, overlay, tiktokDialogue)
}

// scenePrompt assembles the system instruction for a storyboard.
func scenePrompt(o SceneOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert animation and film pre-production assistant. Break the user's story description down into detailed scene prompts in JSON format.\n")
	fmt.Fprintf(&b, "Generate exactly %d scene objects. The output MUST be a valid JSON array of objects (or a single object if numScenes=1).\n", o.NumScenes)
	fmt.Fprintf(&b, "The \"duration_sec\" for each scene MUST be exactly %d seconds.\n", sceneDurationSec)

	if o.Narrative {
		b.WriteString("CRITICAL NARRATIVE INSTRUCTION: The scenes must form a coherent, continuous story. Action and dialogue connect logically from one scene to the next.\n")
		if o.Transitions {
			fmt.Fprintf(&b, "Additionally, insert transition scenes (establishing shots, travel sequences, passing-of-time montages) between key plot points. The total number of scenes must still be exactly %d.\n", o.NumScenes)
		}
	} else {
		b.WriteString("CRITICAL NARRATIVE INSTRUCTION: The scenes are independent variations based on the story description. They do NOT need to connect into a linear story.\n")
	}
	if o.Genre != "" {
		fmt.Fprintf(&b, "GENRE & MOOD: The scenes must adhere to the '%s' genre. Infuse descriptions, actions, lighting and music with the matching atmosphere. For 'horror', build suspense. For 'comedy', focus on timing. For 'drama', emphasize emotional conflict.\n", o.Genre)
	}

	format := standardSceneFormat(o.Style)
	if o.TikTok {
		b.WriteString("CRITICAL TIKTOK FORMATTING INSTRUCTION: While following all other instructions, structure each scene for short-form video: a strong visual or audio hook, rapid pacing and a compelling micro-narrative. The goal is maximum audience retention.\n")
		format = tiktokSceneFormat(o.Style, !o.NoTextOverlay)
	}
	if o.NoTextOverlay {
		b.WriteString("CRITICAL TEXT INSTRUCTION: Never include the \"text_overlay\" field in any scene. The output must not contain on-screen text elements. Dialogue and voice are still required.\n")
	}

	b.WriteString("Each object must strictly follow this format:\n")
	b.WriteString(format)
	b.WriteString("\nBe creative with the details but absolutely strict with the JSON format. The final output must be ONLY the JSON array or object. All dialogue 'line' values MUST be in Bahasa Melayu.")
	return b.String()
}

func (s *Service) sceneRequest(o SceneOptions) gemini.Request {
	return gemini.Request{
		Model:  s.models.Pro,
		System: scenePrompt(o),
		Parts:  []gemini.Part{gemini.Text(o.Description)},
		JSON:   true,
	}
}

// Scenes breaks a story description into storyboard scenes. Each scene is
// returned as raw JSON since its shape depends on the chosen format.
func (s *Service) Scenes(ctx context.Context, o SceneOptions) ([]json.RawMessage, error) {
	o.Description = strings.TrimSpace(o.Description)
	if o.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	o.NumScenes = clamp(o.NumScenes, 1, maxScenes)
	raw, err := complete[json.RawMessage](ctx, s, "scenes", s.sceneRequest(o))
	if err != nil {
		return nil, err
	}
	return splitScenes(raw)
}

// splitScenes accepts a JSON array or a single object.
func splitScenes(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return []json.RawMessage{trimmed}, nil
	}
	var scenes []json.RawMessage
	if err := json.Unmarshal(trimmed, &scenes); err != nil {
		return nil, &gemini.ParseError{Err: err}
	}
	return scenes, nil
}
