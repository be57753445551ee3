package studio

type PromptResult struct {
	Prompt string `json:"prompt"`
}

type PromptList struct {
	Prompts []string `json:"prompts"`
}

// AdvancedMovement holds three directorial takes on one product.
type AdvancedMovement struct {
	CinematicReveal string `json:"cinematic_reveal"`
	IntricateDetail string `json:"intricate_detail"`
	DynamicEnergy   string `json:"dynamic_energy"`
}

type FlowComposite struct {
	RealisticBlend         string `json:"realistic_blend"`
	LuxuryCommercial       string `json:"luxury_commercial"`
	CreativeTransformation string `json:"creative_transformation"`
}

type BackgroundSet struct {
	Theme             string   `json:"theme"`
	SurfaceAndTexture string   `json:"surface_and_texture"`
	PropsAndDecor     string   `json:"props_and_decor"`
	LightingSetup     string   `json:"lighting_setup"`
	ColorPalette      []string `json:"color_palette"`
	RecreationPrompt  string   `json:"recreation_prompt"`
}

type InfoExtraction struct {
	Summary          string   `json:"summary"`
	ExtractedText    []string `json:"extractedText"`
	ExtractedNumbers []string `json:"extractedNumbers"`
	DetailedAnalysis string   `json:"detailedAnalysis"`
}

type DataPoint struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Category string `json:"category,omitempty"`
}

type Axis struct {
	Label string `json:"label,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

type GraphicAnalysis struct {
	Title            string      `json:"title"`
	GraphicType      string      `json:"graphicType"`
	Summary          string      `json:"summary"`
	DataPoints       []DataPoint `json:"dataPoints"`
	XAxis            *Axis       `json:"xAxis,omitempty"`
	YAxis            *Axis       `json:"yAxis,omitempty"`
	KeyTakeaways     []string    `json:"keyTakeaways"`
	RegeneratePrompt string      `json:"regeneratePrompt"`
}
