package studio

import (
	"google.golang.org/genai"

	"promptstudio/internal/catalog"
	g "promptstudio/internal/providers/gemini"
)

var (
	promptSchema = g.Object(g.Prop("prompt", g.String("")))

	advancedMovementSchema = g.Object(
		g.Prop("cinematic_reveal", g.String("A grand, sweeping, cinematic prompt focused on revealing the product majestically.")),
		g.Prop("intricate_detail", g.String("A macro-level prompt focusing on the fine details, texture, and craftsmanship.")),
		g.Prop("dynamic_energy", g.String("A modern, energetic prompt with dynamic movement to create excitement.")),
	)

	flowCompositeSchema = g.Object(
		g.Prop("realistic_blend", g.String("Prompt for natural integration.")),
		g.Prop("luxury_commercial", g.String("Prompt for high-end aesthetic.")),
		g.Prop("creative_transformation", g.String("Prompt for artistic composite.")),
	)

	backgroundSetSchema = g.Object(
		g.Prop("theme", g.String("The overall visual theme.")),
		g.Prop("surface_and_texture", g.String("Detailed description of surfaces and textures.")),
		g.Prop("props_and_decor", g.String("List of props and decorative elements.")),
		g.Prop("lighting_setup", g.String("Description of the lighting technique.")),
		g.Prop("color_palette", g.StringArray("Array of hex color codes found in the background.")),
		g.Prop("recreation_prompt", g.String("A detailed prompt to generate this background without the product.")),
	)

	infoExtractSchema = g.Object(
		g.Prop("summary", g.String("A one or two-sentence summary of the image's content and the purpose of its information.")),
		g.Prop("extractedText", g.StringArray("Every distinct text string found in the image.")),
		g.Prop("extractedNumbers", g.StringArray("Every distinct number or numerical string (prices, dates, phone numbers) found in the image.")),
		g.Prop("detailedAnalysis", g.String("A paragraph identifying what the image is and interpreting the extracted data.")),
	)

	graphicAnalysisSchema = graphicSchema()
)

func promptListSchema(description string) *genai.Schema {
	return g.Object(g.Prop("prompts", g.StringArray(description)))
}

func graphicSchema() *genai.Schema {
	axis := func(description, unitExample string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeObject,
			Description: description,
			Properties: map[string]*genai.Schema{
				"label": g.String("The title or label for the axis."),
				"unit":  g.String("The unit of measurement, e.g. " + unitExample + "."),
			},
		}
	}
	point := g.Object(
		g.Prop("label", g.String("The primary label for the data point (a year, a category name).")),
		g.Prop("value", g.String("The value associated with the label (e.g., 'RM 1.5M', '75%').")),
		g.Prop("category", g.String("Optional category or series the data point belongs to, often from the legend.")),
	)
	point.Required = []string{"label", "value"}

	s := g.Object(
		g.Prop("title", g.String("The main title of the graphic.")),
		g.Prop("graphicType", g.String("The type of graphic (e.g., 'Vertical Bar Chart', 'Line Graph', 'Pie Chart', 'Infographic').")),
		g.Prop("summary", g.String("A one-sentence summary of what the graphic illustrates.")),
		g.Prop("dataPoints", g.ArrayOf("Structured data points from the graphic.", point)),
		g.Prop("xAxis", axis("Details of the X-axis, if applicable.", "'Year', 'Month'")),
		g.Prop("yAxis", axis("Details of the Y-axis, if applicable.", "'in millions RM', 'Percentage'")),
		g.Prop("keyTakeaways", g.StringArray("2-3 key insights drawn from the graphic's data.")),
		g.Prop("regeneratePrompt", g.String("A detailed text-to-image prompt to regenerate a visually similar graphic, including chart type, data, labels, colors and style.")),
	)
	s.Required = []string{"title", "graphicType", "summary", "dataPoints", "keyTakeaways", "regeneratePrompt"}
	return s
}

func choose(opts []catalog.Option) string {
	return "Choose one of: " + catalog.Quoted(opts)
}

// characterSchema constrains the analysis answer to the studio form options.
func characterSchema() *genai.Schema {
	colors := "Return the closest hex code from this list: " + catalog.Quoted(catalog.Colors)
	return g.Loose(
		g.Prop("gender", g.String("Infer the character's gender/appearance. "+choose(catalog.Gender))),
		g.Prop("age", g.String("Estimate the character's age. Format as 'XX years old'. Example: '28 years old'.")),
		g.Prop("ethnicity", g.String("Infer ethnicity. "+choose(catalog.Ethnicity))),
		g.Prop("skinTone", g.String("Describe skin tone. "+choose(catalog.SkinTone))),
		g.Prop("height", g.String("Estimate height from visible proportions. "+choose(catalog.Height))),
		g.Prop("build", g.String("Describe body build. "+choose(catalog.BodyBuild))),
		g.Prop("faceShape", g.String("Identify face shape. "+choose(catalog.FaceShape))),
		g.Prop("eyeShape", g.String("Identify eye shape. "+choose(catalog.EyeShape))),
		g.Prop("eyeColor", g.String("Identify eye color. "+choose(catalog.EyeColor))),
		g.Prop("eyebrows", g.String("Describe eyebrows. "+choose(catalog.Eyebrows))),
		g.Prop("noseShape", g.String("Identify nose shape. "+choose(catalog.NoseShape))),
		g.Prop("lipsShape", g.String("Identify lip shape. "+choose(catalog.LipShape))),
		g.Prop("features", g.String("Describe unique facial features like moles, scars, freckles, dimples.")),
		g.Prop("hairStyle", g.String("Identify whether hair is uncovered or covered. "+choose(catalog.HairStyle))),
		g.Prop("hairType", g.String("If hair is visible, identify its type. "+choose(catalog.HairType))),
		g.Prop("hairLength", g.String("If hair is visible, estimate its length. "+choose(catalog.HairLength))),
		g.Prop("hairColor", g.String("If hair is visible, describe its color (e.g., natural black, dyed blonde).")),
		g.Prop("hijabStyleDetail", g.String("If wearing a hijab/turban, identify the style. "+choose(catalog.HijabStyleDetail))),
		g.Prop("hijabColor", g.String("If wearing a hijab/turban, describe its color and fabric (e.g., soft beige chiffon).")),
		g.Prop("clothingCasual", g.String("Identify the main casual top wear. "+choose(catalog.ClothingCasual))),
		g.Prop("clothingIslamik", g.String("Identify any Islamic-style clothing. "+choose(catalog.ClothingIslamic))),
		g.Prop("clothingCultural", g.String("Identify any cultural-style clothing. "+choose(catalog.ClothingCultural))),
		g.Prop("clothingStylo", g.String("Identify any high-fashion top wear. "+choose(catalog.ClothingStylized))),
		g.Prop("clothingTrending", g.String("Identify any trending style clothing. "+choose(catalog.ClothingTrending))),
		g.Prop("clothingBottom", g.String("Identify the bottom wear. "+choose(catalog.ClothingBottom))),
		g.Prop("topColor", g.String("Identify the primary color of the top wear. "+colors)),
		g.Prop("bottomColor", g.String("Identify the primary color of the bottom wear. "+colors)),
		g.Prop("accessories", g.String("List visible accessories (e.g., silver watch, glasses, necklace).")),
		g.Prop("personality", g.String("Infer personality from expression and pose. "+choose(catalog.Personality))),
		g.Prop("pose", g.String("Describe the character's pose. "+choose(catalog.Pose))),
		g.Prop("setting", g.String("Describe the background/setting. "+choose(catalog.Setting))),
		g.Prop("photoStyle", g.String("Describe the photographic style. "+choose(catalog.PhotoStyle))),
	)
}
