package catalog

var (
	Gender = values("male", "female", "non-binary", "masculine appearance",
		"feminine appearance", "androgynous appearance")

	Ethnicity = values("East Asian", "Southeast Asian", "South Asian", "Middle Eastern",
		"Black / African", "White / Caucasian", "Hispanic / Latino", "Indigenous / Native", "Mixed Race")

	SkinTone = values("very fair skin", "fair skin", "olive skin", "tan skin",
		"brown skin", "dark brown skin", "black skin")

	Height = values("very short", "short", "average height", "tall", "very tall")

	BodyBuild = values("slim build", "average build", "athletic build",
		"muscular build", "stocky build", "heavy build")

	FaceShape = values("round face", "oval face", "square face", "heart-shaped face",
		"diamond face", "long face")

	EyeShape = values("almond-shaped eyes", "round eyes", "monolid eyes", "hooded eyes",
		"upturned eyes", "downturned eyes")

	EyeColor = values("brown eyes", "dark brown eyes", "black eyes", "blue eyes",
		"green eyes", "hazel eyes", "grey eyes")

	Eyebrows = values("thin eyebrows", "thick eyebrows", "arched eyebrows", "straight eyebrows")

	NoseShape = values("straight nose", "button nose", "hooked nose", "wide nose", "upturned nose")

	LipShape = values("full lips", "thin lips", "heart-shaped lips", "wide lips")

	HairStyle = []Option{
		{Value: "uncovered", Label: "Uncovered hair"},
		{Value: "hijab", Label: "Hijab"},
		{Value: "turban", Label: "Turban"},
		{Value: "bald", Label: "Bald"},
	}

	HijabStyleDetail = values("Bawal style", "Shawl style", "Tudung Sarung (Instant)",
		"Khimar style", "Modern Turban style", "Malaysian style (Loose & Draped)")

	HairType = values("straight hair", "wavy hair", "curly hair", "coily hair / Afro", "dreadlocks")

	HairLength = values("buzz cut", "short hair", "shoulder-length hair", "long hair")

	VoicePitch = values("deep voice", "medium-pitched voice", "high-pitched voice")

	VoiceTone = values("warm tone", "clear and crisp tone", "raspy voice", "gentle tone", "booming voice")

	SpeakingStyle = values("speaks slowly and deliberately", "speaks quickly and excitedly",
		"has a calm and measured pace", "speaks formally and articulately",
		"speaks in a casual, relaxed manner")

	Language = []Option{
		{Value: "Standard Malay (Bahasa Baku)", Label: "Standard Malay (Baku)"},
		{Value: "Colloquial Malay (Bahasa Pasar)", Label: "Colloquial Malay (Pasar)"},
		{Value: "Manglish (Malay-English creole)", Label: "Manglish"},
		{Value: "English with a Malaysian accent", Label: "English with a Malaysian accent"},
		{Value: "a Chinese dialect like Hokkien or Cantonese", Label: "A Chinese dialect (e.g., Hokkien)"},
		{Value: "Tamil", Label: "Tamil"},
	}

	ClothingCasual   = values("T-shirt", "Hoodie", "Polo shirt", "Summer dress", "Sweater")
	ClothingIslamic  = values("Baju Melayu", "Baju Kurung", "Jubah / Thobe", "Abaya and Shayla", "Kurta top")
	ClothingCultural = values("Cheongsam", "Sari", "Kimono", "Hanbok", "Batik shirt")
	ClothingStylized = []Option{
		{Value: "Business suit", Label: "Business suit"},
		{Value: "Leather jacket", Label: "Leather jacket"},
		{Value: "Oversized graphic tee", Label: "Oversized graphic tee"},
		{Value: "Formal gown", Label: "Formal gown"},
		{Value: "Blazer", Label: "Smart Casual Blazer"},
	}
	ClothingTrending = []Option{
		{Value: "Oversized Blazer", Label: "Oversized Blazer"},
		{Value: "Utility Vest", Label: "Utility Vest"},
		{Value: "Knit Cardigan", Label: "Knit Cardigan"},
		{Value: "Puffer Jacket", Label: "Puffer Jacket"},
		{Value: "Co-ord Set (Matching top and bottom)", Label: "Co-ord Set"},
	}
	ClothingBottom = values("jeans", "chinos", "formal slacks", "cargo pants", "joggers",
		"wide-leg trousers", "a pleated skirt", "palazzo pants")

	Colors = []Option{
		{Value: "#000000", Label: "Jet Black"},
		{Value: "#FFFFFF", Label: "Pure White"},
		{Value: "#36454F", Label: "Charcoal Grey"},
		{Value: "#808080", Label: "Medium Grey"},
		{Value: "#D3D3D3", Label: "Light Grey"},
		{Value: "#F5F5DC", Label: "Beige"},
		{Value: "#A52A2A", Label: "Rich Brown"},
		{Value: "#000080", Label: "Navy Blue"},
		{Value: "#FF0000", Label: "Bright Red"},
		{Value: "#FFA500", Label: "Bright Orange"},
		{Value: "#FFFF00", Label: "Electric Yellow"},
		{Value: "#008000", Label: "Forest Green"},
		{Value: "#2ECC71", Label: "Emerald Green"},
		{Value: "#0000FF", Label: "Royal Blue"},
		{Value: "#4B0082", Label: "Indigo"},
		{Value: "#EE82EE", Label: "Violet"},
		{Value: "#8E44AD", Label: "Royal Purple"},
		{Value: "#FF1493", Label: "Deep Pink"},
		{Value: "#FFB6C1", Label: "Pastel Pink"},
		{Value: "#ADD8E6", Label: "Pastel Blue"},
		{Value: "#98FB98", Label: "Pastel Mint Green"},
		{Value: "#E6E6FA", Label: "Pastel Lavender"},
		{Value: "#FFFACD", Label: "Pastel Lemon Yellow"},
		{Value: "#FFDAB9", Label: "Pastel Peach"},
		{Value: "#FFD700", Label: "Metallic Gold"},
		{Value: "#C0C0C0", Label: "Metallic Silver"},
		{Value: "#B87333", Label: "Metallic Copper"},
	}

	Personality = values("cheerful and smiling", "serious and thoughtful", "mysterious and alluring",
		"confident and powerful", "shy and gentle", "energetic and playful")

	Pose = values("standing confidently", "walking briskly", "sitting thoughtfully",
		"leaning against a wall", "looking directly at the camera", "candidly looking away",
		"in a mid-laugh")

	Setting = values("a minimalist studio with a plain background", "a vibrant city street at night",
		"a cozy, modern cafe with warm lighting", "a lush green nature park",
		"front of a stunning architectural landmark", "a luxurious, opulent interior")

	PhotoStyle = values("cinematic, dramatic lighting", "clean, high-fashion editorial",
		"soft-focus, dreamy portrait", "candid, street photography",
		"shot during the golden hour with warm light", "high-contrast black and white")

	VisualStyle = []Option{
		{
			Label: "3D Cartoon Cinematic",
			Value: "3D cartoon cinematic animation with stylized non-photorealistic rendering, vibrant color palette, " +
				"smooth rounded edges, exaggerated proportions, clean cel-shaded surfaces, appealing character designs. " +
				"Lighting: warm afternoon golden sunlight, soft diffused shadows, gentle rim lighting on characters.",
		},
		{
			Label: "2D Anime",
			Value: "2D anime style, vibrant colors, sharp lines, detailed backgrounds, expressive character animations. " +
				"Lighting: dramatic, high-contrast lighting with lens flares and atmospheric effects.",
		},
		{
			Label: "Photorealistic VFX",
			Value: "Photorealistic VFX, live-action integration, highly detailed textures, physics-based rendering, " +
				"natural lighting matching real-world conditions.",
		},
		{
			Label: "Stop-Motion",
			Value: "Stop-motion animation style, tactile clay and fabric textures, slightly imperfect movements, " +
				"handcrafted aesthetic. Lighting: practical miniature set lighting.",
		},
		{
			Label: "Low-Poly 3D",
			Value: "Low-poly, stylized 3D, minimalist textures, bold geometric shapes, limited color palette. " +
				"Lighting: simple directional lighting to emphasize shapes and forms.",
		},
	}

	Genre = values("drama", "mystery", "horror", "comedy", "action", "sci-fi", "romance")

	ProductAction = []Option{
		{Value: "is being worn on a model's hand, showcasing the fit and style", Label: "Standard: Worn on a model's hand"},
		{Value: "is held delicately between the thumb and index finger, close-up macro shot focusing on texture", Label: "Hand: Delicate Pinch (Macro)"},
		{Value: "is resting softly on an open palm, cupped gently, conveying value and care", Label: "Hand: Open Palm Presentation"},
		{Value: "is worn on a finger, hand resting gently on a collarbone, emphasizing elegance", Label: "Hand: Resting on Collarbone"},
		{Value: "is stacked in a neat, symmetrical pyramid, emphasizing wealth and abundance", Label: "Gold Bar/Coin: Symmetrical Stack"},
		{Value: "is lying on a bed of fine gold dust or raw nuggets, connecting refined and raw states", Label: "Gold Bar/Coin: On Gold Dust"},
		{Value: "is suspended in mid-air, floating with zero gravity, surrounded by soft bokeh", Label: "Levitation: Zero Gravity Floating"},
		{Value: "is dropping into a pool of liquid gold, creating a crown splash", Label: "Liquid: Gold Crown Splash"},
		{Value: "is resting on a luxurious black velvet surface, creating a high-contrast look", Label: "Texture: Black Velvet Contrast"},
		{Value: "is placed on a mirror surface, showing a perfect, sharp reflection below", Label: "Reflection: Mirror Surface"},
		{Value: "is surrounded by swirling smoke or dry ice fog, adding mystery and atmosphere", Label: "Atmosphere: Swirling Smoke/Fog"},
		{Value: "is being unboxed from an elegant, minimalist gift box", Label: "Lifestyle: Unboxing Experience"},
	}

	ProductActionStyle = values("Minimalist Studio", "Luxury Lifestyle", "Dark & Moody", "Bright & Airy",
		"Nature Background", "Rembrandt Lighting", "Butterfly Lighting", "Rim Lighting", "Vogue Editorial",
		"Industrial Chic", "Wes Anderson", "Neo-Noir", "Surrealist", "Pop Art", "Cyberpunk / Neon",
		"Vaporwave Aesthetic", "Ethereal Dreamscape", "Vintage Kodachrome", "Metallic & Chrome",
		"Golden Hour", "Underwater")

	ProductAngle = values("Eye-Level Shot", "High-Angle Shot", "Low-Angle Shot", "Extreme Low Angle",
		"Macro Close-Up", "Dutch Angle/Tilt", "Top-Down / Flat Lay", "Over-The-Shoulder",
		"Worm's Eye View", "Bird's Eye View", "Profile View", "3/4 Quarter View", "Rack Focus",
		"Split Level", "Isometric View")

	ProductBackgroundStyle = values("Luxury & Opulent", "Natural & Organic", "Minimalist & Modern",
		"Dark & Moody", "Bright & Airy", "Geometric & Abstract")
)
