package style

// builtinPresets возвращает встроенный каталог стилей.
func builtinPresets() []Preset {
	return []Preset{
		// --- Art Movements ---
		{
			ID:                "impressionism",
			Name:              "Impressionism",
			Category:          CategoryArtMovements,
			Description:       "Soft brushstrokes, emphasis on light and color",
			Suffix:            "impressionist painting style, soft visible brushstrokes, dappled light, vibrant colors, Claude Monet inspired, plein air aesthetic",
			NegativeAdditions: []string{"sharp lines", "photorealistic", "digital"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"painting", "classic", "soft"},
		},
		{
			ID:                "surrealism",
			Name:              "Surrealism",
			Category:          CategoryArtMovements,
			Description:       "Dreamlike, impossible, subconscious imagery",
			Suffix:            "surrealist art, dreamlike quality, impossible geometry, Salvador Dali inspired, subconscious imagery, melting forms, unexpected juxtapositions",
			NegativeAdditions: []string{"realistic", "ordinary", "mundane"},
			RecommendedModels: []string{"midjourney", "dalle3"},
			Tags:              []string{"dream", "abstract", "artistic"},
		},
		{
			ID:                "baroque",
			Name:              "Baroque",
			Category:          CategoryArtMovements,
			Description:       "Dramatic, rich, ornate classical style",
			Suffix:            "baroque painting, dramatic chiaroscuro lighting, rich deep colors, ornate details, Caravaggio inspired, theatrical composition, gold accents",
			NegativeAdditions: []string{"minimalist", "modern", "simple"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"classical", "dramatic", "ornate"},
		},
		{
			ID:                "art_nouveau",
			Name:              "Art Nouveau",
			Category:          CategoryArtMovements,
			Description:       "Organic curves, decorative, nature-inspired",
			Suffix:            "art nouveau style, organic flowing lines, decorative elements, Alphonse Mucha inspired, ornamental borders, floral motifs, elegant curves",
			NegativeAdditions: []string{"geometric", "angular", "industrial"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"decorative", "elegant", "organic"},
		},
		{
			ID:                "renaissance",
			Name:              "Renaissance",
			Category:          CategoryArtMovements,
			Description:       "Classical realism, detailed, harmonious",
			Suffix:            "Renaissance painting, classical composition, sfumato technique, Leonardo da Vinci inspired, anatomical precision, golden ratio, religious iconography aesthetic",
			NegativeAdditions: []string{"modern", "abstract", "cartoon"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"classical", "realistic", "historical"},
		},
		{
			ID:                "romanticism",
			Name:              "Romanticism",
			Category:          CategoryArtMovements,
			Description:       "Emotional, dramatic nature, sublime",
			Suffix:            "romanticism painting, dramatic nature, emotional intensity, sublime landscape, Caspar David Friedrich inspired, stormy skies, heroic figures",
			NegativeAdditions: []string{"mundane", "urban", "modern"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"emotional", "nature", "dramatic"},
		},
		{
			ID:                "expressionism",
			Name:              "Expressionism",
			Category:          CategoryArtMovements,
			Description:       "Distorted reality, emotional intensity",
			Suffix:            "expressionist art, distorted forms, intense colors, emotional distortion, Edvard Munch inspired, psychological intensity, bold brushwork",
			NegativeAdditions: []string{"realistic", "calm", "photographic"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"emotional", "distorted", "intense"},
		},
		{
			ID:                "cubism",
			Name:              "Cubism",
			Category:          CategoryArtMovements,
			Description:       "Geometric abstraction, multiple perspectives",
			Suffix:            "cubist art, geometric abstraction, fragmented forms, multiple perspectives, Pablo Picasso inspired, angular shapes, deconstructed reality",
			NegativeAdditions: []string{"realistic", "smooth", "photographic"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"abstract", "geometric", "modern"},
		},

		// --- Photography ---
		{
			ID:                "cinematic",
			Name:              "Cinematic",
			Category:          CategoryPhotography,
			Description:       "Movie-like quality with dramatic lighting",
			Prefix:            "cinematic shot,",
			Suffix:            "movie still, anamorphic lens, dramatic lighting, film grain, color grading, shallow depth of field, widescreen composition",
			NegativeAdditions: []string{"amateur", "snapshot", "flat lighting"},
			RecommendedModels: []string{"midjourney", "flux", "dalle3"},
			Tags:              []string{"film", "dramatic", "professional"},
		},
		{
			ID:                "portrait",
			Name:              "Portrait Photography",
			Category:          CategoryPhotography,
			Description:       "Professional portrait with studio lighting",
			Prefix:            "professional portrait,",
			Suffix:            "studio lighting, shallow depth of field, 85mm lens, catchlights in eyes, soft skin, professional headshot quality",
			NegativeAdditions: []string{"wide angle distortion", "harsh shadows", "unflattering"},
			RecommendedModels: []string{"midjourney", "flux"},
			Tags:              []string{"portrait", "professional", "studio"},
		},
		{
			ID:                "documentary",
			Name:              "Documentary",
			Category:          CategoryPhotography,
			Description:       "Authentic, candid, journalistic",
			Prefix:            "documentary photograph,",
			Suffix:            "candid shot, natural lighting, photojournalism style, authentic moment, raw emotion, unposed",
			NegativeAdditions: []string{"staged", "artificial", "overproduced"},
			RecommendedModels: []string{"flux", "dalle3"},
			Tags:              []string{"authentic", "candid", "journalistic"},
		},
		{
			ID:                "noir",
			Name:              "Film Noir",
			Category:          CategoryPhotography,
			Description:       "Dark, moody, high contrast black and white",
			Prefix:            "film noir style,",
			Suffix:            "black and white, high contrast, dramatic shadows, venetian blind shadows, cigarette smoke, mysterious atmosphere, 1940s aesthetic",
			NegativeAdditions: []string{"colorful", "bright", "cheerful", "saturated"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"dark", "dramatic", "classic"},
		},
		{
			ID:                "vintage",
			Name:              "Vintage Photography",
			Category:          CategoryPhotography,
			Description:       "Retro film aesthetic with faded colors",
			Prefix:            "vintage photograph,",
			Suffix:            "retro aesthetic, faded colors, film grain, nostalgic, Kodak Portra, light leaks, soft focus edges",
			NegativeAdditions: []string{"modern", "digital", "sharp", "HDR"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"retro", "nostalgic", "film"},
		},
		{
			ID:                "street",
			Name:              "Street Photography",
			Category:          CategoryPhotography,
			Description:       "Urban life, candid moments, gritty",
			Prefix:            "street photography,",
			Suffix:            "urban life, candid moment, natural lighting, gritty texture, decisive moment, Henri Cartier-Bresson inspired",
			NegativeAdditions: []string{"posed", "studio", "artificial"},
			RecommendedModels: []string{"flux", "dalle3"},
			Tags:              []string{"urban", "candid", "documentary"},
		},
		{
			ID:                "macro",
			Name:              "Macro Photography",
			Category:          CategoryPhotography,
			Description:       "Extreme close-up, intricate details",
			Prefix:            "macro photograph,",
			Suffix:            "extreme close-up, intricate details, shallow depth of field, water droplets, texture emphasis, ring light",
			NegativeAdditions: []string{"wide shot", "distant", "blurry"},
			RecommendedModels: []string{"midjourney", "flux"},
			Tags:              []string{"detailed", "close-up", "scientific"},
		},

		// --- Illustration ---
		{
			ID:                "anime",
			Name:              "Anime",
			Category:          CategoryIllustration,
			Description:       "Japanese animation style",
			Prefix:            "anime style,",
			Suffix:            "cel shading, vibrant colors, large expressive eyes, clean lines, Studio Ghibli quality, Japanese animation",
			NegativeAdditions: []string{"realistic", "photographic", "3d render", "western cartoon"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"japanese", "animation", "stylized"},
		},
		{
			ID:                "manga",
			Name:              "Manga",
			Category:          CategoryIllustration,
			Description:       "Japanese comic style, black and white",
			Prefix:            "manga style,",
			Suffix:            "black and white, screentone shading, dynamic lines, Japanese comic, expressive faces, action lines",
			NegativeAdditions: []string{"color", "western", "painted"},
			RecommendedModels: []string{"stable-diffusion"},
			Tags:              []string{"japanese", "comic", "monochrome"},
		},
		{
			ID:                "concept_art",
			Name:              "Concept Art",
			Category:          CategoryIllustration,
			Description:       "Professional production design",
			Prefix:            "concept art,",
			Suffix:            "matte painting, artstation trending, production design, environment design, professional illustration, game art quality",
			NegativeAdditions: []string{"amateur", "sketch", "unfinished"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"professional", "game", "production"},
		},
		{
			ID:                "comic",
			Name:              "Comic Book",
			Category:          CategoryIllustration,
			Description:       "Western comic book style",
			Prefix:            "comic book art,",
			Suffix:            "bold outlines, cel shading, dynamic poses, superhero comic style, halftone dots, action panel composition",
			NegativeAdditions: []string{"realistic", "soft edges", "painterly"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"western", "superhero", "bold"},
		},
		{
			ID:                "watercolor",
			Name:              "Watercolor",
			Category:          CategoryIllustration,
			Description:       "Soft, flowing watercolor painting",
			Prefix:            "watercolor painting,",
			Suffix:            "wet on wet technique, soft edges, flowing colors, paper texture visible, transparent layers, delicate washes",
			NegativeAdditions: []string{"sharp lines", "digital", "opaque"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"soft", "traditional", "flowing"},
		},
		{
			ID:                "oil_painting",
			Name:              "Oil Painting",
			Category:          CategoryIllustration,
			Description:       "Classical oil painting technique",
			Prefix:            "oil painting,",
			Suffix:            "visible brushstrokes, canvas texture, rich impasto, classical technique, deep colors, layered glazes",
			NegativeAdditions: []string{"digital", "smooth", "flat", "photographic"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"classical", "traditional", "textured"},
		},
		{
			ID:                "sketch",
			Name:              "Pencil Sketch",
			Category:          CategoryIllustration,
			Description:       "Hand-drawn pencil artwork",
			Prefix:            "pencil sketch,",
			Suffix:            "graphite drawing, cross-hatching, paper texture, hand-drawn quality, shading techniques, artistic linework",
			NegativeAdditions: []string{"color", "digital", "painted", "rendered"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"traditional", "monochrome", "hand-drawn"},
		},
		{
			ID:                "pixel_art",
			Name:              "Pixel Art",
			Category:          CategoryIllustration,
			Description:       "Retro 8-bit and 16-bit game style",
			Prefix:            "pixel art,",
			Suffix:            "8-bit style, retro game aesthetic, limited color palette, crisp pixels, nostalgic, sprite art",
			NegativeAdditions: []string{"smooth", "realistic", "high resolution", "anti-aliased"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"retro", "gaming", "nostalgic"},
		},
		{
			ID:                "children_book",
			Name:              "Children's Book Illustration",
			Category:          CategoryIllustration,
			Description:       "Whimsical, friendly, storybook style",
			Prefix:            "children's book illustration,",
			Suffix:            "whimsical, friendly characters, soft colors, storybook aesthetic, warm and inviting, simple shapes",
			NegativeAdditions: []string{"scary", "dark", "violent", "complex"},
			RecommendedModels: []string{"midjourney", "dalle3"},
			Tags:              []string{"whimsical", "friendly", "colorful"},
		},

		// --- 3D Render ---
		{
			ID:                "3d_render",
			Name:              "3D Render",
			Category:          CategoryRender3D,
			Description:       "Photorealistic 3D rendering",
			Prefix:            "3D render,",
			Suffix:            "octane render, ray tracing, realistic materials, subsurface scattering, global illumination, high quality CGI",
			NegativeAdditions: []string{"2d", "flat", "hand drawn", "sketch"},
			RecommendedModels: []string{"midjourney", "flux"},
			Tags:              []string{"cgi", "photorealistic", "technical"},
		},
		{
			ID:                "unreal_engine",
			Name:              "Unreal Engine",
			Category:          CategoryRender3D,
			Description:       "Game engine cinematic quality",
			Prefix:            "Unreal Engine 5,",
			Suffix:            "nanite, lumen global illumination, photorealistic rendering, AAA game quality, real-time graphics",
			NegativeAdditions: []string{"low poly", "retro", "2d"},
			RecommendedModels: []string{"midjourney"},
			Tags:              []string{"gaming", "cinematic", "realistic"},
		},
		{
			ID:                "pixar",
			Name:              "Pixar Style",
			Category:          CategoryRender3D,
			Description:       "Animated movie 3D style",
			Prefix:            "Pixar animation style,",
			Suffix:            "3D animated, stylized characters, vibrant colors, Disney quality, expressive faces, subsurface scattering skin",
			NegativeAdditions: []string{"realistic", "dark", "gritty", "photographic"},
			RecommendedModels: []string{"midjourney", "dalle3"},
			Tags:              []string{"animated", "family-friendly", "stylized"},
		},
		{
			ID:                "low_poly",
			Name:              "Low Poly",
			Category:          CategoryRender3D,
			Description:       "Geometric, faceted 3D style",
			Prefix:            "low poly 3D,",
			Suffix:            "geometric shapes, faceted surfaces, minimal polygons, clean aesthetic, isometric view, flat shading",
			NegativeAdditions: []string{"realistic", "detailed", "smooth", "organic"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"geometric", "minimal", "stylized"},
		},
		{
			ID:                "isometric",
			Name:              "Isometric",
			Category:          CategoryRender3D,
			Description:       "Isometric perspective view",
			Prefix:            "isometric view,",
			Suffix:            "isometric perspective, diorama style, miniature aesthetic, clean edges, game asset quality, 30 degree angle",
			NegativeAdditions: []string{"perspective distortion", "fisheye", "wide angle"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"technical", "clean", "game"},
		},

		// --- Experimental ---
		{
			ID:                "cyberpunk",
			Name:              "Cyberpunk",
			Category:          CategoryExperimental,
			Description:       "Neon-lit dystopian future",
			Prefix:            "cyberpunk,",
			Suffix:            "neon lights, rain-slicked streets, holographic advertisements, dystopian future, Blade Runner inspired, high tech low life",
			NegativeAdditions: []string{"nature", "pastoral", "historical", "bright daylight"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"sci-fi", "neon", "dystopian"},
		},
		{
			ID:                "steampunk",
			Name:              "Steampunk",
			Category:          CategoryExperimental,
			Description:       "Victorian-era science fiction",
			Prefix:            "steampunk,",
			Suffix:            "brass and copper, gears and cogs, Victorian era, steam-powered machinery, goggles, clockwork mechanisms",
			NegativeAdditions: []string{"modern", "digital", "sleek", "minimal"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"victorian", "mechanical", "retro-futuristic"},
		},
		{
			ID:                "vaporwave",
			Name:              "Vaporwave",
			Category:          CategoryExperimental,
			Description:       "Retro-futuristic aesthetic",
			Prefix:            "vaporwave aesthetic,",
			Suffix:            "pink and cyan gradient, greek statues, retro technology, palm trees, sunset gradient, glitch effects, 80s nostalgia",
			NegativeAdditions: []string{"natural", "realistic", "muted colors"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"retro", "aesthetic", "colorful"},
		},
		{
			ID:                "gothic",
			Name:              "Gothic",
			Category:          CategoryExperimental,
			Description:       "Dark, ornate, medieval atmosphere",
			Prefix:            "gothic art,",
			Suffix:            "dark atmosphere, ornate architecture, medieval aesthetic, gargoyles, stained glass, moonlight, dramatic shadows",
			NegativeAdditions: []string{"bright", "cheerful", "modern", "minimal"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"dark", "medieval", "atmospheric"},
		},

		// --- Genre ---
		{
			ID:                "fantasy",
			Name:              "Epic Fantasy",
			Category:          CategoryGenre,
			Description:       "Magical, epic fantasy world",
			Prefix:            "epic fantasy,",
			Suffix:            "magical atmosphere, ethereal lighting, mythical creatures, enchanted world, Lord of the Rings inspired, epic scale",
			NegativeAdditions: []string{"mundane", "realistic", "modern", "urban"},
			RecommendedModels: []string{"midjourney", "stable-diffusion", "dalle3"},
			Tags:              []string{"magical", "epic", "mythical"},
		},
		{
			ID:                "horror",
			Name:              "Horror",
			Category:          CategoryGenre,
			Description:       "Dark, unsettling, frightening",
			Prefix:            "horror atmosphere,",
			Suffix:            "unsettling imagery, dark shadows, eerie lighting, ominous presence, psychological horror, Lovecraftian influence",
			NegativeAdditions: []string{"cheerful", "bright", "cute", "friendly"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"dark", "scary", "atmospheric"},
		},
		{
			ID:                "sci_fi",
			Name:              "Science Fiction",
			Category:          CategoryGenre,
			Description:       "Futuristic, technological",
			Prefix:            "science fiction,",
			Suffix:            "futuristic technology, space age, advanced civilization, sleek design, holographic displays, chrome and glass",
			NegativeAdditions: []string{"historical", "medieval", "rustic", "primitive"},
			RecommendedModels: []string{"midjourney", "stable-diffusion", "flux"},
			Tags:              []string{"futuristic", "technology", "space"},
		},
		{
			ID:                "western",
			Name:              "Western",
			Category:          CategoryGenre,
			Description:       "Wild West aesthetic",
			Prefix:            "wild west,",
			Suffix:            "dusty frontier, cowboy aesthetic, desert landscape, wooden saloons, sunset silhouettes, rugged terrain",
			NegativeAdditions: []string{"modern", "urban", "futuristic", "tropical"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"americana", "frontier", "rustic"},
		},

		// --- Cultural ---
		{
			ID:                "ukiyo_e",
			Name:              "Ukiyo-e",
			Category:          CategoryCultural,
			Description:       "Japanese woodblock print style",
			Prefix:            "ukiyo-e style,",
			Suffix:            "Japanese woodblock print, flat colors, bold outlines, Hokusai inspired, traditional Japanese art, wave patterns",
			NegativeAdditions: []string{"3d", "photographic", "western"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"japanese", "traditional", "artistic"},
		},
		{
			ID:                "art_deco",
			Name:              "Art Deco",
			Category:          CategoryCultural,
			Description:       "1920s geometric glamour",
			Prefix:            "art deco style,",
			Suffix:            "geometric patterns, gold accents, 1920s glamour, symmetrical design, luxurious materials, Gatsby era aesthetic",
			NegativeAdditions: []string{"organic", "rustic", "minimal", "modern minimal"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"geometric", "luxurious", "vintage"},
		},
		{
			ID:                "pop_art",
			Name:              "Pop Art",
			Category:          CategoryCultural,
			Description:       "Bold colors, comic-inspired",
			Prefix:            "pop art style,",
			Suffix:            "bold primary colors, comic book halftone, Andy Warhol inspired, graphic design, high contrast, Roy Lichtenstein dots",
			NegativeAdditions: []string{"muted", "subtle", "realistic", "dark"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"bold", "graphic", "colorful"},
		},
		{
			ID:                "minimalist",
			Name:              "Minimalist",
			Category:          CategoryCultural,
			Description:       "Clean, simple, elegant",
			Prefix:            "minimalist,",
			Suffix:            "clean design, simple composition, negative space, elegant, less is more, monochromatic palette, essential elements only",
			NegativeAdditions: []string{"cluttered", "busy", "ornate", "detailed"},
			RecommendedModels: []string{"midjourney", "dalle3", "flux"},
			Tags:              []string{"clean", "simple", "modern"},
		},
		{
			ID:                "abstract",
			Name:              "Abstract",
			Category:          CategoryCultural,
			Description:       "Non-representational, shapes and colors",
			Prefix:            "abstract art,",
			Suffix:            "non-representational, shapes and colors, emotional expression, Kandinsky inspired, bold composition, modern art",
			NegativeAdditions: []string{"realistic", "figurative", "photographic"},
			RecommendedModels: []string{"midjourney", "stable-diffusion"},
			Tags:              []string{"modern", "artistic", "expressive"},
		},
	}
}
