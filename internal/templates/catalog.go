package templates

// builtinTemplates возвращает каталог шаблонов по типам кадра.
func builtinTemplates() map[Type]Template {
	return map[Type]Template{
		TypeCharacterPortrait: {
			ID:          "char_portrait",
			Name:        "Character Portrait",
			Type:        TypeCharacterPortrait,
			Description: "Close-up or medium close-up portrait of a character",
			Structure:   "{character_description}, {expression}, {pose}, portrait shot, {lighting}, {background}, {atmosphere}",
			Variables:   []string{"character_description", "expression", "pose", "lighting", "background", "atmosphere"},
			Defaults: map[string]string{
				"expression": "neutral expression",
				"pose":       "facing camera",
				"lighting":   "soft studio lighting",
				"background": "blurred background",
				"atmosphere": "professional portrait",
			},
			ShotSuggestion:     "close-up or medium close-up",
			AngleSuggestion:    "eye level, slightly above",
			LightingSuggestion: "Rembrandt lighting, rim light for separation",
			CompositionNotes:   "Rule of thirds, eyes on upper third line",
			Tags:               []string{"portrait", "character", "face"},
		},
		TypeCharacterFullBody: {
			ID:          "char_full_body",
			Name:        "Character Full Body",
			Type:        TypeCharacterFullBody,
			Description: "Full body shot showing character's complete appearance",
			Structure:   "{character_description}, full body shot, {pose}, {clothing}, {action}, {environment}, {lighting}",
			Variables:   []string{"character_description", "pose", "clothing", "action", "environment", "lighting"},
			Defaults: map[string]string{
				"pose":        "standing",
				"clothing":    "detailed attire",
				"action":      "",
				"environment": "contextual background",
				"lighting":    "dramatic lighting",
			},
			ShotSuggestion:     "full body or medium full shot",
			AngleSuggestion:    "eye level or slightly low angle for heroic feel",
			LightingSuggestion: "Three-point lighting, strong key light",
			Tags:               []string{"full body", "character", "costume"},
		},
		TypeCharacterAction: {
			ID:          "char_action",
			Name:        "Character in Action",
			Type:        TypeCharacterAction,
			Description: "Character performing a dynamic action",
			Structure:   "{character_description} {action}, dynamic pose, {motion_effect}, {environment}, {atmosphere}, action shot",
			Variables:   []string{"character_description", "action", "motion_effect", "environment", "atmosphere"},
			Defaults: map[string]string{
				"action":        "in motion",
				"motion_effect": "motion blur",
				"environment":   "dynamic background",
				"atmosphere":    "intense atmosphere",
			},
			ShotSuggestion:     "medium or wide shot for context",
			AngleSuggestion:    "dynamic angle, dutch tilt optional",
			LightingSuggestion: "Dramatic, directional, high contrast",
			Tags:               []string{"action", "dynamic", "movement"},
		},
		TypeCharacterGroup: {
			ID:          "char_group",
			Name:        "Group of Characters",
			Type:        TypeCharacterGroup,
			Description: "Multiple characters in a scene together",
			Structure:   "{characters_description}, group composition, {interaction}, {arrangement}, {environment}, {lighting}, {atmosphere}",
			Variables:   []string{"characters_description", "interaction", "arrangement", "environment", "lighting", "atmosphere"},
			Defaults: map[string]string{
				"interaction": "interacting naturally",
				"arrangement": "balanced composition",
				"environment": "appropriate setting",
				"lighting":    "even lighting",
				"atmosphere":  "cohesive mood",
			},
			ShotSuggestion:     "wide or medium wide shot",
			AngleSuggestion:    "eye level for natural feel",
			LightingSuggestion: "Even lighting to show all characters",
			Tags:               []string{"group", "multiple", "ensemble"},
		},
		TypeSceneEstablishing: {
			ID:          "scene_establish",
			Name:        "Establishing Shot",
			Type:        TypeSceneEstablishing,
			Description: "Wide shot introducing location and setting",
			Structure:   "wide establishing shot of {location}, {time_of_day}, {weather}, {atmosphere}, cinematic, epic scale, {additional_details}",
			Variables:   []string{"location", "time_of_day", "weather", "atmosphere", "additional_details"},
			Defaults: map[string]string{
				"time_of_day":        "golden hour",
				"weather":            "clear sky",
				"atmosphere":         "grand and majestic",
				"additional_details": "detailed environment",
			},
			ShotSuggestion:     "extreme wide shot or wide shot",
			AngleSuggestion:    "high angle or eye level",
			LightingSuggestion: "Natural, atmospheric, emphasizing scale",
			CompositionNotes:   "Show scale, context, and mood of location",
			Tags:               []string{"establishing", "location", "wide"},
		},
		TypeSceneInterior: {
			ID:          "scene_interior",
			Name:        "Interior Scene",
			Type:        TypeSceneInterior,
			Description: "Indoor environment with specific atmosphere",
			Structure:   "interior of {location}, {lighting_type} lighting, {decorations}, {atmosphere}, detailed environment, {architectural_details}",
			Variables:   []string{"location", "lighting_type", "decorations", "atmosphere", "architectural_details"},
			Defaults: map[string]string{
				"lighting_type":         "warm ambient",
				"decorations":           "period-appropriate furnishings",
				"atmosphere":            "immersive atmosphere",
				"architectural_details": "architectural details",
			},
			ShotSuggestion:     "wide interior or medium wide",
			AngleSuggestion:    "eye level, slight low angle for grandeur",
			LightingSuggestion: "Practical lighting sources, ambient fill",
			Tags:               []string{"interior", "indoor", "room"},
		},
		TypeSceneExterior: {
			ID:          "scene_exterior",
			Name:        "Exterior Scene",
			Type:        TypeSceneExterior,
			Description: "Outdoor environment with natural elements",
			Structure:   "exterior view of {location}, {time_of_day}, {weather}, {natural_elements}, {atmosphere}, {lighting}",
			Variables:   []string{"location", "time_of_day", "weather", "natural_elements", "atmosphere", "lighting"},
			Defaults: map[string]string{
				"time_of_day":      "daytime",
				"weather":          "clear",
				"natural_elements": "environmental details",
				"atmosphere":       "natural atmosphere",
				"lighting":         "natural sunlight",
			},
			ShotSuggestion:     "wide or medium wide",
			AngleSuggestion:    "varies by content",
			LightingSuggestion: "Natural lighting based on time of day",
			Tags:               []string{"exterior", "outdoor", "landscape"},
		},
		TypeActionBattle: {
			ID:          "action_battle",
			Name:        "Battle Scene",
			Type:        TypeActionBattle,
			Description: "Combat or battle sequence",
			Structure:   "epic battle scene, {combatants}, {action}, {weapons}, dynamic composition, {effects}, dramatic lighting, {atmosphere}",
			Variables:   []string{"combatants", "action", "weapons", "effects", "atmosphere"},
			Defaults: map[string]string{
				"combatants": "warriors in combat",
				"action":     "fierce fighting",
				"weapons":    "weapons clashing",
				"effects":    "dust and debris, sparks",
				"atmosphere": "intense and chaotic",
			},
			ShotSuggestion:     "dynamic wide or medium shot",
			AngleSuggestion:    "dynamic angle, dutch tilt, low angle",
			LightingSuggestion: "Dramatic, high contrast, directional",
			CompositionNotes:   "Capture peak action moment, show movement",
			Tags:               []string{"battle", "combat", "fight", "war"},
		},
		TypeActionChase: {
			ID:          "action_chase",
			Name:        "Chase Scene",
			Type:        TypeActionChase,
			Description: "Pursuit or chase sequence",
			Structure:   "{pursuer} chasing {target}, high speed action, {environment}, motion blur, {obstacles}, intense atmosphere, dynamic camera angle",
			Variables:   []string{"pursuer", "target", "environment", "obstacles"},
			Defaults: map[string]string{
				"pursuer":     "pursuer",
				"target":      "target fleeing",
				"environment": "urban environment",
				"obstacles":   "environmental obstacles",
			},
			ShotSuggestion:     "tracking shot feel, medium or wide",
			AngleSuggestion:    "dynamic, from behind or side",
			LightingSuggestion: "Motion-enhanced, streaking lights",
			Tags:               []string{"chase", "pursuit", "speed", "action"},
		},
		TypeEmotionalIntimate: {
			ID:          "emotional_intimate",
			Name:        "Intimate Moment",
			Type:        TypeEmotionalIntimate,
			Description: "Close, personal, romantic or tender moment",
			Structure:   "{characters} in intimate moment, {action}, {expressions}, soft lighting, {atmosphere}, romantic, {setting}",
			Variables:   []string{"characters", "action", "expressions", "atmosphere", "setting"},
			Defaults: map[string]string{
				"characters":  "two figures",
				"action":      "close together",
				"expressions": "tender expressions",
				"atmosphere":  "warm and romantic",
				"setting":     "private setting",
			},
			ShotSuggestion:     "close-up or medium close-up",
			AngleSuggestion:    "eye level, intimate perspective",
			LightingSuggestion: "Soft, warm, candlelight, golden hour",
			CompositionNotes:   "Shallow depth of field, focus on connection",
			Tags:               []string{"intimate", "romantic", "tender", "emotional"},
		},
		TypeEmotionalDramatic: {
			ID:          "emotional_dramatic",
			Name:        "Dramatic Moment",
			Type:        TypeEmotionalDramatic,
			Description: "High emotional intensity scene",
			Structure:   "{character} experiencing {emotion}, {expression}, {body_language}, dramatic lighting, {atmosphere}, emotional impact, {environment}",
			Variables:   []string{"character", "emotion", "expression", "body_language", "atmosphere", "environment"},
			Defaults: map[string]string{
				"character":     "figure",
				"emotion":       "intense emotion",
				"expression":    "powerful expression",
				"body_language": "expressive posture",
				"atmosphere":    "emotionally charged",
				"environment":   "contextual setting",
			},
			ShotSuggestion:     "close-up on face, or wide for isolation",
			AngleSuggestion:    "varies - low for power, high for vulnerability",
			LightingSuggestion: "Chiaroscuro, single source, dramatic shadows",
			Tags:               []string{"dramatic", "emotional", "intense", "powerful"},
		},
		TypeDialogueTwoShot: {
			ID:          "dialogue_two_shot",
			Name:        "Dialogue Two-Shot",
			Type:        TypeDialogueTwoShot,
			Description: "Two characters in conversation",
			Structure:   "two-shot of {character1} and {character2}, {interaction}, {expressions}, {location}, {lighting}, conversational atmosphere",
			Variables:   []string{"character1", "character2", "interaction", "expressions", "location", "lighting"},
			Defaults: map[string]string{
				"interaction": "in conversation",
				"expressions": "engaged expressions",
				"location":    "appropriate setting",
				"lighting":    "natural lighting",
			},
			ShotSuggestion:     "medium two-shot",
			AngleSuggestion:    "eye level",
			LightingSuggestion: "Even, natural, shows both faces clearly",
			Tags:               []string{"dialogue", "conversation", "two-shot"},
		},
		TypeDialogueOverShoulder: {
			ID:          "dialogue_ots",
			Name:        "Over-the-Shoulder Shot",
			Type:        TypeDialogueOverShoulder,
			Description: "Dialogue from one character's perspective",
			Structure:   "over-the-shoulder shot, {foreground_character} in foreground, {background_character} facing camera, {expression}, {setting}, {lighting}",
			Variables:   []string{"foreground_character", "background_character", "expression", "setting", "lighting"},
			Defaults: map[string]string{
				"foreground_character": "character's shoulder visible",
				"background_character": "character speaking",
				"expression":           "engaged expression",
				"setting":              "contextual background",
				"lighting":             "natural lighting",
			},
			ShotSuggestion:     "over-the-shoulder medium shot",
			AngleSuggestion:    "eye level, slight angle",
			LightingSuggestion: "Focus light on speaking character",
			Tags:               []string{"dialogue", "over-shoulder", "ots", "conversation"},
		},
		TypeObjectFocus: {
			ID:          "object_focus",
			Name:        "Object Focus",
			Type:        TypeObjectFocus,
			Description: "Focus on a significant object",
			Structure:   "close-up of {object}, {details}, {material}, {lighting}, {background}, {atmosphere}, product photography quality",
			Variables:   []string{"object", "details", "material", "lighting", "background", "atmosphere"},
			Defaults: map[string]string{
				"details":    "intricate details",
				"material":   "visible textures",
				"lighting":   "dramatic lighting",
				"background": "complementary background",
				"atmosphere": "significant atmosphere",
			},
			ShotSuggestion:     "close-up or macro",
			AngleSuggestion:    "hero angle, slight above",
			LightingSuggestion: "Product lighting, highlights details",
			Tags:               []string{"object", "detail", "macro", "focus"},
		},
		TypeAtmospheric: {
			ID:          "atmospheric",
			Name:        "Atmospheric Scene",
			Type:        TypeAtmospheric,
			Description: "Mood and atmosphere focused scene",
			Structure:   "{description}, {atmosphere}, {weather}, {lighting}, mood: {mood}, {environmental_details}, {style}",
			Variables:   []string{"description", "atmosphere", "weather", "lighting", "mood", "environmental_details", "style"},
			Defaults: map[string]string{
				"atmosphere":            "immersive atmosphere",
				"weather":               "atmospheric conditions",
				"lighting":              "moody lighting",
				"mood":                  "evocative",
				"environmental_details": "rich environmental details",
				"style":                 "artistic",
			},
			ShotSuggestion:     "varies by mood",
			AngleSuggestion:    "varies by content",
			LightingSuggestion: "Atmospheric, moody, expressive",
			Tags:               []string{"atmospheric", "mood", "ambiance"},
		},
		TypeAtmosphericWeather: {
			ID:          "atmospheric_weather",
			Name:        "Weather Atmosphere",
			Type:        TypeAtmosphericWeather,
			Description: "Weather-focused atmospheric scene",
			Structure:   "{scene} during {weather}, {weather_effects}, {lighting}, {atmosphere}, {visibility}, dramatic weather",
			Variables:   []string{"scene", "weather", "weather_effects", "lighting", "atmosphere", "visibility"},
			Defaults: map[string]string{
				"scene":           "landscape",
				"weather":         "storm",
				"weather_effects": "rain, wind effects",
				"lighting":        "dramatic stormy light",
				"atmosphere":      "powerful atmosphere",
				"visibility":      "atmospheric perspective",
			},
			ShotSuggestion:     "wide for scale",
			AngleSuggestion:    "varies",
			LightingSuggestion: "Weather-appropriate, dramatic",
			Tags:               []string{"weather", "storm", "rain", "atmosphere"},
		},
	}
}
