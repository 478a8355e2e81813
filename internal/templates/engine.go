package templates

import (
	"regexp"
	"sort"
	"strings"
)

var (
	placeholderRe  = regexp.MustCompile(`\{[^}]+\}`)
	doubleCommaRe  = regexp.MustCompile(`,\s*,`)
	multiSpacesRe  = regexp.MustCompile(`\s+`)
	sceneTypeTable = map[string]Type{
		"establishing":    TypeSceneEstablishing,
		"character_intro": TypeCharacterPortrait,
		"action":          TypeCharacterAction,
		"dialogue":        TypeDialogueTwoShot,
		"emotional":       TypeEmotionalDramatic,
		"revelation":      TypeEmotionalDramatic,
		"atmospheric":     TypeAtmospheric,
		"object_focus":    TypeObjectFocus,
		"battle":          TypeActionBattle,
		"intimate":        TypeEmotionalIntimate,
		"horror":          TypeAtmospheric,
		"death":           TypeEmotionalDramatic,
		"chase":           TypeActionChase,
		"celebration":     TypeCharacterGroup,
		"mystery":         TypeAtmospheric,
	}
)

// Engine хранит каталог шаблонов и заполняет их переменными.
type Engine struct {
	templates map[Type]Template
}

func NewEngine() *Engine {
	return &Engine{templates: builtinTemplates()}
}

// Template возвращает шаблон по типу.
func (e *Engine) Template(t Type) (Template, bool) {
	tpl, ok := e.templates[t]
	return tpl, ok
}

// ForSceneType подбирает шаблон по типу сцены из анализа текста.
// Неизвестный тип сцены получает атмосферный шаблон.
func (e *Engine) ForSceneType(sceneType string) Template {
	t, ok := sceneTypeTable[strings.ToLower(sceneType)]
	if !ok {
		t = TypeAtmospheric
	}
	return e.templates[t]
}

// Fill заполняет шаблон переменными. При useDefaults отсутствующие
// переменные берутся из значений по умолчанию; незаполненные плейсхолдеры
// удаляются, двойные запятые и лишние пробелы схлопываются.
func (e *Engine) Fill(tpl Template, variables map[string]string, useDefaults bool) string {
	result := tpl.Structure

	allVars := make(map[string]string)
	if useDefaults {
		for k, v := range tpl.Defaults {
			allVars[k] = v
		}
	}
	for k, v := range variables {
		allVars[k] = v
	}

	for name, value := range allVars {
		result = strings.ReplaceAll(result, "{"+name+"}", value)
	}

	result = placeholderRe.ReplaceAllString(result, "")
	result = doubleCommaRe.ReplaceAllString(result, ",")
	result = multiSpacesRe.ReplaceAllString(result, " ")
	result = strings.Trim(result, " ,")

	return result
}

// FillBySceneType подбирает шаблон по типу сцены и заполняет его.
func (e *Engine) FillBySceneType(sceneType string, variables map[string]string) string {
	return e.Fill(e.ForSceneType(sceneType), variables, true)
}

// Suggestions возвращает рекомендации по композиции для типа шаблона.
func (e *Engine) Suggestions(t Type) CompositionSuggestions {
	tpl, ok := e.templates[t]
	if !ok {
		return CompositionSuggestions{}
	}
	return CompositionSuggestions{
		Shot:     tpl.ShotSuggestion,
		Angle:    tpl.AngleSuggestion,
		Lighting: tpl.LightingSuggestion,
		Notes:    tpl.CompositionNotes,
	}
}

// List возвращает краткие описания всех шаблонов, отсортированные по ID.
func (e *Engine) List() []Info {
	result := make([]Info, 0, len(e.templates))
	for _, tpl := range e.templates {
		result = append(result, Info{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Type:        tpl.Type,
			Description: tpl.Description,
			Variables:   tpl.Variables,
			Tags:        tpl.Tags,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Search ищет шаблоны по подстроке в названии, описании и тегах.
func (e *Engine) Search(query string) []Template {
	queryLower := strings.ToLower(query)
	var result []Template
	for _, tpl := range e.templates {
		match := strings.Contains(strings.ToLower(tpl.Name), queryLower) ||
			strings.Contains(strings.ToLower(tpl.Description), queryLower)
		if !match {
			for _, tag := range tpl.Tags {
				if strings.Contains(tag, queryLower) {
					match = true
					break
				}
			}
		}
		if match {
			result = append(result, tpl)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
