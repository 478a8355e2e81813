package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ForSceneType(t *testing.T) {
	engine := NewEngine()

	testCases := []struct {
		sceneType string
		wantID    string
	}{
		{"establishing", "scene_establish"},
		{"character_intro", "char_portrait"},
		{"battle", "action_battle"},
		{"Dialogue", "dialogue_two_shot"},
		{"death", "emotional_dramatic"},
		{"celebration", "char_group"},
		{"unknown_type", "atmospheric"},
		{"", "atmospheric"},
	}

	for _, tc := range testCases {
		t.Run(tc.sceneType, func(t *testing.T) {
			assert.Equal(t, tc.wantID, engine.ForSceneType(tc.sceneType).ID)
		})
	}
}

func TestEngine_FillWithDefaults(t *testing.T) {
	engine := NewEngine()
	tpl, ok := engine.Template(TypeCharacterPortrait)
	require.True(t, ok)

	result := engine.Fill(tpl, map[string]string{
		"character_description": "young woman with silver hair",
		"expression":            "determined expression",
	}, true)

	assert.Contains(t, result, "young woman with silver hair, determined expression")
	// Незаданные переменные берутся из дефолтов
	assert.Contains(t, result, "soft studio lighting")
	assert.NotContains(t, result, "{")
}

func TestEngine_FillWithoutDefaults(t *testing.T) {
	engine := NewEngine()
	tpl, ok := engine.Template(TypeCharacterPortrait)
	require.True(t, ok)

	result := engine.Fill(tpl, map[string]string{
		"character_description": "old sailor",
	}, false)

	// Пустые плейсхолдеры удаляются, пары запятых схлопываются за один проход
	assert.Equal(t, "old sailor, , portrait shot", result)
}

func TestEngine_FillEmptyValueRemovesPlaceholder(t *testing.T) {
	engine := NewEngine()
	tpl, ok := engine.Template(TypeCharacterFullBody)
	require.True(t, ok)

	result := engine.Fill(tpl, map[string]string{
		"character_description": "knight in armor",
	}, true)

	// Дефолт action пустой - двойная запятая после него должна исчезнуть
	assert.NotContains(t, result, ", ,")
	assert.Contains(t, result, "knight in armor, full body shot")
}

func TestEngine_FillBySceneType(t *testing.T) {
	engine := NewEngine()

	result := engine.FillBySceneType("chase", map[string]string{
		"pursuer": "masked rider",
		"target":  "carriage",
	})

	assert.Contains(t, result, "masked rider chasing carriage")
	assert.Contains(t, result, "motion blur")
}

func TestEngine_Suggestions(t *testing.T) {
	engine := NewEngine()

	s := engine.Suggestions(TypeSceneEstablishing)
	assert.Equal(t, "extreme wide shot or wide shot", s.Shot)
	assert.Equal(t, "Show scale, context, and mood of location", s.Notes)

	assert.Equal(t, CompositionSuggestions{}, engine.Suggestions(Type("missing")))
}

func TestEngine_ListAndSearch(t *testing.T) {
	engine := NewEngine()

	assert.Len(t, engine.List(), 16)

	found := engine.Search("conversation")
	ids := make([]string, 0, len(found))
	for _, tpl := range found {
		ids = append(ids, tpl.ID)
	}
	assert.Contains(t, ids, "dialogue_two_shot")
	assert.Contains(t, ids, "dialogue_ots")
}
