package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookContext(t *testing.T) {
	bctx := NewBookContext("book-1")

	assert.Equal(t, "book-1", bctx.BookID)
	assert.Equal(t, "dalle3", bctx.DefaultModel)
	assert.NotNil(t, bctx.Characters)
	assert.NotNil(t, bctx.Scenes)
	assert.NotNil(t, bctx.Objects)
	assert.Zero(t, bctx.Version)
}

func TestBookContext_CaseInsensitiveLookup(t *testing.T) {
	bctx := NewBookContext("book-1")
	bctx.AddCharacter(&CharacterProfile{Name: "Luna", Hair: "silver"})
	bctx.AddScene(&SceneProfile{Name: "Northern Tower"})
	bctx.AddObject(&ObjectProfile{Name: "Amulet"})

	require.NotNil(t, bctx.GetCharacter("luna"))
	require.NotNil(t, bctx.GetCharacter("LUNA"))
	assert.Equal(t, "silver", bctx.GetCharacter("Luna").Hair)
	assert.Nil(t, bctx.GetCharacter("Lun"), "только точное совпадение имени")

	assert.NotNil(t, bctx.GetScene("northern tower"))
	assert.NotNil(t, bctx.GetObject("AMULET"))
	assert.Nil(t, bctx.GetScene("tower"))
}

func TestBookContext_AddRemove(t *testing.T) {
	bctx := NewBookContext("book-1")

	bctx.AddCharacter(&CharacterProfile{Name: "Luna"})
	bctx.AddCharacter(&CharacterProfile{Name: "Luna", Hair: "silver"})
	require.Len(t, bctx.Characters, 1, "повторное добавление обновляет профиль")
	assert.Equal(t, "silver", bctx.GetCharacter("Luna").Hair)

	assert.True(t, bctx.RemoveCharacter("Luna"))
	assert.False(t, bctx.RemoveCharacter("Luna"))
	assert.Nil(t, bctx.GetCharacter("Luna"))

	// Add* работает и на zero value без инициализированных карт
	var empty BookContext
	empty.AddCharacter(&CharacterProfile{Name: "Рон"})
	assert.NotNil(t, empty.GetCharacter("рон"))
}

func TestBookContext_EstablishedAndStats(t *testing.T) {
	bctx := NewBookContext("book-1")
	bctx.AddCharacter(&CharacterProfile{Name: "Luna", IsEstablished: true})
	bctx.AddCharacter(&CharacterProfile{Name: "Рон"})
	bctx.AddScene(&SceneProfile{Name: "Tower"})

	assert.Len(t, bctx.EstablishedCharacters(), 1)
	assert.ElementsMatch(t, []string{"Luna", "Рон"}, bctx.CharacterNames())
	assert.Equal(t, map[string]int{
		"characters":             2,
		"scenes":                 1,
		"objects":                0,
		"established_characters": 1,
	}, bctx.Stats())
}

func TestBookContext_JSONRoundTrip(t *testing.T) {
	bctx := NewBookContext("book-1")
	bctx.DefaultStyle = "fantasy"
	bctx.CurrentChapter = 2
	bctx.CurrentPage = 17
	bctx.Version = 5
	bctx.AddCharacter(&CharacterProfile{
		Name:            "Luna",
		Hair:            "silver",
		GenerationCount: 3,
		IsEstablished:   true,
	})
	bctx.AddObject(&ObjectProfile{Name: "amulet", Colors: []string{"black", "silver"}})

	data, err := json.Marshal(bctx)
	require.NoError(t, err)

	var restored BookContext
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, bctx.BookID, restored.BookID)
	assert.Equal(t, bctx.DefaultStyle, restored.DefaultStyle)
	assert.Equal(t, bctx.Version, restored.Version)
	assert.Equal(t, bctx.CurrentPage, restored.CurrentPage)
	require.NotNil(t, restored.GetCharacter("luna"))
	assert.Equal(t, *bctx.GetCharacter("Luna"), *restored.GetCharacter("Luna"))
	assert.Equal(t, []string{"black", "silver"}, restored.GetObject("amulet").Colors)
}
