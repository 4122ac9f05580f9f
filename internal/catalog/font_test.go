package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontListKeepsInsertionOrder(t *testing.T) {
	list := NewFontList(
		Font{Family: "Lato"},
		Font{Family: "Roboto"},
		Font{Family: "Caveat"},
	)
	assert.Equal(t, []string{"Lato", "Roboto", "Caveat"}, list.Families())
}

func TestFontListAddRejectsDuplicates(t *testing.T) {
	list := NewFontList(Font{Family: "Roboto", Category: "sans-serif"})
	require.False(t, list.Add(Font{Family: "Roboto", Category: "display"}))
	assert.Equal(t, 1, list.Len())

	font, ok := list.Get("Roboto")
	require.True(t, ok)
	assert.Equal(t, "sans-serif", font.Category, "first entry wins")
}

func TestFontListAddRejectsEmptyFamily(t *testing.T) {
	list := NewFontList()
	assert.False(t, list.Add(Font{}))
	assert.Equal(t, 0, list.Len())
}

func TestFontListRemove(t *testing.T) {
	list := NewFontList(Font{Family: "Lato"}, Font{Family: "Roboto"})
	require.True(t, list.Remove("Lato"))
	assert.Equal(t, []string{"Roboto"}, list.Families())
	assert.False(t, list.Remove("Lato"))
}

func TestFontListCloneIsIndependent(t *testing.T) {
	list := NewFontList(Font{Family: "Lato"})
	clone := list.Clone()
	clone.Add(Font{Family: "Roboto"})
	assert.Equal(t, 1, list.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestNilFontListReads(t *testing.T) {
	var list *FontList
	assert.Equal(t, 0, list.Len())
	assert.Nil(t, list.Families())
	assert.False(t, list.Has("Roboto"))
	_, ok := list.Get("Roboto")
	assert.False(t, ok)
	assert.Equal(t, 0, list.Clone().Len())
}
