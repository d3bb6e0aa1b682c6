package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPortfolio() *Portfolio {
	return &Portfolio{
		UserName: "alice",
		Collections: []Collection{
			{ID: "c1", Name: "Web", Cards: []Card{
				{ID: "k1", Body: "first"},
				{ID: "k2", Body: "second"},
				{ID: "k3", Body: "third"},
			}},
			{ID: "c2", Name: "Mobile"},
		},
	}
}

func TestPortfolio_FindCollection(t *testing.T) {
	t.Parallel()

	p := testPortfolio()

	c := p.FindCollection("c2")
	require.NotNil(t, c)
	assert.Equal(t, "Mobile", c.Name)

	assert.Nil(t, p.FindCollection("missing"))

	// Возвращается указатель на элемент: мутация видна в документе
	c.Name = "Renamed"
	assert.Equal(t, "Renamed", p.Collections[1].Name)
}

func TestPortfolio_RemoveCollection(t *testing.T) {
	t.Parallel()

	p := testPortfolio()

	assert.False(t, p.RemoveCollection("missing"))
	assert.Len(t, p.Collections, 2)

	assert.True(t, p.RemoveCollection("c1"))
	require.Len(t, p.Collections, 1)
	assert.Equal(t, "c2", p.Collections[0].ID)
}

// Замена трогает ровно одну карточку: id и позиция сохраняются,
// соседи и их порядок не меняются
func TestCollection_ReplaceCard(t *testing.T) {
	t.Parallel()

	p := testPortfolio()
	c := p.FindCollection("c1")
	require.NotNil(t, c)

	ok := c.ReplaceCard("k2", Card{ID: "ignored", Body: "updated", Color: "red"})
	require.True(t, ok)

	require.Len(t, c.Cards, 3)
	assert.Equal(t, []string{"k1", "k2", "k3"}, []string{c.Cards[0].ID, c.Cards[1].ID, c.Cards[2].ID})
	assert.Equal(t, "updated", c.Cards[1].Body)
	assert.Equal(t, "red", c.Cards[1].Color)
	assert.Equal(t, "first", c.Cards[0].Body)
	assert.Equal(t, "third", c.Cards[2].Body)

	assert.False(t, c.ReplaceCard("missing", Card{}))
}

func TestCollection_RemoveCard(t *testing.T) {
	t.Parallel()

	p := testPortfolio()
	c := p.FindCollection("c1")
	require.NotNil(t, c)

	assert.False(t, c.RemoveCard("missing"))

	assert.True(t, c.RemoveCard("k2"))
	require.Len(t, c.Cards, 2)
	assert.Equal(t, "k1", c.Cards[0].ID)
	assert.Equal(t, "k3", c.Cards[1].ID)
}
