package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestServiceFilterQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, ServiceFilter{}.Query(), "zero filter matches everything")

	query := ServiceFilter{Category: "Plumber"}.Query()
	assert.Equal(t, bson.M{"category": "Plumber"}, query)

	query = ServiceFilter{Location: "Accra"}.Query()
	loc, ok := query["location"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "Accra", loc.Pattern)
	assert.Equal(t, "i", loc.Options)

	query = ServiceFilter{Search: "pipe (urgent)"}.Query()
	or, ok := query["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	title, ok := or[0].(bson.M)["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `pipe \(urgent\)`, title.Pattern, "user input is quoted, not treated as a pattern")
}

func TestServiceFilterSortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, ServiceFilter{Sort: SortPriceLow}.SortSpec())
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, ServiceFilter{Sort: SortPriceHigh}.SortSpec())
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, ServiceFilter{}.SortSpec())
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, ServiceFilter{Sort: "alphabetical"}.SortSpec())
}

func TestValidServiceCategory(t *testing.T) {
	for _, category := range ServiceCategories {
		assert.True(t, ValidServiceCategory(category), category)
	}
	assert.False(t, ValidServiceCategory("plumber"), "categories are case-sensitive")
	assert.False(t, ValidServiceCategory(""))
}
