package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImagesState(t *testing.T) {
	items, err := ParseImagesState(`[{"url":"/uploads/a.jpg","isMain":true},{"newIndex":0}]`)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].URL)
	assert.Equal(t, "/uploads/a.jpg", *items[0].URL)
	assert.True(t, items[0].IsMain)
	assert.Nil(t, items[0].NewIndex)

	require.NotNil(t, items[1].NewIndex)
	assert.Equal(t, 0, *items[1].NewIndex)
	assert.Nil(t, items[1].URL)
}

func TestParseImagesStateEmptyVsMalformed(t *testing.T) {
	items, err := ParseImagesState("")
	require.NoError(t, err)
	assert.Nil(t, items)

	_, err = ParseImagesState("{bozuk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imagesState")
}

func TestParseVariants(t *testing.T) {
	specs, err := ParseVariants(`[{"color":"Kırmızı","colorHex":"#ff0000","sizeStocks":[{"size":"S","stock":2}],"images":["/uploads/x.jpg","yeni-dosya"]}]`)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "Kırmızı", specs[0].Color)
	assert.Equal(t, "#ff0000", specs[0].ColorHex)
	assert.Len(t, specs[0].Images, 2)

	_, err = ParseVariants("[{")
	assert.Error(t, err)
}

func TestParseSizeStocksDropsBlankSizes(t *testing.T) {
	rows, err := ParseSizeStocks(`[{"size":"S","stock":1},{"size":"  ","stock":5}]`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "S", rows[0].Size)
}

func TestParseIntListNamesFieldInError(t *testing.T) {
	list, err := ParseIntList("variantImageIndexes", "[0,0,1]")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, list)

	_, err = ParseIntList("variantImageCounts", "hayır")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variantImageCounts")
}
