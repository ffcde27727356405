package feed

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

func TestBuildProductFeed_ItemsConCamposGoogle(t *testing.T) {
	products := []*entity.Product{
		{
			ID: 7, Name: "Rose Face Oil", Slug: "rose-face-oil", Description: "Glow & care",
			Price:         decimal.RequireFromString("799"),
			OriginalPrice: decimal.NewNullDecimal(decimal.RequireFromString("999")),
			Image:         "https://img/rose.jpg",
			Images:        []string{"https://img/rose.jpg", "https://img/rose-2.jpg"},
			Stock:         3,
			Category:      &entity.Category{Name: "Skincare"},
		},
		{ID: 8, Name: "Neem Tablets", Slug: "neem-tablets", Price: decimal.RequireFromString("249.5")},
	}

	out, err := NewRSSBuilder("PureGlow", "https://shop.example.com/").BuildProductFeed(products)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	items := doc.FindElements("//channel/item")
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "https://shop.example.com/product/rose-face-oil", first.SelectElement("link").Text())
	assert.Equal(t, "999.00 INR", first.SelectElement("g:price").Text())
	assert.Equal(t, "799.00 INR", first.SelectElement("g:sale_price").Text())
	assert.Equal(t, "in_stock", first.SelectElement("g:availability").Text())
	assert.Equal(t, "Skincare", first.SelectElement("g:product_type").Text())
	require.Len(t, first.SelectElements("g:additional_image_link"), 1)

	second := items[1]
	assert.Equal(t, "249.50 INR", second.SelectElement("g:price").Text())
	assert.Nil(t, second.SelectElement("g:sale_price"))
	assert.Equal(t, "out_of_stock", second.SelectElement("g:availability").Text())
}

func TestBuildProductFeed_CatalogoVacio(t *testing.T) {
	out, err := NewRSSBuilder("", "").BuildProductFeed(nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `xmlns:g="http://base.google.com/ns/1.0"`)
	assert.Contains(t, string(out), "<title>PureGlow</title>")
}
