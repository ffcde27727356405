// Package feed serializa el catálogo como feed RSS 2.0 con campos de Google Merchant (g:).
package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

var _ ports.ProductFeedBuilder = (*RSSBuilder)(nil)

const googleNS = "http://base.google.com/ns/1.0"

// RSSBuilder implementa ports.ProductFeedBuilder con etree.
type RSSBuilder struct {
	storeName string
	baseURL   string
	currency  string
}

// NewRSSBuilder construye el builder; baseURL es la URL pública del storefront (enlaces de producto).
func NewRSSBuilder(storeName, baseURL string) *RSSBuilder {
	if storeName == "" {
		storeName = "PureGlow"
	}
	return &RSSBuilder{storeName: storeName, baseURL: strings.TrimRight(baseURL, "/"), currency: "INR"}
}

// BuildProductFeed genera el documento XML con un <item> por producto.
func (b *RSSBuilder) BuildProductFeed(products []*entity.Product) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:g", googleNS)

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(b.storeName)
	channel.CreateElement("link").SetText(b.baseURL)
	channel.CreateElement("description").SetText(b.storeName + " product catalog")
	channel.CreateElement("lastBuildDate").SetText(time.Now().UTC().Format(time.RFC1123Z))

	for _, p := range products {
		if p == nil {
			continue
		}
		b.appendItem(channel, p)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out, nil
}

func (b *RSSBuilder) appendItem(channel *etree.Element, p *entity.Product) {
	item := channel.CreateElement("item")
	link := b.baseURL + "/product/" + p.Slug

	item.CreateElement("title").SetText(p.Name)
	item.CreateElement("link").SetText(link)
	item.CreateElement("description").SetText(p.Description)
	item.CreateElement("guid").SetText(link)

	g := func(tag, value string) {
		if value != "" {
			item.CreateElement("g:" + tag).SetText(value)
		}
	}
	g("id", strconv.FormatInt(p.ID, 10))
	g("image_link", p.Image)
	for _, img := range p.Images {
		if img != p.Image {
			g("additional_image_link", img)
		}
	}
	g("brand", b.storeName)
	g("condition", "new")
	g("availability", availability(p))
	if p.OriginalPrice.Valid && p.OriginalPrice.Decimal.GreaterThan(p.Price) {
		g("price", b.price(p.OriginalPrice.Decimal.StringFixed(2)))
		g("sale_price", b.price(p.Price.StringFixed(2)))
	} else {
		g("price", b.price(p.Price.StringFixed(2)))
	}
	if p.Category != nil {
		g("product_type", p.Category.Name)
	}
	g("custom_label_0", p.ProductType)
}

func (b *RSSBuilder) price(amount string) string {
	return amount + " " + b.currency
}

func availability(p *entity.Product) string {
	if p.Stock > 0 {
		return "in_stock"
	}
	return "out_of_stock"
}
