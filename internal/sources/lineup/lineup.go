// Package lineup scrapes the public figure lineup page into listings. The
// page is a grid of detail links; each link carries the display name in an
// aria-label, a product image, and a handful of paragraph tags holding the
// series name and an announced availability date.
package lineup

import (
	"bytes"
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/figtrack/figtrack/internal/transport"
	"github.com/figtrack/figtrack/pkg/catalogs"
	"github.com/figtrack/figtrack/pkg/errors"
	"github.com/figtrack/figtrack/pkg/logging"
)

// Scraper fetches and parses the lineup page.
type Scraper struct {
	url    string
	client *transport.Client
}

// New creates a scraper for the given lineup URL.
func New(pageURL string, client *transport.Client) *Scraper {
	return &Scraper{url: pageURL, client: client}
}

// Ingest fetches the lineup page and extracts its listings. Fetch and
// parse failures are IngestionErrors; individual malformed items are
// skipped with a warning and never fail the whole page.
func (s *Scraper) Ingest(ctx context.Context) ([]catalogs.Listing, error) {
	body, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, errors.NewIngestionError("lineup", "fetch failed", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewIngestionError("lineup", "page did not parse as HTML", err)
	}

	base, err := url.Parse(s.url)
	if err != nil {
		return nil, errors.NewIngestionError("lineup", "invalid lineup URL", err)
	}

	listings := parse(ctx, doc, base)
	logging.Ctx(ctx).Info().
		Str("url", s.url).
		Int("listings", len(listings)).
		Msg("Scraped lineup page")
	return listings, nil
}

// parse walks the detail links and builds one listing per well-formed
// item.
func parse(ctx context.Context, doc *goquery.Document, base *url.URL) []catalogs.Listing {
	log := logging.Ctx(ctx)

	var listings []catalogs.Listing
	doc.Find(`a[href*="/detail/"]`).Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("aria-label")
		if !ok || name == "" {
			href, _ := sel.Attr("href")
			log.Warn().Str("href", href).Msg("Detail link without a name, skipped")
			return
		}

		listing := catalogs.Listing{Name: name}

		if src := imageSource(sel); src != "" {
			listing.Image = absolutize(base, src)
		}

		sel.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
			text := trimText(p)
			if text == "" {
				return true
			}
			if listing.Series == "" && mentionsSeries(text) {
				listing.Series = cleanSeries(text)
				return true
			}
			if listing.ReleaseDate == "" && containsDate(text) {
				listing.ReleaseDate = parseDate(text)
			}
			return true
		})

		listings = append(listings, listing)
	})

	return listings
}

// imageSource prefers the eager src and falls back to the lazy-loading
// data-src the page uses below the fold.
func imageSource(sel *goquery.Selection) string {
	img := sel.Find("img").First()
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	return ""
}

func absolutize(base *url.URL, src string) string {
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
