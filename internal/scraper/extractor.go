package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rowSelectors is the fallback chain for locating listing rows, most
// specific first. The first selector with any matches wins exclusively;
// results are never merged across selectors, otherwise the final "tbody tr"
// catch-all would drown specific boards in navigation rows.
var rowSelectors = []string{
	"table tbody tr",
	".board-list tbody tr",
	".list tbody tr",
	".notice-list li",
	".board tbody tr",
	".tbl tbody tr",
	".board_list tbody tr",
	".bbs-list-body tr",
	".board_type01 tbody tr",
	".notice_list li",
	".board_list tr",
	".list_table tbody tr",
	"tbody tr",
}

type Scraper struct{}

func NewScraper() *Scraper {
	return &Scraper{}
}

// ExtractRows parses the page and returns candidate listing rows from the
// first selector in the chain that matches anything. A page matching no
// selector yields zero rows, not an error.
func (s *Scraper) ExtractRows(html string) ([]*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range rowSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}
		rows := make([]*goquery.Selection, 0, matches.Length())
		matches.Each(func(_ int, row *goquery.Selection) {
			rows = append(rows, row)
		})
		return rows, nil
	}

	return nil, nil
}

// ResolveDetailURL finds the row's detail link and absolutizes it against
// the board URL. Empty when the row carries no anchor.
func (s *Scraper) ResolveDetailURL(row *goquery.Selection, boardURL string) string {
	href, exists := row.Find("a").First().Attr("href")
	if !exists {
		return ""
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return boardURL + href
}
