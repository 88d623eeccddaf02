package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSelectors is the fallback chain for the title inside a row:
// dedicated title/subject elements, then positional columns, then anchors
// whose target looks like a detail view, then anything.
var titleSelectors = []string{
	".title a",
	".subject a",
	"td:nth-child(2) a",
	"td:nth-child(3) a",
	".tit a",
	`a[href*="view"]`,
	`a[href*="detail"]`,
	"td a",
	"td:first-child + td a",
	".subject",
	"td:nth-child(2)",
	"td:nth-child(3)",
}

const personnelLabel = "[인사]"

// personnelTitleRe captures the text after the personnel label up to the
// next date-like token ("2024.03.15" or "03.15") or end of line.
var personnelTitleRe = regexp.MustCompile(`\[인사\]\s*(.+?)(?:\s+\d{2,4}\.\d{1,2}(?:\.\d{1,2})?\s*|$)`)

// ResolveTitle extracts a human-readable title from a listing row. The
// personnel-label profile is tried first where configured; rows that carry
// no label still fall back to the default chain because those boards mix
// labeled and plain rows.
func (s *Scraper) ResolveTitle(row *goquery.Selection, profile Profile) string {
	if profile == ProfilePersonnelLabel {
		if title := resolvePersonnelTitle(row); title != "" {
			return title
		}
	}
	return firstSelectorText(row, titleSelectors)
}

func firstSelectorText(row *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		el := row.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			return text
		}
	}
	return ""
}

// resolvePersonnelTitle handles boards whose rows have no title column and
// instead tag recruitment rows with "[인사]" in free-form text.
func resolvePersonnelTitle(row *goquery.Selection) string {
	// A cell carrying the label is the title, minus any trailing date.
	var cellTitle string
	row.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := strings.TrimSpace(cell.Text())
		if strings.Contains(text, personnelLabel) {
			cellTitle = trimPersonnelDate(text)
			return false
		}
		return true
	})
	if cellTitle != "" {
		return cellTitle
	}

	fullText := strings.TrimSpace(row.Text())
	if strings.Contains(fullText, personnelLabel) {
		if m := personnelTitleRe.FindStringSubmatch(fullText); m != nil {
			return personnelLabel + " " + strings.TrimSpace(m[1])
		}
	}

	// Detail-view anchor whose text carries the label.
	var anchorTitle string
	row.Find(`a[href*="noticeView"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := strings.TrimSpace(link.Text())
		if strings.Contains(text, personnelLabel) {
			anchorTitle = trimPersonnelDate(text)
			return false
		}
		return true
	})
	if anchorTitle != "" {
		return anchorTitle
	}

	if strings.Contains(fullText, personnelLabel) {
		return trimPersonnelDate(fullText)
	}

	return ""
}

// trimPersonnelDate strips the trailing listing date from label-bearing
// text so the stored title is stable across days.
func trimPersonnelDate(text string) string {
	if m := personnelTitleRe.FindStringSubmatch(text); m != nil {
		return personnelLabel + " " + strings.TrimSpace(m[1])
	}
	return text
}
