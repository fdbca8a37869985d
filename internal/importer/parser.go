package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts racket spec rows from HTML spec sheets
type Parser struct{}

// NewParser creates a new parser instance
func NewParser() *Parser {
	return &Parser{}
}

// SpecRow is one raw table row keyed by normalized header name
type SpecRow map[string]string

// headerAliases maps spec-sheet column headings to canonical keys.
// Retailer sheets are inconsistent, so common variants are listed.
var headerAliases = map[string]string{
	"name":            "name",
	"model":           "name",
	"racket":          "name",
	"racquet":         "name",
	"brand":           "brand",
	"manufacturer":    "brand",
	"head size":       "head_size",
	"headsize":        "head_size",
	"head":            "head_size",
	"length":          "length",
	"weight":          "weight",
	"unstrung weight": "weight",
	"balance":         "balance",
	"swingweight":     "swingweight",
	"swing weight":    "swingweight",
	"stiffness":       "stiffness",
	"ra":              "stiffness",
	"flex":            "stiffness",
	"string pattern":  "pattern",
	"pattern":         "pattern",
	"beam":            "beam",
	"beam width":      "beam",
	"power":           "power",
	"control":         "control",
	"spin":            "spin",
	"comfort":         "comfort",
	"level":           "level",
}

// Parse reads an HTML document and extracts spec rows from the first
// table whose headers look like a racket spec sheet.
func (p *Parser) Parse(r io.Reader) ([]SpecRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []SpecRow

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		headers := p.parseHeaders(table)
		if !p.looksLikeSpecSheet(headers) {
			return true // keep looking
		}

		table.Find("tbody tr, tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() == 0 {
				return // header row
			}

			row := SpecRow{}
			cells.Each(func(i int, td *goquery.Selection) {
				if i >= len(headers) || headers[i] == "" {
					return
				}
				value := strings.TrimSpace(td.Text())
				if value != "" {
					row[headers[i]] = value
				}
			})
			if len(row) > 0 {
				rows = append(rows, row)
			}
		})

		return false // first matching table wins
	})

	if rows == nil {
		return nil, fmt.Errorf("no racket spec table found")
	}

	return rows, nil
}

// parseHeaders returns the canonical key for each column, "" for columns
// we do not recognize.
func (p *Parser) parseHeaders(table *goquery.Selection) []string {
	var headers []string
	table.Find("th").Each(func(_ int, th *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(th.Text()))
		headers = append(headers, headerAliases[text])
	})
	return headers
}

// looksLikeSpecSheet requires at least a name column plus two spec columns
func (p *Parser) looksLikeSpecSheet(headers []string) bool {
	hasName := false
	specCols := 0
	for _, h := range headers {
		switch h {
		case "":
		case "name":
			hasName = true
		default:
			specCols++
		}
	}
	return hasName && specCols >= 2
}

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// firstNumber extracts the leading number from a cell like "300 g" or
// "100 sq in". The bool reports whether one was found.
func firstNumber(s string) (float64, bool) {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	var v float64
	if _, err := fmt.Sscanf(match, "%f", &v); err != nil {
		return 0, false
	}
	return v, true
}
