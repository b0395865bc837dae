package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ── PDF text extraction ──────────────────────────────────────
//
// Production order PDFs carry one option line per visual row. The extractor
// reconstructs those rows from positioned text fragments:
//   - per page, fragments are sorted by descending Y (top of page first)
//   - fragments whose Y differs by less than lineYThreshold belong to the
//     same visual line and are joined with single spaces
//   - lines are joined with newlines, pages are concatenated
//
// A page whose content stream cannot be walked degrades to the fragments in
// document order; it never fails the whole document.
// ─────────────────────────────────────────────────────────────

const lineYThreshold = 5.0

// ExtractOrderText pulls the line-structured text out of a production order
// PDF. Returns an error only when the document itself is unreadable.
func ExtractOrderText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		if text := extractPageText(p); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n"), nil
}

// extractPageText renders one page. Content() panics on malformed content
// streams; such a page contributes nothing rather than aborting the document.
func extractPageText(p pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	frags := p.Content().Text
	if len(frags) == 0 {
		return ""
	}
	return groupFragmentLines(frags)
}

// groupFragmentLines joins positioned fragments into visual lines.
func groupFragmentLines(frags []pdf.Text) string {
	sorted := make([]pdf.Text, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines []string
	var line []string
	lineY := sorted[0].Y

	flush := func() {
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = line[:0]
		}
	}

	for _, f := range sorted {
		s := strings.TrimSpace(f.S)
		if s == "" {
			continue
		}
		if diff := lineY - f.Y; diff >= lineYThreshold || diff <= -lineYThreshold {
			flush()
			lineY = f.Y
		}
		line = append(line, s)
	}
	flush()

	return strings.Join(lines, "\n")
}
