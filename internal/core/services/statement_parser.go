package services

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/financasapp/financas_backend/internal/core/domain"
	"github.com/financasapp/financas_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// placeholderDescription is used when a statement entry carries no usable text.
const placeholderDescription = "Transação importada"

// suggestFunc resolves a description to a suggested category ID.
type suggestFunc func(description string) string

var (
	ofxAmountRe = regexp.MustCompile(`(?i)<TRNAMT>\s*([^<\r\n]+)`)
	ofxDateRe   = regexp.MustCompile(`(?i)<DTPOSTED>\s*([^<\r\n]+)`)
	ofxMemoRe   = regexp.MustCompile(`(?i)<MEMO>\s*([^<\r\n]+)`)
	ofxNameRe   = regexp.MustCompile(`(?i)<NAME>\s*([^<\r\n]+)`)

	ofxDigits = regexp.MustCompile(`^\d{8}$`)
)

// parseOFX converts OFX statement content into candidates. Each transaction
// block is processed independently: a malformed block is logged and skipped,
// never fatal. Blocks missing amount or date are dropped silently, since OFX
// files contain non-transaction blocks.
func parseOFX(logger *slog.Logger, content string, suggest suggestFunc) []domain.ParsedCandidate {
	blocks := strings.Split(content, "<STMTTRN>")
	if len(blocks) < 2 {
		return nil
	}

	candidates := make([]domain.ParsedCandidate, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		candidate, ok := parseOFXBlock(block, suggest)
		if !ok {
			logger.Debug("Skipping OFX block without amount or date")
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func parseOFXBlock(block string, suggest suggestFunc) (domain.ParsedCandidate, bool) {
	amountMatch := ofxAmountRe.FindStringSubmatch(block)
	dateMatch := ofxDateRe.FindStringSubmatch(block)
	if amountMatch == nil || dateMatch == nil {
		return domain.ParsedCandidate{}, false
	}

	amount, err := parseStatementAmount(amountMatch[1])
	if err != nil {
		return domain.ParsedCandidate{}, false
	}

	// DTPOSTED carries YYYYMMDD in its first 8 characters, possibly followed
	// by a time and timezone suffix.
	rawDate := strings.TrimSpace(dateMatch[1])
	if len(rawDate) < 8 {
		return domain.ParsedCandidate{}, false
	}
	digits := rawDate[:8]
	if !ofxDigits.MatchString(digits) {
		return domain.ParsedCandidate{}, false
	}
	date, err := time.Parse("20060102", digits)
	if err != nil {
		return domain.ParsedCandidate{}, false
	}

	description := ""
	if m := ofxMemoRe.FindStringSubmatch(block); m != nil {
		description = strings.TrimSpace(m[1])
	}
	if description == "" {
		if m := ofxNameRe.FindStringSubmatch(block); m != nil {
			description = strings.TrimSpace(m[1])
		}
	}
	if description == "" {
		description = placeholderDescription
	}

	txType := domain.Income
	if amount.IsNegative() {
		txType = domain.Expense
	}

	return domain.ParsedCandidate{
		TempID:      uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount.Abs(),
		Type:        txType,
		CategoryID:  suggest(description),
	}, true
}

// parseCSV converts CSV statement content into candidates using the supplied
// column mapping. Rows that fail to yield a valid date or amount are skipped,
// which also filters out header rows; a single bad row never aborts the file.
func parseCSV(logger *slog.Logger, content string, mapping dto.CSVColumnMapping, suggest suggestFunc) []domain.ParsedCandidate {
	maxIndex := mapping.DateIndex
	if mapping.DescIndex > maxIndex {
		maxIndex = mapping.DescIndex
	}
	if mapping.AmountIndex > maxIndex {
		maxIndex = mapping.AmountIndex
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	candidates := make([]domain.ParsedCandidate, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := splitCSVLine(line)
		if len(cells) <= maxIndex {
			logger.Debug("Skipping CSV row with too few columns", slog.Int("columns", len(cells)))
			continue
		}

		date, err := parseCSVDate(cells[mapping.DateIndex])
		if err != nil {
			// Header rows land here: a non-date value fails parsing.
			logger.Debug("Skipping CSV row with unparseable date", slog.String("value", cells[mapping.DateIndex]))
			continue
		}

		amount, err := parseStatementAmount(cells[mapping.AmountIndex])
		if err != nil {
			logger.Debug("Skipping CSV row with unparseable amount", slog.String("value", cells[mapping.AmountIndex]))
			continue
		}

		description := strings.TrimSpace(cells[mapping.DescIndex])
		if description == "" {
			description = placeholderDescription
		}

		txType := domain.Income
		if amount.IsNegative() {
			txType = domain.Expense
		}

		candidates = append(candidates, domain.ParsedCandidate{
			TempID:      uuid.NewString(),
			Date:        date,
			Description: description,
			Amount:      amount.Abs(),
			Type:        txType,
			CategoryID:  suggest(description),
		})
	}
	return candidates
}

// splitCSVLine splits a line on commas not enclosed in quote pairs, then
// strips wrapping quotes and surrounding whitespace per cell. Hand-rolled
// instead of encoding/csv so one unbalanced row cannot abort the file.
func splitCSVLine(line string) []string {
	var (
		cells    []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			cells = append(cells, cleanCSVCell(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	cells = append(cells, cleanCSVCell(current.String()))
	return cells
}

func cleanCSVCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
		cell = cell[1 : len(cell)-1]
		cell = strings.ReplaceAll(cell, `""`, `"`)
	}
	return strings.TrimSpace(cell)
}

// csvDateLayouts are tried in order for dates that do not match the
// DD/MM/YYYY convention.
var csvDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
	"20060102",
}

// parseCSVDate parses a statement date. Slash-separated values with a
// four-digit third segment are treated as DD/MM/YYYY; everything else goes
// through the generic layout list.
func parseCSVDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 && len(parts[2]) == 4 {
			return time.Parse("02/01/2006", s)
		}
	}

	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseStatementAmount parses a localized monetary string. All characters
// except digits, '.', ',' and '-' are stripped first. When both ',' and '.'
// are present, the rightmost one is the decimal separator (disambiguating
// European 1.234,56 from US 1,234.56); a lone ',' is always the decimal
// separator.
func parseStatementAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, fmt.Errorf("no numeric content in %q", raw)
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return value, nil
}
