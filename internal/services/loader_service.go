package services

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/vdhanush11/medical-billing-denial-analysis/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Loader tuning constants. The alias tables and thresholds are fixed in code
// rather than configurable: the headers billing systems emit change with
// integrations, not deployments.
const (
	headerScanLimit     = 20
	minHeaderCells      = 2
	aliasMatchThreshold = 0.70
	csvReaderBufferSize = 256 * 1024
)

// Loader errors. Schema errors mean the file parsed but its columns cannot
// satisfy the canonical schema; parse errors mean the file itself is unusable.
var (
	ErrSchemaCPTUnresolved        = errors.New("no CPT code column could be resolved")
	ErrSchemaDenialFlagUnresolved = errors.New("no denial reason or payment column could be resolved")
	ErrSchemaHeaderNotFound       = errors.New("no plausible header row found")
	ErrMalformedFile              = errors.New("file could not be parsed")
	ErrUnsupportedFormat          = errors.New("unsupported file format")
	ErrEmptyDataset               = errors.New("no claim rows after normalization")
)

// fieldAliases lists, per canonical field, the cleaned header names that bind
// to it. Exact hits are tried in order before any fuzzy scoring.
var fieldAliases = map[models.CanonicalField][]string{
	models.FieldCPTCode:       {"cpt_code", "cpt", "procedure_code", "proc_code", "hcpcs_code", "hcpcs", "service_code", "procedure", "code"},
	models.FieldDenialReason:  {"denial_reason", "denial_reason_code", "reason_for_denial", "denial_code", "denial_description", "reason"},
	models.FieldPayer:         {"insurance_company", "payer", "payer_name", "insurance", "health_plan", "carrier", "plan_name"},
	models.FieldProvider:      {"physician_name", "provider", "provider_name", "rendering_provider", "physician", "doctor", "attending_provider"},
	models.FieldBilledAmount:  {"balance", "billed_amount", "charge_amount", "charges", "billed", "amount_billed", "total_charge", "amount"},
	models.FieldPaymentAmount: {"payment_amount", "payment", "paid_amount", "amount_paid", "payments", "paid"},
	models.FieldDenialDate:    {"denial_date", "date_of_service", "service_date", "dos", "date_of_denial", "date"},
}

// denialDateLayouts are tried in order; the first layout that parses wins.
// The last entry is the short date format Excel renders by default.
var denialDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"01-02-06",
}

type loaderService struct{}

// NewLoaderService creates a new claims file loader
func NewLoaderService() LoaderServiceInterface {
	return &loaderService{}
}

// LoadClaims parses an uploaded claims export and normalizes it against the
// canonical schema. The file format is chosen by extension: CSV variants are
// streamed, Excel workbooks are read from their first sheet.
func (s *loaderService) LoadClaims(fileName string, r io.Reader) (*models.NormalizedClaims, error) {
	rows, err := s.readRows(fileName, r)
	if err != nil {
		return nil, err
	}

	headerIdx, header := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: scanned first %d rows", ErrSchemaHeaderNotFound, headerScanLimit)
	}

	mapping := resolveColumns(header)
	mapping.HeaderRow = headerIdx + 1

	if !mapping.HasField(models.FieldCPTCode) {
		return nil, fmt.Errorf("%w (headers: %s)", ErrSchemaCPTUnresolved, joinHeaders(header))
	}
	if !mapping.HasField(models.FieldDenialReason) && !mapping.HasField(models.FieldPaymentAmount) {
		return nil, fmt.Errorf("%w (headers: %s)", ErrSchemaDenialFlagUnresolved, joinHeaders(header))
	}

	claims, skipped := normalizeRows(rows[headerIdx+1:], headerIdx+2, mapping)
	if len(claims) == 0 {
		return nil, fmt.Errorf("%w (file %s)", ErrEmptyDataset, fileName)
	}

	slog.Info("claims file normalized",
		"file_name", fileName,
		"header_row", mapping.HeaderRow,
		"rows", len(claims),
		"skipped_rows", skipped,
		"bound_fields", len(mapping.Bindings),
		"unmapped_columns", len(mapping.Unmapped),
	)

	return &models.NormalizedClaims{
		Claims:      claims,
		Mapping:     *mapping,
		SkippedRows: skipped,
	}, nil
}

// readRows materializes the file into a row grid regardless of source format.
func (s *loaderService) readRows(fileName string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		return readCSVRows(r)
	case ".xlsx", ".xlsm":
		return readExcelRows(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}

// readCSVRows streams the file through a forgiving CSV reader. Billing
// exports routinely carry a UTF-8 BOM, ragged row lengths and stray quotes.
func readCSVRows(r io.Reader) ([][]string, error) {
	buffered := bufio.NewReaderSize(r, csvReaderBufferSize)
	if b, _ := buffered.Peek(3); len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = buffered.Discard(3)
	}

	reader := csv.NewReader(buffered)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// readExcelRows reads the first sheet of an Excel workbook. Cell values come
// back formatted, so dates and currency pass through the same coercions as
// CSV text.
func readExcelRows(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedFile)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	return rows, nil
}

// findHeaderRow sniffs for the header: the first row within the scan limit
// carrying at least two non-empty cells. Exports often lead with title or
// report-date banner rows that must be skipped.
func findHeaderRow(rows [][]string) (int, []string) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		if countNonEmpty(rows[i]) >= minHeaderCells {
			return i, rows[i]
		}
	}
	return -1, nil
}

func countNonEmpty(row []string) int {
	count := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			count++
		}
	}
	return count
}

// cleanHeader applies the cleanup billing exports need before aliasing:
// strip stray "#" marks and embedded newlines, collapse inner whitespace to
// underscores, lowercase.
func cleanHeader(header string) string {
	header = strings.TrimSpace(header)
	header = strings.ReplaceAll(header, "#", "")
	header = strings.ReplaceAll(header, "\r", " ")
	header = strings.ReplaceAll(header, "\n", " ")
	header = strings.Join(strings.Fields(header), "_")
	return strings.ToLower(header)
}

// resolveColumns binds source columns to canonical fields. Exact alias hits
// bind first across all fields so fuzzy scoring cannot steal a column that
// another field names outright; remaining fields then take the best-scoring
// unbound column at or above the similarity threshold. Each source column
// binds to at most one field.
func resolveColumns(header []string) *models.ColumnMapping {
	mapping := &models.ColumnMapping{
		Bindings: make(map[models.CanonicalField]models.ColumnBinding),
	}

	cleaned := make([]string, len(header))
	for i, h := range header {
		cleaned[i] = cleanHeader(h)
	}
	bound := make(map[int]bool)

	// Exact pass
	for _, field := range models.CanonicalFields() {
		for _, alias := range fieldAliases[field] {
			idx := findExactColumn(cleaned, alias, bound)
			if idx < 0 {
				continue
			}
			bound[idx] = true
			mapping.Bindings[field] = models.ColumnBinding{
				SourceHeader:  strings.TrimSpace(header[idx]),
				CleanedHeader: cleaned[idx],
				Index:         idx,
				MatchedAlias:  alias,
				Similarity:    1.0,
			}
			break
		}
	}

	// Fuzzy pass for fields still unbound
	for _, field := range models.CanonicalFields() {
		if mapping.HasField(field) {
			continue
		}
		idx, alias, score := findFuzzyColumn(cleaned, fieldAliases[field], bound)
		if idx < 0 {
			continue
		}
		bound[idx] = true
		mapping.Bindings[field] = models.ColumnBinding{
			SourceHeader:  strings.TrimSpace(header[idx]),
			CleanedHeader: cleaned[idx],
			Index:         idx,
			MatchedAlias:  alias,
			Similarity:    score,
		}
	}

	for i, h := range cleaned {
		if h != "" && !bound[i] {
			mapping.Unmapped = append(mapping.Unmapped, strings.TrimSpace(header[i]))
		}
	}

	return mapping
}

func findExactColumn(cleaned []string, alias string, bound map[int]bool) int {
	for i, h := range cleaned {
		if !bound[i] && h == alias {
			return i
		}
	}
	return -1
}

// findFuzzyColumn returns the unbound column with the highest similarity to
// any of the field's aliases, provided it clears the threshold.
func findFuzzyColumn(cleaned []string, aliases []string, bound map[int]bool) (int, string, float64) {
	bestIdx := -1
	bestAlias := ""
	bestScore := 0.0

	for i, h := range cleaned {
		if bound[i] || h == "" {
			continue
		}
		normalized := normalizeForMatching(h)
		for _, alias := range aliases {
			score := calculateSimilarity(normalized, normalizeForMatching(alias))
			if score > bestScore {
				bestIdx = i
				bestAlias = alias
				bestScore = score
			}
		}
	}

	if bestScore < aliasMatchThreshold {
		return -1, "", 0
	}
	return bestIdx, bestAlias, bestScore
}

// normalizeRows converts data rows into claims. Rows with no CPT code carry
// no analyzable signal and are skipped, not failed.
func normalizeRows(rows [][]string, firstRowNumber int, mapping *models.ColumnMapping) ([]models.Claim, int) {
	claims := make([]models.Claim, 0, len(rows))
	skipped := 0

	for i, row := range rows {
		claim, ok := normalizeRow(row, firstRowNumber+i, mapping)
		if !ok {
			skipped++
			continue
		}
		claims = append(claims, claim)
	}
	return claims, skipped
}

func normalizeRow(row []string, rowNumber int, mapping *models.ColumnMapping) (models.Claim, bool) {
	cpt := strings.TrimSpace(cellAt(row, mapping.Index(models.FieldCPTCode)))
	if cpt == "" {
		return models.Claim{}, false
	}

	claim := models.Claim{
		RowNumber:     rowNumber,
		CPTCode:       cpt,
		Payer:         bucketOrUnknown(cellAt(row, mapping.Index(models.FieldPayer))),
		Provider:      bucketOrUnknown(cellAt(row, mapping.Index(models.FieldProvider))),
		BilledAmount:  parseMoney(cellAt(row, mapping.Index(models.FieldBilledAmount))),
		PaymentAmount: parseMoney(cellAt(row, mapping.Index(models.FieldPaymentAmount))),
		DenialReason:  strings.TrimSpace(cellAt(row, mapping.Index(models.FieldDenialReason))),
		DenialDate:    parseDenialDate(cellAt(row, mapping.Index(models.FieldDenialDate))),
	}

	// A present denial reason is authoritative. Files without a reason
	// column fall back to zero-payment detection.
	if mapping.HasField(models.FieldDenialReason) {
		claim.Denied = claim.DenialReason != ""
	} else {
		claim.Denied = claim.PaymentAmount.IsZero()
	}

	return claim, true
}

// cellAt tolerates ragged rows and unbound fields: out-of-range or negative
// indexes read as empty.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func bucketOrUnknown(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return models.UnknownBucket
	}
	return value
}

// parseMoney coerces currency text to a decimal. Dollar signs, thousands
// separators and whitespace are stripped; accounting-style parentheses mean
// negative; anything unparseable coerces to zero rather than failing the row.
func parseMoney(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}

	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func parseDenialDate(raw string) *time.Time {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}
	for _, layout := range denialDateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return &parsed
		}
	}
	return nil
}

func joinHeaders(header []string) string {
	trimmed := make([]string, 0, len(header))
	for _, h := range header {
		if v := strings.TrimSpace(h); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return strings.Join(trimmed, ", ")
}
