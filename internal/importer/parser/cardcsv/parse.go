// Package cardcsv parses credit card statement CSV exports. Japanese card
// issuers agree on neither headers, encodings nor formats, so header
// names, dates and amounts are all resolved flexibly.
package cardcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cashplanner/backend/internal/importer"
	"github.com/cashplanner/backend/internal/models"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	errNoHeader       = errors.New("the CSV file must have a header row")
	errMissingColumns = errors.New("the CSV header must include date, merchant and amount columns")
)

// Column header candidates, lowercased. English names first, then the
// headers of the common Japanese card issuers.
var (
	dateHeaders     = []string{"date", "yyyy/mm/dd", "日付", "利用日", "ご利用日", "ご利用年月日"}
	merchantHeaders = []string{"merchant", "title", "利用先", "加盟店", "摘要", "店名", "ご利用場所", "利用場所"}
	amountHeaders   = []string{"amount", "price", "金額", "利用金額", "ご利用金額"}
	noteHeaders     = []string{"note", "memo", "備考"}
)

var dateFormats = []string{"2006/1/2", "2006-1-2", "2006.1.2", "2006年1月2日"}

// Parse parses a card statement CSV for the given card. Lines that can
// not be parsed are skipped and reported as warnings so that one bad line
// does not reject a whole statement.
func Parse(f io.Reader, card models.Card) ([]importer.TransactionPreview, []string, error) {
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decode(content)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []importer.TransactionPreview{}, nil, nil
	}
	if err != nil {
		return nil, nil, errNoHeader
	}

	columns, err := resolveHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var previews []importer.TransactionPreview
	var warnings []string

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: could not read line in CSV: %v", line, err))
			continue
		}
		if empty(record) {
			continue
		}

		date, err := parseDate(field(record, columns.date))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		amount, err := parseMoney(field(record, columns.amount))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		merchantRaw := strings.TrimSpace(field(record, columns.merchant))

		transaction := models.CardTransaction{
			CardID:    card.ID,
			Date:      date,
			AmountYen: amount,
			Merchant:  merchantRaw,
		}
		if columns.note >= 0 {
			transaction.Note = strings.TrimSpace(field(record, columns.note))
		}
		transaction.ImportHash = importer.Fingerprint(transaction, merchantRaw)

		previews = append(previews, importer.TransactionPreview{
			Transaction: transaction,
			MerchantRaw: merchantRaw,
		})
	}

	return previews, warnings, nil
}

// decode returns the content as UTF-8. Statements from Japanese issuers
// are usually Shift_JIS (cp932); valid UTF-8 input is passed through with
// a potential BOM stripped.
func decode(content []byte) []byte {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	if utf8.Valid(content) {
		return content
	}

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), content)
	if err != nil {
		return content
	}

	return decoded
}

type columnIndexes struct {
	date     int
	merchant int
	amount   int
	note     int
}

func resolveHeader(header []string) (columnIndexes, error) {
	columns := columnIndexes{date: -1, merchant: -1, amount: -1, note: -1}

	pick := func(candidates []string) int {
		for i, name := range header {
			name = strings.ToLower(strings.TrimSpace(norm.NFKC.String(name)))
			for _, candidate := range candidates {
				if name == candidate {
					return i
				}
			}
		}
		return -1
	}

	columns.date = pick(dateHeaders)
	columns.merchant = pick(merchantHeaders)
	columns.amount = pick(amountHeaders)
	columns.note = pick(noteHeaders)

	if columns.date < 0 || columns.merchant < 0 || columns.amount < 0 {
		return columns, errMissingColumns
	}

	return columns, nil
}

func field(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}

	return record[index]
}

func empty(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}

	return true
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(norm.NFKC.String(value))

	for _, format := range dateFormats {
		date, err := time.ParseInLocation(format, value, time.UTC)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse date: %q", value)
}

// parseMoney parses an amount in whole yen. Negative amounts may be
// written with a minus sign or in parentheses; currency symbols,
// thousands separators and the 円 suffix are ignored.
func parseMoney(value string) (int64, error) {
	s := strings.TrimSpace(norm.NFKC.String(value))

	negative := strings.Contains(s, "-") ||
		(strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"))

	for _, cut := range []string{"(", ")", "-", "+", "¥", "￥", "円", ",", " "} {
		s = strings.ReplaceAll(s, cut, "")
	}
	if s == "" {
		return 0, fmt.Errorf("could not parse amount: %q", value)
	}

	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse amount: %q", value)
	}

	if negative {
		amount = -amount
	}

	return amount, nil
}
