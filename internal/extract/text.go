package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// extractPlainText is a UTF-8 passthrough.
func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(data), nil
}

// extractCSV renders CSV rows as header-labelled lines so the generation
// model sees column meaning, not just positional values.
func extractCSV(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	headers := records[0]
	var sb strings.Builder
	sb.WriteString("Headers: " + strings.Join(headers, ", "))

	for _, row := range records[1:] {
		sb.WriteString("\n")
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			if j < len(headers) {
				sb.WriteString(headers[j] + ": " + cell)
			} else {
				sb.WriteString(cell)
			}
		}
	}
	return sb.String(), nil
}
