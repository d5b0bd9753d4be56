// Package ingest reads spreadsheet-export CSV files into raw rows for the
// normalization pipeline. The pipeline itself is format-agnostic; this is
// just the thinnest useful adapter over the workshop's actual exports.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/oficinagl/garantia/internal/common"
	"github.com/oficinagl/garantia/internal/model"
)

// ReadCSV parses one CSV export. The first record is the header row; every
// following record becomes a RawRow keyed by the exact header strings.
// Cell values stay strings; typing them is the normalizer's job.
func ReadCSV(r io.Reader) ([]model.RawRow, error) {
	headerLine, body, err := splitHeader(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(body)
	reader.Comma = detectDelimiter(headerLine)
	reader.FieldsPerRecord = -1 // exports routinely have ragged rows

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty: %w", common.ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(stripBOM(headers[i]))
	}
	if !containsHeader(headers, model.ColNumeroOrdem) {
		return nil, fmt.Errorf("%w: %s column not found, is this a Tabela export?",
			common.ErrUnknownHeader, model.ColNumeroOrdem)
	}

	var rows []model.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		row := make(model.RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = nil
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// splitHeader peeks the first line so the delimiter can be sniffed, then
// returns a reader over the whole input again.
func splitHeader(r io.Reader) (string, io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read csv input: %w", err)
	}
	text := string(data)
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}
	return firstLine, strings.NewReader(text), nil
}

// detectDelimiter picks between comma and semicolon, whichever dominates the
// header row. pt-BR locale exports use semicolons.
func detectDelimiter(headerLine string) rune {
	if strings.Count(headerLine, ";") > strings.Count(headerLine, ",") {
		return ';'
	}
	return ','
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

func containsHeader(headers []string, want string) bool {
	for _, h := range headers {
		if h == want {
			return true
		}
	}
	return false
}
