package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// datasetRow is one record of the résumé CSV
type datasetRow struct {
	ID       string
	Text     string
	Category string
}

// readDataset loads the résumé CSV. Expected columns: ID, Resume_str,
// Category; unknown columns are ignored.
func readDataset(path string) ([]datasetRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"ID", "Resume_str", "Category"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", required)
		}
	}

	var rows []datasetRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		rows = append(rows, datasetRow{
			ID:       field(record, columns["ID"]),
			Text:     field(record, columns["Resume_str"]),
			Category: field(record, columns["Category"]),
		})
	}

	return rows, nil
}

func field(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

// extractPDFText pulls the plain text out of a PDF, page by page
func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", page, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}
