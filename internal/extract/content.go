package extract

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/srikanthsurna/swipe-project/constants"
	"github.com/srikanthsurna/swipe-project/internal/common"
	"github.com/srikanthsurna/swipe-project/internal/llm"
)

// UploadedFile is the immutable pipeline input: the file's bytes plus what
// the uploader declared about them. Consumed once, not retained.
type UploadedFile struct {
	Name     string
	MIMEType string
	Content  []byte
}

// NormalizeContent converts a file's bytes into the model-ready
// representation for its format class: flattened "header: value" text for
// spreadsheets, a base64 inline payload for images and PDFs.
func NormalizeContent(file UploadedFile, format constants.FileFormat) (llm.NormalizedContent, error) {
	switch format {
	case constants.Spreadsheet:
		text, err := flattenSpreadsheet(file.Content)
		if err != nil {
			return llm.NormalizedContent{}, common.ContentReadError(err)
		}
		return llm.NormalizedContent{Text: text}, nil
	case constants.Image, constants.Document:
		if len(file.Content) == 0 {
			return llm.NormalizedContent{}, common.ContentReadError(errors.New("empty file content"))
		}
		return llm.NormalizedContent{Inline: &llm.InlineData{
			Data:     base64.StdEncoding.EncodeToString(file.Content),
			MIMEType: file.MIMEType,
		}}, nil
	}
	return llm.NormalizedContent{}, common.UnsupportedTypeError(file.MIMEType)
}

// flattenSpreadsheet decodes a workbook and renders its first sheet as
// "<header>: <value>" lines, one block per data row, blank line between
// blocks. Only the first sheet is read; multi-sheet files are not supported.
// Empty cells are skipped, not zero-filled.
func flattenSpreadsheet(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	headers := rows[0]
	var b strings.Builder
	for _, row := range rows[1:] {
		for i, header := range headers {
			if i >= len(row) {
				break
			}
			value := strings.TrimSpace(row[i])
			if value == "" {
				continue
			}
			b.WriteString(header)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
