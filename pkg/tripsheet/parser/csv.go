// Package parser reads source trip files into matrices.
package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ReadCSV parses delimited text into a matrix of string cells.
// Rows may have differing lengths. Empty input yields an empty matrix.
func ReadCSV(r io.Reader) (models.Matrix, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out models.Matrix
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		out = append(out, models.Strings(record))
	}
	return out, nil
}
