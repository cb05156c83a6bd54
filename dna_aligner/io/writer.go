package io

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	cerrors "cloudeng.io/errors"
)

// Matrix output formats
const (
	FormatTXT  = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// matrixDoc is the JSON form of a saved score matrix.
type matrixDoc struct {
	AlignmentMatrix [][]int `json:"alignment_matrix"`
}

// MatrixWriters maps a format name to its encoder.
var MatrixWriters = map[string]func(w io.Writer, rows [][]int) error{
	FormatTXT:  writeMatrixText,
	FormatCSV:  writeMatrixCSV,
	FormatJSON: writeMatrixJSON,
}

// RegisterMatrixWriter adds or replaces the encoder for format.
func RegisterMatrixWriter(format string, fn func(io.Writer, [][]int) error) {
	MatrixWriters[format] = fn
}

// MatrixFormat resolves the output format for filePath.
// An explicit format wins; otherwise the extension is used, and a path
// without an extension is written as text.
func MatrixFormat(filePath, format string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
		if format == "" {
			format = FormatTXT
		}
	}
	if _, ok := MatrixWriters[format]; !ok {
		return "", fmt.Errorf("%w %q: use TXT, CSV or JSON", ErrUnsupportedFormat, format)
	}
	return format, nil
}

// WriteMatrix encodes rows to w in the given format.
func WriteMatrix(w io.Writer, format string, rows [][]int) error {
	fn, ok := MatrixWriters[format]
	if !ok {
		return fmt.Errorf("%w %q: no matrix writer registered", ErrUnsupportedFormat, format)
	}
	return fn(w, rows)
}

// WriteMatrixFile saves rows to filePath, see MatrixFormat for how the format is chosen.
func WriteMatrixFile(filePath, format string, rows [][]int) error {
	format, err := MatrixFormat(filePath, format)
	if err != nil {
		return err
	}
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	errs := &cerrors.M{}
	errs.Append(WriteMatrix(bw, format, rows))
	errs.Append(bw.Flush())
	errs.Append(f.Close())
	return errs.Err()
}

// ReadMatrixJSON reads a matrix saved in the JSON format.
func ReadMatrixJSON(filePath string) ([][]int, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var doc matrixDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", filePath, ErrMalformedInput, err)
	}
	if doc.AlignmentMatrix == nil {
		return nil, fmt.Errorf("%s: %w: missing key %q", filePath, ErrMalformedInput, "alignment_matrix")
	}
	return doc.AlignmentMatrix, nil
}

func writeMatrixText(w io.Writer, rows [][]int) error {
	for _, row := range rows {
		if _, err := io.WriteString(w, joinInts(row, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrixCSV(w io.Writer, rows [][]int) error {
	cw := csv.NewWriter(w)
	record := []string{}
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.Itoa(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMatrixJSON(w io.Writer, rows [][]int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(matrixDoc{AlignmentMatrix: rows})
}

func joinInts(row []int, sep string) string {
	parts := make([]string, len(row))
	for k, v := range row {
		parts[k] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
