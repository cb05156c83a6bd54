package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cerrors "cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no reader or writer.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrMalformedInput is returned when a file cannot be decoded into a sequence pair.
	ErrMalformedInput = errors.New("malformed input")
)

// ReadSequence reads a DNA sequence from a file.
func ReadSequence(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// pairDoc is the JSON and YAML form of a sequence pair.
// Pointers distinguish a missing key from an empty sequence.
type pairDoc struct {
	Seq1 *string `json:"seq1" yaml:"seq1"`
	Seq2 *string `json:"seq2" yaml:"seq2"`
}

func (d pairDoc) sequences() (string, string, error) {
	errs := &cerrors.M{}
	if d.Seq1 == nil {
		errs.Append(fmt.Errorf("%w: missing key %q", ErrMalformedInput, "seq1"))
	}
	if d.Seq2 == nil {
		errs.Append(fmt.Errorf("%w: missing key %q", ErrMalformedInput, "seq2"))
	}
	if err := errs.Err(); err != nil {
		return "", "", err
	}
	return *d.Seq1, *d.Seq2, nil
}

// pairReaders maps a lower-cased file extension to its decoder.
var pairReaders = map[string]func([]byte) (string, string, error){
	".json":  decodeJSONPair,
	".yaml":  decodeYAMLPair,
	".yml":   decodeYAMLPair,
	".txt":   decodeTextPair,
	".fa":    decodeFASTAPair,
	".fasta": decodeFASTAPair,
	".fna":   decodeFASTAPair,
}

// ReadPair reads two sequences from a JSON, YAML, TXT or FASTA file,
// chosen by the file extension. Sequences are returned as stored, without case folding.
func ReadPair(filePath string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	decode, ok := pairReaders[ext]
	if !ok {
		return "", "", fmt.Errorf("%s: %w %q: use JSON, YAML, TXT or FASTA", filePath, ErrUnsupportedFormat, ext)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", "", err
	}
	seq1, seq2, err := decode(data)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", filePath, err)
	}
	return seq1, seq2, nil
}

func decodeJSONPair(data []byte) (string, string, error) {
	var doc pairDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return doc.sequences()
}

func decodeYAMLPair(data []byte) (string, string, error) {
	var doc pairDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return doc.sequences()
}

// decodeTextPair takes the first two lines, trimmed.
func decodeTextPair(data []byte) (string, string, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) < 2 {
		return "", "", fmt.Errorf("%w: want two lines, got %d", ErrMalformedInput, len(lines))
	}
	return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
}

// decodeFASTAPair takes the first two records; sequence lines of a record are joined.
func decodeFASTAPair(data []byte) (string, string, error) {
	var (
		records []string
		buf     bytes.Buffer
		inRec   bool
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if inRec {
				records = append(records, buf.String())
				buf.Reset()
			}
			inRec = true
			continue
		}
		if !inRec {
			return "", "", fmt.Errorf("%w: line %d: sequence data before first '>' header", ErrMalformedInput, lineNo)
		}
		buf.Write(line)
	}
	if err := sc.Err(); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if inRec {
		records = append(records, buf.String())
	}
	if len(records) < 2 {
		return "", "", fmt.Errorf("%w: want two FASTA records, got %d", ErrMalformedInput, len(records))
	}
	return records[0], records[1], nil
}
