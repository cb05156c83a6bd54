package io_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	alignio "DNA-Pairwise-Alignment/dna_aligner/io"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadPair(t *testing.T) {
	for _, tc := range []struct {
		name, content string
	}{
		{"pair.json", `{"seq1": "ACTG", "seq2": "ACCG"}`},
		{"pair.JSON", `{"seq1": "ACTG", "seq2": "ACCG"}`},
		{"pair.yaml", "seq1: ACTG\nseq2: ACCG\n"},
		{"pair.yml", "seq1: ACTG\nseq2: ACCG\n"},
		{"pair.txt", "ACTG\nACCG"},
		{"pair.txt", "  ACTG  \r\nACCG\r\nignored\n"},
		{"pair.fasta", ">one\nAC\nTG\n>two desc\nACCG\n>three\nTTTT\n"},
		{"pair.fa", "; comment\n>one\nACTG\n\n>two\nACCG"},
	} {
		seq1, seq2, err := alignio.ReadPair(writeFile(t, tc.name, tc.content))
		require.NoError(t, err, tc.name)
		require.Equal(t, "ACTG", seq1, tc.name)
		require.Equal(t, "ACCG", seq2, tc.name)
	}
}

func TestReadPairEmptySequences(t *testing.T) {
	seq1, seq2, err := alignio.ReadPair(writeFile(t, "pair.json", `{"seq1": "", "seq2": "AC"}`))
	require.NoError(t, err)
	require.Empty(t, seq1)
	require.Equal(t, "AC", seq2)

	seq1, seq2, err = alignio.ReadPair(writeFile(t, "pair.txt", "ACGT\n\n"))
	require.NoError(t, err)
	require.Equal(t, "ACGT", seq1)
	require.Empty(t, seq2)
}

func TestReadPairKeepsCase(t *testing.T) {
	seq1, seq2, err := alignio.ReadPair(writeFile(t, "pair.yaml", "seq1: acgt\nseq2: ACgt\n"))
	require.NoError(t, err)
	require.Equal(t, "acgt", seq1)
	require.Equal(t, "ACgt", seq2)
}

func TestReadPairUnsupported(t *testing.T) {
	_, _, err := alignio.ReadPair(writeFile(t, "pair.xml", "<seq/>"))
	require.ErrorIs(t, err, alignio.ErrUnsupportedFormat)
}

func TestReadPairMalformed(t *testing.T) {
	for _, tc := range []struct {
		name, content string
	}{
		{"bad.json", `{"seq1": "ACTG"`},
		{"missing.json", `{"seq1": "ACTG"}`},
		{"missing.yaml", "other: x\n"},
		{"bad.yaml", "seq1: [unterminated\n"},
		{"one.txt", "ACTG\n"},
		{"empty.txt", ""},
		{"one.fasta", ">one\nACTG\n"},
		{"noheader.fasta", "ACTG\n>two\nACCG\n"},
	} {
		_, _, err := alignio.ReadPair(writeFile(t, tc.name, tc.content))
		require.ErrorIs(t, err, alignio.ErrMalformedInput, tc.name)
	}
}

func TestReadPairReportsAllMissingKeys(t *testing.T) {
	_, _, err := alignio.ReadPair(writeFile(t, "empty.json", `{}`))
	require.ErrorIs(t, err, alignio.ErrMalformedInput)
	require.ErrorContains(t, err, `"seq1"`)
	require.ErrorContains(t, err, `"seq2"`)
}

func TestReadPairMissingFile(t *testing.T) {
	_, _, err := alignio.ReadPair(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSequence(t *testing.T) {
	seq, err := alignio.ReadSequence(writeFile(t, "query.txt", "\nGATTACA\n"))
	require.NoError(t, err)
	require.Equal(t, "GATTACA", seq)
}
