package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	input := "% a comment\n3 3 0\n2\n3\n1\n"
	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.True(t, g.HasArc(0, 1))
	require.True(t, g.HasArc(1, 2))
	require.True(t, g.HasArc(2, 0))
}

func TestParseEmptyAdjacencyLines(t *testing.T) {
	input := "2 0 0\n\n\n"
	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 0, g.NumArcs())
}

func TestParseMalformedHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseTruncatedBody(t *testing.T) {
	_, err := Parse(strings.NewReader("2 0 0\n1\n"))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseOutOfRangeVertex(t *testing.T) {
	_, err := Parse(strings.NewReader("1 0 0\n5\n"))
	require.ErrorIs(t, err, ErrMalformedBody)
}

func TestWriteOneIndexedNoSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []int{0, 2, 1}))
	require.Equal(t, "1\n3\n2\n", buf.String())
}

func TestParseThenWriteActiveVertices(t *testing.T) {
	input := "4 4 0\n2 3\n3\n\n1\n"
	g, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g.ActiveVertices()))
	require.Equal(t, "1\n2\n3\n4\n", buf.String())
}
