// SPDX-License-Identifier: MIT

package mapfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestroute/core"
	"github.com/katalvlaran/bestroute/mapfile"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    core.Triple
		wantErr error
	}{
		{name: "Integer distance", input: "S,A,1", want: core.Triple{Start: "S", End: "A", Distance: 1}},
		{name: "Decimal distance", input: "S,A,2.75", want: core.Triple{Start: "S", End: "A", Distance: 2.75}},
		{name: "CRLF line ending", input: "S,A,3\r\n", want: core.Triple{Start: "S", End: "A", Distance: 3}},
		{name: "Names kept verbatim", input: "New York,Los Angeles,9", want: core.Triple{Start: "New York", End: "Los Angeles", Distance: 9}},
		{name: "Padded distance", input: "S,A, 4 ", want: core.Triple{Start: "S", End: "A", Distance: 4}},
		{name: "Self loop is still a valid line", input: "A,A,5", want: core.Triple{Start: "A", End: "A", Distance: 5}},
		{name: "Zero", input: "A,B,0", want: core.Triple{Start: "A", End: "B", Distance: 0}},
		{name: "Empty line", input: "", wantErr: mapfile.ErrFieldCount},
		{name: "Two fields", input: "S,A", wantErr: mapfile.ErrFieldCount},
		{name: "Four fields", input: "S,A,1,2", wantErr: mapfile.ErrFieldCount},
		{name: "Not a number", input: "S,A,far", wantErr: mapfile.ErrBadDistance},
		{name: "Empty distance", input: "S,A,", wantErr: mapfile.ErrBadDistance},
		{name: "NaN", input: "S,A,NaN", wantErr: mapfile.ErrBadDistance},
		{name: "Infinity", input: "S,A,inf", wantErr: mapfile.ErrBadDistance},
		{name: "Negative", input: "S,A,-1", wantErr: mapfile.ErrNegativeDistance},
		{name: "Empty start", input: ",A,1", wantErr: core.ErrEmptyName},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := mapfile.ParseLine(test.input)
			if test.wantErr != nil {
				assert.True(t, errors.Is(err, test.wantErr), "got %v, want %v", err, test.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("triple mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead(t *testing.T) {
	ts, err := mapfile.Read(strings.NewReader("S,A,1\nA,E,2\nS,E,4\n"))
	require.NoError(t, err)

	want := []core.Triple{
		{Start: "S", End: "A", Distance: 1},
		{Start: "A", End: "E", Distance: 2},
		{Start: "S", End: "E", Distance: 4},
	}
	if diff := cmp.Diff(want, ts); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_NoTrailingNewline(t *testing.T) {
	ts, err := mapfile.Read(strings.NewReader("S,A,1\nA,E,2"))
	require.NoError(t, err)
	assert.Len(t, ts, 2)
}

func TestRead_EmptyInput(t *testing.T) {
	ts, err := mapfile.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ts)
}

func TestRead_MalformedLineFailsWhole(t *testing.T) {
	_, err := mapfile.Read(strings.NewReader("S,A,1\nA;E;2\nS,E,4\n"))
	require.Error(t, err)

	var perr *mapfile.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "A;E;2", perr.Text)
	assert.ErrorIs(t, err, mapfile.ErrFieldCount)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_BlankLineInsideIsError(t *testing.T) {
	_, err := mapfile.Read(strings.NewReader("S,A,1\n\nA,E,2\n"))
	var perr *mapfile.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}

func TestImport(t *testing.T) {
	g, err := mapfile.Import(strings.NewReader("S,A,1\nA,E,2\nS,E,4\nA,A,5\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "E", "S"}, g.Names())
	assert.Equal(t, 3, g.NumLinks())

	a, err := g.Node("A")
	require.NoError(t, err)
	assert.Len(t, a.Connections, 2, "A,A,5 must not add a connection")
}

func TestImport_NoPartialGraph(t *testing.T) {
	g, err := mapfile.Import(strings.NewReader("S,A,1\nA,E,x\n"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, mapfile.ErrBadDistance)
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map_input.txt")
	require.NoError(t, os.WriteFile(path, []byte("X,Y,1\n"), 0o600))

	g, err := mapfile.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, g.Names())

	_, err = mapfile.ImportFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("X,Y\n"), 0o600))
	_, err = mapfile.ImportFile(bad)
	assert.ErrorIs(t, err, mapfile.ErrFieldCount)
	assert.Contains(t, err.Error(), bad)
}
