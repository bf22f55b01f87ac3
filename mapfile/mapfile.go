// SPDX-License-Identifier: MIT

package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/bestroute/core"
)

// Separator is the field delimiter of the map format.
const Separator = ","

// Sentinel errors for malformed lines.
var (
	// ErrFieldCount indicates a line that does not have exactly three fields.
	ErrFieldCount = errors.New("mapfile: line must have exactly 3 comma-separated fields")

	// ErrBadDistance indicates a distance field that is not a finite number.
	ErrBadDistance = errors.New("mapfile: distance is not a number")

	// ErrNegativeDistance indicates a distance below zero.
	ErrNegativeDistance = errors.New("mapfile: distance is negative")
)

// ParseError reports the line on which reading failed.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, without its line ending
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine parses one "start,end,distance" line.
func ParseLine(line string) (core.Triple, error) {
	line = strings.TrimRight(line, " \t\r\n")
	fields := strings.Split(line, Separator)
	if len(fields) != 3 {
		return core.Triple{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	if fields[0] == "" || fields[1] == "" {
		return core.Triple{}, core.ErrEmptyName
	}

	raw := strings.TrimSpace(fields[2])
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return core.Triple{}, fmt.Errorf("%w: %q", ErrBadDistance, raw)
	}
	if d < 0 {
		return core.Triple{}, fmt.Errorf("%w: %v", ErrNegativeDistance, d)
	}

	return core.Triple{Start: fields[0], End: fields[1], Distance: d}, nil
}

// Read parses every line of r. The first malformed line stops reading and
// is returned as a *ParseError.
func Read(r io.Reader) ([]core.Triple, error) {
	var ts []core.Triple
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		t, err := ParseLine(sc.Text())
		if err != nil {
			return nil, &ParseError{Line: n, Text: sc.Text(), Err: err}
		}
		ts = append(ts, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: read: %w", err)
	}

	return ts, nil
}

// Import reads r and builds the Graph in line order.
func Import(r io.Reader) (*core.Graph, error) {
	ts, err := Read(r)
	if err != nil {
		return nil, err
	}
	g, err := core.FromTriples(ts)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}

	return g, nil
}

// ImportFile opens path and imports it.
func ImportFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open map file: %w", err)
	}
	defer f.Close()

	g, err := Import(f)
	if err != nil {
		return nil, fmt.Errorf("could not import %s: %w", path, err)
	}

	return g, nil
}
