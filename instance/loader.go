package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/diversity/geom"
)

var (
	errMissingLine = errors.New("unexpected end of input")
	errBadCount    = errors.New("expected a positive integer")
	errArity       = errors.New("wrong number of coordinates")
	errTrailing    = errors.New("unexpected content after the last point")
)

// Load reads an instance file from path. See Parse for the format.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	inst, err := Parse(f)
	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		ioErr.Path = path
	}

	return inst, err
}

// Parse decodes the line-oriented instance format:
//
//	<number of points>
//	<dimensionality>
//	<c1><sep><c2>...<cd>      one line per point
//
// where <sep> is a tab or a comma. Blank space around numbers is ignored.
// Exactly <number of points> point lines are read; only blank lines may
// follow them.
//
// Errors: *SyntaxError (1-based line) or *IOError.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	var line int

	next := func() (string, error) {
		line++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", &IOError{Err: err}
			}
			return "", &SyntaxError{Line: line, Err: errMissingLine}
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	count, err := parseHeader(next, &line)
	if err != nil {
		return nil, err
	}
	dim, err := parseHeader(next, &line)
	if err != nil {
		return nil, err
	}

	points := make([]geom.Point, 0, count)
	var (
		text   string
		coords []float64
	)
	for len(points) < count {
		if text, err = next(); err != nil {
			return nil, err
		}
		if coords, err = parseCoords(text); err != nil {
			return nil, &SyntaxError{Line: line, Err: err}
		}
		if len(coords) != dim {
			return nil, &SyntaxError{Line: line, Err: fmt.Errorf("%w: got %d, want %d", errArity, len(coords), dim)}
		}
		p := geom.New(coords...)
		if err = p.Validate(); err != nil {
			return nil, &SyntaxError{Line: line, Err: err}
		}
		points = append(points, p)
	}
	last := line

	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, &SyntaxError{Line: line, Err: errTrailing}
		}
	}
	if err = sc.Err(); err != nil {
		return nil, &IOError{Err: err}
	}

	inst, err := New(points)
	if err != nil {
		return nil, &SyntaxError{Line: last, Err: err}
	}

	return inst, nil
}

func parseHeader(next func() (string, error), line *int) (int, error) {
	text, err := next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(text)
	if err != nil || v <= 0 {
		return 0, &SyntaxError{Line: *line, Err: errBadCount}
	}

	return v, nil
}

// parseCoords splits on tabs when the line has any, otherwise on commas.
func parseCoords(text string) ([]float64, error) {
	var sep = ","
	if strings.ContainsRune(text, '\t') {
		sep = "\t"
	}
	fields := strings.Split(text, sep)
	out := make([]float64, len(fields))

	var (
		i   int
		err error
	)
	for i = range fields {
		out[i], err = strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Write encodes inst in the format accepted by Parse, tab separated.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", inst.Len(), inst.Dim())

	var i, j int
	for i = 0; i < inst.Len(); i++ {
		p := inst.Point(i)
		for j = 0; j < p.Dim(); j++ {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(strconv.FormatFloat(p.At(j), 'f', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
