package igrf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformedTable reports a coefficients file the parser could not use.
var ErrMalformedTable = errors.New("igrf: malformed coefficients file")

// Parse reads an officially distributed igrfXXcoeffs.txt stream and builds a
// Table from its degree-1 rows. The expected layout is the IAGA one: comment
// lines starting with '#', a "c/s deg ord ..." model row, a "g/h n m" header
// row listing the main-field epochs with a trailing secular-variation column,
// then one row per coefficient. Rows above degree 1 are ignored.
func Parse(r io.Reader, name string) (*Table, error) {
	var (
		epochs     []float64
		rows       = map[string][]float64{}
		wantValues int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c/s":
			continue
		case "g/h":
			if len(fields) < 5 {
				return nil, fmt.Errorf("%w: truncated epoch header %q", ErrMalformedTable, line)
			}
			// The last column spans the SV interval (e.g. "2020-25").
			for _, f := range fields[3 : len(fields)-1] {
				y, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: epoch %q: %v", ErrMalformedTable, f, err)
				}
				epochs = append(epochs, y)
			}
			wantValues = len(epochs) + 1
		case "g", "h":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: truncated row %q", ErrMalformedTable, line)
			}
			key := fields[0] + fields[1] + fields[2]
			if key != "g10" && key != "g11" && key != "h11" {
				continue
			}
			vals := make([]float64, 0, len(fields)-3)
			for _, f := range fields[3:] {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: value %q in row %s: %v", ErrMalformedTable, f, key, err)
				}
				vals = append(vals, v)
			}
			rows[key] = vals
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("igrf: reading %s: %w", name, err)
	}

	if len(epochs) < 2 {
		return nil, fmt.Errorf("%w: no epoch header found", ErrMalformedTable)
	}
	for i := 1; i < len(epochs); i++ {
		if math.Abs(epochs[i]-epochs[i-1]-epochStep) > 1e-9 {
			return nil, fmt.Errorf("%w: epochs not spaced %v years apart", ErrMalformedTable, epochStep)
		}
	}
	for _, key := range []string{"g10", "g11", "h11"} {
		vals, ok := rows[key]
		if !ok {
			return nil, fmt.Errorf("%w: missing degree-1 row %s", ErrMalformedTable, key)
		}
		if len(vals) != wantValues {
			return nil, fmt.Errorf("%w: row %s has %d values, want %d", ErrMalformedTable, key, len(vals), wantValues)
		}
	}

	t := &Table{Name: name, baseYear: epochs[0], epochs: make([]Coefficients, len(epochs))}
	for i := range epochs {
		t.epochs[i] = Coefficients{G10: rows["g10"][i], G11: rows["g11"][i], H11: rows["h11"][i]}
	}
	n := len(epochs)
	t.sv = Coefficients{G10: rows["g10"][n], G11: rows["g11"][n], H11: rows["h11"][n]}
	return t, nil
}

// LoadFile parses an official coefficients file from disk. The table is
// named after the file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("igrf: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}
