// Package frontio reads objective matrices from CSV and YAML files.
//
// CSV holds one front: one point per line, one objective per field. Lines
// starting with '#' are comments and blank lines are ignored.
//
// YAML holds any number of fronts:
//
//	fronts:
//	  - [[0.28, 2.29], [1.12, 0.88]]
//	  - [[1.0, 2.0, 3.0]]
package frontio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the readers.
var (
	ErrEmpty         = errors.New("frontio: no points")
	ErrRagged        = errors.New("frontio: rows differ in length")
	ErrParse         = errors.New("frontio: malformed value")
	ErrUnknownFormat = errors.New("frontio: unknown file format")
)

// Format names an input encoding.
type Format string

// Supported formats.
const (
	CSV  Format = "csv"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads every front stored in the file at path.
func Load(path string) ([]*mat.Dense, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open front file: %w", err)
	}
	defer file.Close()

	fronts, err := Read(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fronts, nil
}

// Read decodes every front in r.
func Read(r io.Reader, format Format) ([]*mat.Dense, error) {
	switch format {
	case CSV:
		y, err := ReadCSV(r)
		if err != nil {
			return nil, err
		}
		return []*mat.Dense{y}, nil
	case YAML:
		return ReadYAML(r)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ReadCSV decodes one front from comma-separated rows.
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		line, _ := cr.FieldPos(0)

		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q", ErrParse, line, j+1, field)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return dense(rows)
}

type document struct {
	Fronts [][][]float64 `yaml:"fronts"`
}

// ReadYAML decodes the fronts list of a YAML document.
func ReadYAML(r io.Reader) ([]*mat.Dense, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(doc.Fronts) == 0 {
		return nil, ErrEmpty
	}

	out := make([]*mat.Dense, len(doc.Fronts))
	for i, rows := range doc.Fronts {
		y, err := dense(rows)
		if err != nil {
			return nil, fmt.Errorf("front %d: %w", i, err)
		}
		out[i] = y
	}

	return out, nil
}

// dense packs equal-length rows into a matrix.
func dense(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	n := len(rows[0])
	data := make([]float64, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i+1, len(row), n)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), n, data), nil
}
