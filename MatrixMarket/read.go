package MatrixMarket

import (
	"bufio"
	"strconv"
	"strings"

	GrB "github.com/intel/forGraphBLASGo/GrB"
	"github.com/pkg/errors"
)

// Coordinates holds the entries of a matrix as zero-based coordinate lists.
// Symmetric storage is expanded; the diagonal is stored once.
type Coordinates struct {
	NRows, NCols int
	Rows, Cols   []int
	Vals         []float64
}

func newCoordinates(header Header) *Coordinates {
	capacity := header.NVals
	if header.Storage != General {
		capacity *= 2
	}
	return &Coordinates{
		NRows: header.NRows,
		NCols: header.NCols,
		Rows:  make([]int, 0, capacity),
		Cols:  make([]int, 0, capacity),
		Vals:  make([]float64, 0, capacity),
	}
}

func (c *Coordinates) add(storage Storage, row, col int, val float64) {
	c.Rows = append(c.Rows, row)
	c.Cols = append(c.Cols, col)
	c.Vals = append(c.Vals, val)
	if row == col {
		return
	}
	switch storage {
	case Symmetric:
		c.Rows = append(c.Rows, col)
		c.Cols = append(c.Cols, row)
		c.Vals = append(c.Vals, val)
	case SkewSymmetric:
		c.Rows = append(c.Rows, col)
		c.Cols = append(c.Cols, row)
		c.Vals = append(c.Vals, -val)
	}
}

func parseValue(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "cannot parse value %q: %v", field, err)
	}
	return v, nil
}

// ReadCoordinates reads the entries following a header. Zero entries of
// array storage are not stored.
func ReadCoordinates(header Header, s *bufio.Scanner) (*Coordinates, error) {
	c := newCoordinates(header)
	switch header.Format {
	case Coordinate:
		nfields := 3
		if header.Type == Pattern {
			nfields = 2
		}
		remaining := header.NVals
		for {
			text, ok := nextDataLine(s)
			if !ok {
				break
			}
			fields := strings.Fields(text)
			if len(fields) != nfields {
				return nil, errors.Wrapf(ErrFormat, "coordinate line needs %v entries, got %v", nfields, len(fields))
			}
			if remaining == 0 {
				return nil, errors.Wrap(ErrFormat, "too many coordinate lines")
			}
			ij, err := parseInts(fields[:2], "coordinate line")
			if err != nil {
				return nil, err
			}
			row, col := ij[0]-1, ij[1]-1
			if row < 0 || row >= header.NRows || col < 0 || col >= header.NCols {
				return nil, errors.Wrapf(ErrFormat, "entry (%v, %v) outside %v", ij[0], ij[1], header)
			}
			val := 1.0
			if nfields == 3 {
				if val, err = parseValue(fields[2]); err != nil {
					return nil, err
				}
			}
			c.add(header.Storage, row, col, val)
			remaining--
		}
		if remaining > 0 {
			return nil, errors.Wrap(ErrFormat, "too few coordinate lines")
		}
	case Array:
		if header.Type == Pattern {
			return nil, errors.Wrap(ErrFormat, "array format not supported for pattern type")
		}
		var row, col int
		resetRow := func() {
			switch header.Storage {
			case Symmetric:
				row = col
			case SkewSymmetric:
				row = col + 1
			default:
				row = 0
			}
		}
		resetRow()
		for {
			text, ok := nextDataLine(s)
			if !ok {
				break
			}
			fields := strings.Fields(text)
			if len(fields) != 1 {
				return nil, errors.Wrapf(ErrFormat, "array line needs 1 entry, got %v", len(fields))
			}
			if row >= header.NRows || col >= header.NCols {
				return nil, errors.Wrap(ErrFormat, "too many array lines")
			}
			val, err := parseValue(fields[0])
			if err != nil {
				return nil, err
			}
			if val != 0 {
				c.add(header.Storage, row, col, val)
			}
			if row++; row == header.NRows {
				col++
				resetRow()
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading Matrix Market entries")
	}
	return c, nil
}

// Read reads the entries following a header into a GraphBLAS matrix.
// Duplicate entries keep the first value.
func Read[T GrB.Number](header Header, s *bufio.Scanner) (*GrB.Matrix[T], error) {
	c, err := ReadCoordinates(header, s)
	if err != nil {
		return nil, err
	}
	A, err := GrB.MatrixNew[T](c.NRows, c.NCols)
	if err != nil {
		return nil, err
	}
	vals := make([]T, len(c.Vals))
	for k, v := range c.Vals {
		vals[k] = T(v)
	}
	return A, A.Build(c.Rows, c.Cols, vals, func(x, _ T) T { return x })
}
