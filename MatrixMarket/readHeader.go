// Package MatrixMarket reads graphs stored in the Matrix Market exchange format.
package MatrixMarket

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	GrB "github.com/intel/forGraphBLASGo/GrB"
	"github.com/pkg/errors"
)

type (
	Format  int
	Type    int
	Storage int
)

const (
	Coordinate Format = iota
	Array
)

const (
	Real Type = iota
	Complex
	Pattern
	Integer
)

const (
	General Storage = iota
	Hermitian
	Symmetric
	SkewSymmetric
)

var (
	formats = map[string]Format{
		"coordinate": Coordinate,
		"array":      Array,
	}
	types = map[string]Type{
		"real":    Real,
		"complex": Complex,
		"pattern": Pattern,
		"integer": Integer,
	}
	storages = map[string]Storage{
		"general":        General,
		"hermitian":      Hermitian,
		"symmetric":      Symmetric,
		"skew-symmetric": SkewSymmetric,
	}
	defaultGrBTypes = map[Type]GrB.Type{
		Real:    GrB.FP64,
		Integer: GrB.Int64,
		Pattern: GrB.Int8,
	}
	graphBLASTypes = map[string]GrB.Type{
		"GrB_BOOL":   GrB.Int8,
		"GrB_INT8":   GrB.Int8,
		"GrB_INT16":  GrB.Int16,
		"GrB_INT32":  GrB.Int32,
		"GrB_INT64":  GrB.Int64,
		"GrB_UINT8":  GrB.Uint8,
		"GrB_UINT16": GrB.Uint16,
		"GrB_UINT32": GrB.Uint32,
		"GrB_UINT64": GrB.Uint64,
		"GrB_FP32":   GrB.FP32,
		"GrB_FP64":   GrB.FP64,
	}
)

// ErrFormat is wrapped by every parse error of this package.
var ErrFormat = errors.New("Matrix Market format error")

type Header struct {
	Format              Format
	Type                Type
	GrBType             GrB.Type
	Storage             Storage
	NRows, NCols, NVals int
}

func lookup[V any](table map[string]V, key, what string) (v V, err error) {
	v, ok := table[strings.ToLower(key)]
	if !ok {
		err = errors.Wrapf(ErrFormat, "unknown %v %q in header line", what, key)
	}
	return
}

// nextDataLine skips comments and blank lines.
func nextDataLine(s *bufio.Scanner) (string, bool) {
	for s.Scan() {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		return text, true
	}
	return "", false
}

func parseInts(fields []string, what string) ([]int, error) {
	result := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "%v: cannot parse %q: %v", what, field, err)
		}
		result[i] = int(v)
	}
	return result, nil
}

// ReadHeader parses the banner, the optional %%GraphBLAS type line and the
// size line. The returned scanner is positioned at the first entry.
func ReadHeader(r io.Reader) (header Header, scanner *bufio.Scanner, err error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		err = errors.Wrap(ErrFormat, "header line missing")
		return
	}
	fields := strings.Fields(s.Text())
	if len(fields) != 5 || fields[0] != "%%MatrixMarket" || fields[1] != "matrix" {
		err = errors.Wrapf(ErrFormat, "expected %%%%MatrixMarket matrix <format> <type> <storage>, got %q", s.Text())
		return
	}
	if header.Format, err = lookup(formats, fields[2], "format"); err != nil {
		return
	}
	if header.Type, err = lookup(types, fields[3], "type"); err != nil {
		return
	}
	if header.Storage, err = lookup(storages, fields[4], "storage"); err != nil {
		return
	}
	if header.Type == Complex || header.Storage == Hermitian {
		err = errors.Wrapf(ErrFormat, "complex matrices are not supported, got %v %v", fields[3], fields[4])
		return
	}
	header.GrBType = defaultGrBTypes[header.Type]

	if !s.Scan() {
		err = errors.Wrap(ErrFormat, "size line missing")
		return
	}
	text := strings.TrimSpace(s.Text())
	if strings.HasPrefix(text, "%%GraphBLAS") {
		fields = strings.Fields(text)
		if len(fields) != 2 {
			err = errors.Wrapf(ErrFormat, "expected %%%%GraphBLAS <type>, got %q", text)
			return
		}
		grbType, ok := graphBLASTypes[fields[1]]
		if !ok {
			err = errors.Wrapf(ErrFormat, "GraphBLAS type %v not supported", fields[1])
			return
		}
		header.GrBType = grbType
		text = ""
	}
	if text == "" || strings.HasPrefix(text, "%") {
		var ok bool
		if text, ok = nextDataLine(s); !ok {
			err = errors.Wrap(ErrFormat, "size line missing")
			return
		}
	}

	fields = strings.Fields(text)
	switch header.Format {
	case Coordinate:
		if len(fields) != 3 {
			err = errors.Wrapf(ErrFormat, "coordinate size line needs 3 entries, got %v", len(fields))
			return
		}
	case Array:
		if len(fields) != 2 {
			err = errors.Wrapf(ErrFormat, "array size line needs 2 entries, got %v", len(fields))
			return
		}
	}
	dims, err := parseInts(fields, "size line")
	if err != nil {
		return
	}
	header.NRows, header.NCols = dims[0], dims[1]
	if header.Format == Coordinate {
		header.NVals = dims[2]
	} else {
		header.NVals = header.NRows * header.NCols
	}
	return header, s, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%v x %v, %v entries", h.NRows, h.NCols, h.NVals)
}
