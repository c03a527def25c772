package sparse

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// csrEnvelope is the JSON shape of the binary encoding: the raw CSR arrays,
// nothing else. Field names match the established on-disk format.
type csrEnvelope struct {
	Values   []float64 `json:"values"`
	ColIndex []int     `json:"column_indices"`
	RowPtr   []int     `json:"row_pointers"`
	Columns  int       `json:"columns"`
}

// EncodeText writes the matrix to w as dense text: one line per row,
// entries tab-separated, zeros included. Human-readable, but O(rows·cols)
// output regardless of sparsity.
func (m *CSR) EncodeText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		row := make([]float64, m.cols)
		for n := m.rowPtr[i]; n < m.rowPtr[i+1]; n++ {
			row[m.colIndex[n]] = m.values[n]
		}
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeBinary writes the matrix to w as gzip-compressed JSON of the raw
// CSR arrays. Compact for large sparse matrices.
func (m *CSR) EncodeBinary(w io.Writer) error {
	zw := gzip.NewWriter(w)
	env := csrEnvelope{Values: m.values, ColIndex: m.colIndex, RowPtr: m.rowPtr, Columns: m.cols}
	if err := json.NewEncoder(zw).Encode(env); err != nil {
		zw.Close()
		return fmt.Errorf("sparse: encode: %w", err)
	}

	return zw.Close()
}

// SaveText writes the dense text encoding to path, truncating any existing
// file.
func (m *CSR) SaveText(path string) error {
	return m.saveWith(path, m.EncodeText)
}

// SaveBinary writes the gzip/JSON encoding to path, truncating any existing
// file.
func (m *CSR) SaveBinary(path string) error {
	return m.saveWith(path, m.EncodeBinary)
}

func (m *CSR) saveWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sparse: save %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("sparse: save %s: %w", path, err)
	}

	return f.Close()
}

// DecodeText parses the dense text encoding from r.
// Returns ErrBadEncoding for unparsable entries and ErrRagged for rows of
// differing lengths.
func DecodeText(r io.Reader) (*CSR, error) {
	var dense [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, field, ErrBadEncoding)
			}
			row = append(row, v)
		}
		dense = append(dense, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sparse: decode text: %w", err)
	}

	return NewFromDense(dense)
}

// DecodeBinary parses the gzip/JSON encoding from r and validates the raw
// arrays via FromRaw.
func DecodeBinary(r io.Reader) (*CSR, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip: %v: %w", err, ErrBadEncoding)
	}
	defer zr.Close()

	var env csrEnvelope
	if err := json.NewDecoder(zr).Decode(&env); err != nil {
		return nil, fmt.Errorf("json: %v: %w", err, ErrBadEncoding)
	}
	if env.RowPtr == nil {
		env.RowPtr = []int{0}
	}

	return FromRaw(env.Values, env.ColIndex, env.RowPtr, env.Columns)
}

// gzipMagic is the two-byte header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// Load reads a matrix from path, accepting either encoding: the gzip magic
// bytes select the binary decoder, anything else falls through to text.
func Load(path string) (*CSR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sparse: load %s: %w", path, err)
	}
	var m *CSR
	if bytes.HasPrefix(data, gzipMagic) {
		m, err = DecodeBinary(bytes.NewReader(data))
	} else {
		m, err = DecodeText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("sparse: load %s: %w", path, err)
	}

	return m, nil
}
