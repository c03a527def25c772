package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meshdom/meshdom/mesh"
)

// ReadElementFile reads a count-prefixed element file and returns the
// vertex index triples in file order.
func ReadElementFile(path string, opts ...Option) ([][3]int, error) {
	cfg := newConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	defer f.Close()

	elements, err := DecodeElements(f)
	if err != nil {
		return nil, fmt.Errorf("meshio: %s: %w", path, err)
	}
	cfg.logger.Debug("read element file", "path", path, "elements", len(elements))

	return elements, nil
}

// ReadVertexFile reads a count-prefixed vertex file and returns the node
// coordinates in file order.
func ReadVertexFile(path string, opts ...Option) ([]mesh.Node, error) {
	cfg := newConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	defer f.Close()

	nodes, err := DecodeVertices(f)
	if err != nil {
		return nil, fmt.Errorf("meshio: %s: %w", path, err)
	}
	cfg.logger.Debug("read vertex file", "path", path, "vertices", len(nodes))

	return nodes, nil
}

// DecodeElements parses element data from r: a count line, then one
// three-index line per element.
func DecodeElements(r io.Reader) ([][3]int, error) {
	sc := bufio.NewScanner(r)

	count, err := readCount(sc)
	if err != nil {
		return nil, err
	}
	elements := make([][3]int, 0, count)
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %d fields, want 3: %w", line, len(fields), ErrBadFormat)
		}
		var tri [3]int
		for n, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a vertex index: %w", line, field, ErrBadFormat)
			}
			tri[n] = v
		}
		elements = append(elements, tri)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(elements) != count {
		return nil, fmt.Errorf("declared %d, read %d: %w", count, len(elements), ErrCountMismatch)
	}

	return elements, nil
}

// DecodeVertices parses vertex data from r: a count line, then one
// x-y coordinate line per vertex.
func DecodeVertices(r io.Reader) ([]mesh.Node, error) {
	sc := bufio.NewScanner(r)

	count, err := readCount(sc)
	if err != nil {
		return nil, err
	}
	nodes := make([]mesh.Node, 0, count)
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %d fields, want 2: %w", line, len(fields), ErrBadFormat)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a coordinate: %w", line, fields[0], ErrBadFormat)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a coordinate: %w", line, fields[1], ErrBadFormat)
		}
		nodes = append(nodes, mesh.Node{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(nodes) != count {
		return nil, fmt.Errorf("declared %d, read %d: %w", count, len(nodes), ErrCountMismatch)
	}

	return nodes, nil
}

// readCount consumes the header line and parses the declared entry count.
func readCount(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("missing count header: %w", ErrBadFormat)
	}
	count, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("line 1: %q is not an entry count: %w", strings.TrimSpace(sc.Text()), ErrBadFormat)
	}

	return count, nil
}
