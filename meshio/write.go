package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/meshdom/meshdom/mesh"
)

// WriteElementFile writes elements to path in the count-prefixed format
// ReadElementFile consumes, truncating any existing file.
func WriteElementFile(path string, elements [][3]int, opts ...Option) error {
	cfg := newConfig(opts)
	if err := writeFile(path, func(w io.Writer) error {
		return EncodeElements(w, elements)
	}); err != nil {
		return err
	}
	cfg.logger.Debug("wrote element file", "path", path, "elements", len(elements))

	return nil
}

// WriteVertexFile writes nodes to path in the count-prefixed format
// ReadVertexFile consumes, truncating any existing file.
func WriteVertexFile(path string, nodes []mesh.Node, opts ...Option) error {
	cfg := newConfig(opts)
	if err := writeFile(path, func(w io.Writer) error {
		return EncodeVertices(w, nodes)
	}); err != nil {
		return err
	}
	cfg.logger.Debug("wrote vertex file", "path", path, "vertices", len(nodes))

	return nil
}

// EncodeElements writes element data to w: a count line, then one
// tab-separated index triple per line.
func EncodeElements(w io.Writer, elements [][3]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(elements)); err != nil {
		return err
	}
	for _, tri := range elements {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\n", tri[0], tri[1], tri[2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeVertices writes vertex data to w: a count line, then one
// tab-separated coordinate pair per line.
func EncodeVertices(w io.Writer, nodes []mesh.Node) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(nodes)); err != nil {
		return err
	}
	for _, n := range nodes {
		x := strconv.FormatFloat(n.X, 'g', -1, 64)
		y := strconv.FormatFloat(n.Y, 'g', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", x, y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("meshio: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("meshio: %s: %w", path, err)
	}

	return nil
}
