package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshdom/meshdom/builder"
	"github.com/meshdom/meshdom/mesh"
	"github.com/meshdom/meshdom/meshio"
)

var errNoSource = errors.New("cli: no domain source: pass --elements and --vertices, or --rows and --cols")

// domainFlags collects the flags shared by every command that needs a
// domain: either a pair of mesh files or the dimensions of a generated
// rectangle grid.
type domainFlags struct {
	elements string
	vertices string
	rows     int
	cols     int
	epsilon  float64
	noIndex  bool
}

func (f *domainFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.elements, "elements", "", "path to the element file")
	cmd.Flags().StringVar(&f.vertices, "vertices", "", "path to the vertex file")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "rows of a generated rectangle grid")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "columns of a generated rectangle grid")
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", 0, "geometric tolerance (default 1e-9)")
	cmd.Flags().BoolVar(&f.noIndex, "no-index", false, "disable the spatial index for closest-element queries")
}

// load resolves the flags against cfg and constructs the domain. Flags win
// over config values; file paths win over grid dimensions.
func (f *domainFlags) load(ctx context.Context, cfg Config) (*mesh.PolygonalDomain, error) {
	logger := loggerFromContext(ctx)

	elemPath := f.elements
	vertPath := f.vertices
	if elemPath == "" && vertPath == "" {
		elemPath = cfg.Elements
		vertPath = cfg.Vertices
	}

	eps := f.epsilon
	if eps == 0 {
		eps = cfg.Epsilon
	}
	opts := mesh.DefaultOptions()
	if eps != 0 {
		opts.Epsilon = eps
	}
	opts.UseIndex = !f.noIndex

	var (
		nodes    []mesh.Node
		elements [][3]int
		err      error
	)
	switch {
	case elemPath != "" && vertPath != "":
		nodes, err = meshio.ReadVertexFile(vertPath, meshio.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		elements, err = meshio.ReadElementFile(elemPath, meshio.WithLogger(logger))
		if err != nil {
			return nil, err
		}
	case elemPath != "" || vertPath != "":
		return nil, fmt.Errorf("cli: --elements and --vertices must be given together: %w", errNoSource)
	case f.rows > 0 && f.cols > 0:
		nodes, elements, err = builder.Rectangle(f.rows, f.cols)
		if err != nil {
			return nil, err
		}
		logger.Debug("generated rectangle grid", "rows", f.rows, "cols", f.cols)
	default:
		return nil, errNoSource
	}

	d, err := mesh.NewPolygonalDomain(nodes, elements, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("domain ready", "elements", d.NumElements(), "vertices", d.NumVertices())

	return d, nil
}
