package mesh_test

import (
	"math/rand"
	"testing"

	"github.com/meshdom/meshdom/mesh"
)

// benchDomain is a 60×60 triangulated grid (7200 elements).
func benchDomain(b *testing.B, opts mesh.Options) *mesh.PolygonalDomain {
	b.Helper()
	nodes, tris := gridDomainData(60, 60)
	d, err := mesh.NewPolygonalDomain(nodes, tris, opts)
	if err != nil {
		b.Fatalf("NewPolygonalDomain: %v", err)
	}
	return d
}

func BenchmarkNewPolygonalDomain(b *testing.B) {
	nodes, tris := gridDomainData(60, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.NewPolygonalDomain(nodes, tris, mesh.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClosestElement_Quadtree(b *testing.B) {
	d := benchDomain(b, mesh.DefaultOptions())
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := mesh.Node{X: rng.Float64() * 60, Y: rng.Float64() * 60}
		if _, err := d.ClosestElement(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClosestElement_Exhaustive(b *testing.B) {
	d := benchDomain(b, mesh.Options{UseIndex: false})
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := mesh.Node{X: rng.Float64() * 60, Y: rng.Float64() * 60}
		if _, err := d.ClosestElement(p); err != nil {
			b.Fatal(err)
		}
	}
}
