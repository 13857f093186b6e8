// Package quadrature provides Gauss integration point/weight tables for the
// domains used by the element library: line, triangle, quadrilateral,
// tetrahedron and hexahedron.
package quadrature

import "github.com/cpmech/gosl/chk"

// Domain identifies the reference shape a rule integrates over.
type Domain int

const (
	Line Domain = iota
	Triangle
	Quadrilateral
	Tetrahedron
	Hexahedron
)

// Point is one row of a quadrature table: natural coordinates followed by
// per-axis weights. Tensor-product rules (quadrilateral, hexahedron) carry
// one weight per axis; the element loop multiplies W1*W2(*W3).
type Point struct {
	R1, R2, R3 float64
	W1, W2, W3 float64
}

// Rule is a full set of integration points for a given domain and rule
// number.
type Rule struct {
	Domain Domain
	Number int
	Points []Point
}

// Get returns the tabulated rule for (domain, number), or InvalidRule if the
// pair is not one of the supported rules.
func Get(domain Domain, number int) (*Rule, error) {
	var pts []Point
	switch domain {
	case Line:
		pts = lineRule(number)
	case Triangle:
		pts = triangleRule(number)
	case Quadrilateral:
		pts = quadrilateralRule(number)
	case Tetrahedron:
		pts = tetrahedronRule(number)
	case Hexahedron:
		pts = hexahedronRule(number)
	default:
		return nil, chk.Err("quadrature: unknown domain %v", domain)
	}
	if pts == nil {
		return nil, chk.Err("quadrature: InvalidRule: no rule %d for domain %v", number, domain)
	}
	return &Rule{Domain: domain, Number: number, Points: pts}, nil
}

// NumPoints is a convenience accessor used by element code that needs to
// size per-integration-point arrays (material, thickness) before building an
// element on this Rule.
func (r *Rule) NumPoints() int { return len(r.Points) }
