package model

import (
	"github.com/cpmech/gosl/chk"

	"github.com/ETH-WindMil/benchmarktu1402/element"
	"github.com/ETH-WindMil/benchmarktu1402/material"
	"github.com/ETH-WindMil/benchmarktu1402/quadrature"
)

// Element references an ordered list of node labels, an element kind, a
// per-integration-point material list, a per-integration-point thickness
// vector, and a quadrature rule.
type Element struct {
	Label int
	Kind  element.Kind

	NodeLabels []int
	Material   []*material.LinearElastic
	Thickness  []float64
	Rule       *quadrature.Rule
}

// NewElement validates that the material/thickness arrays have one entry
// per integration point and that the node count matches the element kind's
// topology (spec.md §3 Element invariant), returning InvalidElement
// otherwise.
func NewElement(kind element.Kind, nodeLabels []int, mat []*material.LinearElastic, thickness []float64, rule *quadrature.Rule) (*Element, error) {
	if len(nodeLabels) != kind.NumNodes() {
		return nil, chk.Err("model: InvalidElement: %s needs %d nodes, got %d", kind, kind.NumNodes(), len(nodeLabels))
	}
	np := rule.NumPoints()
	if len(mat) != np || len(thickness) != np {
		return nil, chk.Err("model: InvalidElement: material/thickness length %d/%d must match rule points %d", len(mat), len(thickness), np)
	}
	return &Element{Kind: kind, NodeLabels: nodeLabels, Material: mat, Thickness: thickness, Rule: rule}, nil
}
