// SPDX-License-Identifier: MIT

package airframe

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aerolattice/matrix"
	"github.com/katalvlaran/aerolattice/vector"
	"github.com/katalvlaran/aerolattice/vortex"
)

// lattice is the flattened view of an Airframe: sections outer, panels inner.
// Index k of every slice refers to the same panel.
type lattice struct {
	panels  []vortex.VortexPanel
	bcs     []vector.Vector3D
	normals []vector.Vector3D
	section []int // owning section of panel k
}

func (a *Airframe) flatten() lattice {
	n := a.PanelCount()
	l := lattice{
		panels:  make([]vortex.VortexPanel, 0, n),
		bcs:     make([]vector.Vector3D, 0, n),
		normals: make([]vector.Vector3D, 0, n),
		section: make([]int, 0, n),
	}
	for s := range a.sections {
		sec := &a.sections[s]
		for k := range sec.panels {
			l.panels = append(l.panels, sec.panels[k])
			l.bcs = append(l.bcs, sec.bcs[k])
			l.normals = append(l.normals, sec.normal)
			l.section = append(l.section, s)
		}
	}

	return l
}

// NormalwashMatrix assembles the N×N influence matrix
//
//	A[i][j] = panel_j.InducedFlow(bc_i) · n_i
//
// in flattening order. Rows are computed concurrently (at most WithWorkers
// goroutines); each goroutine owns one row, so the result does not depend on
// scheduling.
//
// Errors:
//   - matrix.ErrNaNInf if an influence is not finite.
func (a *Airframe) NormalwashMatrix() (*matrix.Dense, error) {
	l := a.flatten()
	n := len(l.panels)
	rows := make([]vector.Vector, n)

	var g errgroup.Group
	g.SetLimit(a.opts.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			row := vector.Zeros(n)
			bc, nrm := l.bcs[i], l.normals[i]
			for j := 0; j < n; j++ {
				if err := row.Set(j, l.panels[j].InducedFlow(bc).Dot(nrm)); err != nil {
					return fmt.Errorf("row %d: %w", i, err)
				}
			}
			rows[i] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("NormalwashMatrix: %w", err)
	}

	m, err := matrix.NewFromRows(rows, a.opts.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("NormalwashMatrix: %w", err)
	}

	return m, nil
}

// FreestreamVector returns the right-hand side of the tangency system:
// entry i is −V∞·n_i in flattening order.
func (a *Airframe) FreestreamVector() vector.Vector {
	out := make([]float64, 0, a.PanelCount())
	for s := range a.sections {
		w := -a.freestream.Dot(a.sections[s].normal)
		for range a.sections[s].panels {
			out = append(out, w)
		}
	}

	return vector.NewVector(out...)
}
