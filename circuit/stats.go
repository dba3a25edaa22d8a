//
// stats.go
//
// Copyright (c) 2026 The yaogc Authors
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// PrintStats prints a gate-type histogram of c to w.
func (c *Circuit) PrintStats(w io.Writer) {
	counts := make(map[GateType]int)
	for _, g := range c.Gates {
		counts[g.Op]++
	}

	tab := tabulate.New(tabulate.Github)
	tab.Header("Gate")
	tab.Header("Count").SetAlign(tabulate.MR)

	for op := AND; op <= ORNOT; op++ {
		n, ok := counts[op]
		if !ok {
			continue
		}
		row := tab.Row()
		row.Column(op.String())
		row.Column(fmt.Sprintf("%d", n))
	}

	row := tab.Row()
	row.Column("Gates")
	row.Column(fmt.Sprintf("%d", len(c.Gates)))
	row = tab.Row()
	row.Column("Wires")
	row.Column(fmt.Sprintf("%d", c.WireCount))
	row = tab.Row()
	row.Column("Inputs")
	row.Column(fmt.Sprintf("%d", len(c.PrimaryInputs)))
	row = tab.Row()
	row.Column("Outputs")
	row.Column(fmt.Sprintf("%d", len(c.PrimaryOutputs)))

	tab.Print(w)
}
