package core_test

import (
	"fmt"

	"github.com/oarligo/arcroute/core"
)

// Example_undirectedSquare builds the four-vertex square used throughout
// the solver package's UCPP fixtures.
func Example_undirectedSquare() {
	g := core.NewGraph(core.Undirected)
	for _, e := range [][3]int{{1, 2, 5}, {2, 3, 3}, {3, 4, 7}, {4, 1, 2}} {
		_, _ = g.AddLink(e[0], e[1], int64(e[2]), core.WithRequired(true))
	}
	_ = g.SetDepot(1)

	var total int64
	for _, l := range g.RequiredLinks() {
		total += l.Cost
	}
	fmt.Println(total)
	// Output: 17
}
