package solver_test

import (
	"fmt"

	"github.com/oarligo/arcroute/core"
	"github.com/oarligo/arcroute/problem"
	"github.com/oarligo/arcroute/solver"
)

func Example_undirectedSquare() {
	g := core.NewGraph(core.Undirected)
	ids := make([]int, 0, 4)
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		l, _ := g.AddLink(e[0], e[1], 1, core.WithRequired(true))
		ids = append(ids, l.ID)
	}
	_ = g.SetDepot(1)

	p, err := problem.New(g, ids)
	if err != nil {
		fmt.Println(err)
		return
	}
	r, err := solver.Solve(p, solver.UCPP)
	if err != nil {
		fmt.Println(err)
		return
	}
	total, _ := r.TotalCost()
	fmt.Println(total)
	// Output: 4
}
