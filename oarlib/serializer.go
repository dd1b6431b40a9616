package oarlib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oarligo/arcroute/core"
)

// Serialize renders g back into OARLIB text: the header tokens, a LINKS
// section using each kind's default column layout, and a VERTICES section
// whenever at least one vertex carries coordinates. Link ids are not part
// of the wire format (OARLIB instances don't carry them); Serialize then
// Parse assigns fresh dense ids in link order, so round-tripping preserves
// structure and cost but not a particular link's numeric id.
func Serialize(g *core.Graph, depot int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Graph Type: %s\n", g.Kind())
	fmt.Fprintf(&b, "N: %d\n", g.NumVertices())
	fmt.Fprintf(&b, "M: %d\n", g.NumLinks())
	fmt.Fprintf(&b, "Depot ID: %d\n", depot)
	b.WriteString("\n")

	links := append([]*core.Link(nil), g.Links()...)
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })

	b.WriteString("LINKS\n")
	switch g.Kind() {
	case core.Windy:
		b.WriteString("LINE FORMAT: v1,v2,cost,reverseCost,required\n")
		for _, l := range links {
			fmt.Fprintf(&b, "%d,%d,%d,%d,%t\n", l.From, l.To, l.Cost, l.ReverseCost, l.Required)
		}
	case core.Mixed:
		b.WriteString("LINE FORMAT: v1,v2,cost,isDirected,required\n")
		for _, l := range links {
			fmt.Fprintf(&b, "%d,%d,%d,%t,%t\n", l.From, l.To, l.Cost, l.Directed, l.Required)
		}
	default:
		b.WriteString("LINE FORMAT: v1,v2,cost,required\n")
		for _, l := range links {
			fmt.Fprintf(&b, "%d,%d,%d,%t\n", l.From, l.To, l.Cost, l.Required)
		}
	}
	b.WriteString("END LINKS\n")

	vertices := append([]*core.Vertex(nil), g.Vertices()...)
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].ID < vertices[j].ID })
	var withCoords []*core.Vertex
	for _, v := range vertices {
		if v.HasCoords {
			withCoords = append(withCoords, v)
		}
	}
	if len(withCoords) > 0 {
		b.WriteString("\nVERTICES\n")
		b.WriteString("LINE FORMAT: id,x,y\n")
		for _, v := range withCoords {
			fmt.Fprintf(&b, "%d,%g,%g\n", v.ID, v.X, v.Y)
		}
		b.WriteString("END VERTICES\n")
	}

	return b.String()
}
