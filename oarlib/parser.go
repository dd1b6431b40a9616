package oarlib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oarligo/arcroute/core"
)

// ErrParse indicates malformed OARLIB input; wrapped with the offending
// line number and a reason, the way core's sentinel errors are wrapped
// with vertex/link context at their call sites.
var ErrParse = errors.New("oarlib: parse error")

// Logger receives parser warnings (a malformed link line skipped because a
// later well-formed line exists). nil by default; oarlib itself never logs
// on its own initiative. Mirrors solver.Logger's shape so cmd/arcroute can
// hand the same concrete logger to both without an adapter.
type Logger interface {
	Printf(format string, args ...any)
}

// Option configures a Parse call.
type Option func(*config)

type config struct {
	logger Logger
}

// WithLogger attaches a logger that receives skipped-line warnings.
func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// Result is everything Parse recovers from an OARLIB instance: the graph,
// its required link ids (ascending, deduplicated, ready for problem.New),
// and the depot vertex id.
type Result struct {
	Graph    *core.Graph
	Required []int
	Depot    int
}

func parseErr(line int, format string, args ...any) error {
	return fmt.Errorf("oarlib: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrParse)
}

// rawLine is one non-blank, non-comment input line paired with its
// original line number, for error messages that survive blank/comment
// stripping.
type rawLine struct {
	num  int
	text string
}

// ParseString is Parse over a string, for tests and embedding shells that
// already hold the instance text in memory.
func ParseString(text string, opts ...Option) (*Result, error) {
	return Parse(strings.NewReader(text), opts...)
}

// Parse reads an OARLIB-format instance: header tokens (Graph Type, N, M,
// Depot ID) anywhere before the data sections, then a LINKS/END LINKS
// section and an optional VERTICES/END VERTICES section, each optionally
// preceded by its own LINE FORMAT override.
func Parse(r io.Reader, opts ...Option) (*Result, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	var lines []rawLine
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		lines = append(lines, rawLine{num: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("oarlib: reading input: %w", err)
	}

	var kind core.Kind
	kindSet := false
	depotID := 0
	depotSet := false

	var linkLines, vertexLines []rawLine
	var linkFormat, vertexFormat []string
	i := 0
	for i < len(lines) {
		l := lines[i]
		upper := strings.ToUpper(l.text)
		switch {
		case strings.HasPrefix(upper, "GRAPH TYPE"):
			k, err := parseKindToken(headerValue(l.text))
			if err != nil {
				return nil, parseErr(l.num, "%v", err)
			}
			kind, kindSet = k, true
			i++
		case strings.HasPrefix(upper, "DEPOT ID"):
			v, err := strconv.Atoi(strings.TrimSpace(headerValue(l.text)))
			if err != nil {
				return nil, parseErr(l.num, "bad depot id %q", headerValue(l.text))
			}
			depotID, depotSet = v, true
			i++
		case strings.HasPrefix(upper, "N:") || upper == "N":
			i++ // not read: the vertex set is the ids that lines reference.
		case strings.HasPrefix(upper, "M:") || upper == "M":
			i++ // advisory link count, never checked against actual count.
		case upper == "LINKS":
			i++
			end, format, body, err := readSection(lines, i, "END LINKS")
			if err != nil {
				return nil, err
			}
			linkLines, linkFormat = body, format
			i = end + 1
		case upper == "VERTICES":
			i++
			end, format, body, err := readSection(lines, i, "END VERTICES")
			if err != nil {
				return nil, err
			}
			vertexLines, vertexFormat = body, format
			i = end + 1
		default:
			return nil, parseErr(l.num, "unrecognized header line %q", l.text)
		}
	}

	if !kindSet {
		return nil, fmt.Errorf("oarlib: missing Graph Type header: %w", ErrParse)
	}
	if len(linkLines) == 0 {
		return nil, fmt.Errorf("oarlib: empty LINKS section: %w", ErrParse)
	}

	g := core.NewGraph(kind)
	required, err := buildLinks(g, kind, linkLines, linkFormat, cfg)
	if err != nil {
		return nil, err
	}
	if err := buildVertices(g, vertexLines, vertexFormat); err != nil {
		return nil, err
	}

	if !depotSet {
		depotID = 1
	}
	if err := g.SetDepot(depotID); err != nil {
		return nil, fmt.Errorf("oarlib: depot %d: %w", depotID, err)
	}

	return &Result{Graph: g, Required: required, Depot: depotID}, nil
}

// headerValue returns the text after a header line's ':' separator.
func headerValue(line string) string {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}

func parseKindToken(tok string) (core.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "undirected":
		return core.Undirected, nil
	case "directed":
		return core.Directed, nil
	case "mixed":
		return core.Mixed, nil
	case "windy":
		return core.Windy, nil
	default:
		return 0, fmt.Errorf("unrecognized graph type %q", tok)
	}
}

// readSection consumes an optional "LINE FORMAT:" line followed by data
// lines up to (and including) the closing marker, returning the index of
// the closing line, the format tokens (nil if not overridden), and the
// data lines in between.
func readSection(lines []rawLine, start int, closing string) (end int, format []string, body []rawLine, err error) {
	i := start
	if i < len(lines) && strings.HasPrefix(strings.ToUpper(lines[i].text), "LINE FORMAT") {
		format = splitFields(headerValue(lines[i].text))
		i++
	}
	bodyStart := i
	for i < len(lines) && strings.ToUpper(lines[i].text) != closing {
		i++
	}
	if i >= len(lines) {
		return 0, nil, nil, fmt.Errorf("oarlib: missing %s marker: %w", closing, ErrParse)
	}
	return i, format, lines[bodyStart:i], nil
}

func splitFields(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

func defaultLinkFormat(kind core.Kind) []string {
	switch kind {
	case core.Windy:
		return []string{"v1", "v2", "cost", "reversecost", "required"}
	case core.Mixed:
		return []string{"v1", "v2", "cost", "isdirected", "required"}
	default:
		return []string{"v1", "v2", "cost", "required"}
	}
}

func parseBool(tok string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "true", "t", "yes", "1":
		return true, true
	case "false", "f", "no", "0":
		return false, true
	default:
		return false, false
	}
}

type linkFields struct {
	v1, v2      int
	cost        int64
	reverseCost int64
	hasReverse  bool
	isDirected  bool
	hasDirected bool
	required    bool
}

func parseLinkLine(text string, format []string) (linkFields, error) {
	fields := splitFields(strings.ReplaceAll(text, ",", " "))
	var lf linkFields
	for idx, name := range format {
		if idx >= len(fields) {
			break // trailing optional columns omitted
		}
		tok := fields[idx]
		switch name {
		case "v1":
			v, err := strconv.Atoi(tok)
			if err != nil {
				return lf, fmt.Errorf("bad v1 %q", tok)
			}
			lf.v1 = v
		case "v2":
			v, err := strconv.Atoi(tok)
			if err != nil {
				return lf, fmt.Errorf("bad v2 %q", tok)
			}
			lf.v2 = v
		case "cost":
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return lf, fmt.Errorf("bad cost %q", tok)
			}
			lf.cost = v
		case "reversecost":
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return lf, fmt.Errorf("bad reverseCost %q", tok)
			}
			lf.reverseCost, lf.hasReverse = v, true
		case "isdirected":
			b, ok := parseBool(tok)
			if !ok {
				return lf, fmt.Errorf("bad isDirected %q", tok)
			}
			lf.isDirected, lf.hasDirected = b, true
		case "required":
			b, ok := parseBool(tok)
			if !ok {
				return lf, fmt.Errorf("bad required %q", tok)
			}
			lf.required = b
		default:
			// unknown format token; ignore the column.
		}
	}
	if lf.v1 == 0 || lf.v2 == 0 {
		return lf, fmt.Errorf("missing v1/v2")
	}
	return lf, nil
}

// buildLinks parses every link line, skipping malformed lines with a
// logged warning as long as a later well-formed line exists; a malformed
// line with no well-formed line after it is a hard parse error, matching
// the policy that an instance must never silently lose its last links.
func buildLinks(g *core.Graph, kind core.Kind, lines []rawLine, format []string, cfg *config) ([]int, error) {
	if format == nil {
		format = defaultLinkFormat(kind)
	}

	type attempt struct {
		idx int
		lf  linkFields
		err error
	}
	attempts := make([]attempt, len(lines))
	lastGood := -1
	for idx, l := range lines {
		lf, err := parseLinkLine(l.text, format)
		attempts[idx] = attempt{idx: idx, lf: lf, err: err}
		if err == nil {
			lastGood = idx
		}
	}
	if lastGood == -1 {
		return nil, parseErr(lines[len(lines)-1].num, "no well-formed link line in LINKS section")
	}

	var required []int
	for _, a := range attempts {
		if a.err != nil {
			if a.idx > lastGood {
				return nil, parseErr(lines[a.idx].num, "%v", a.err)
			}
			cfg.logf("oarlib: skipping malformed link line %d: %v", lines[a.idx].num, a.err)
			continue
		}
		lf := a.lf
		opts := []core.LinkOption{core.WithRequired(lf.required)}
		if kind == core.Mixed && lf.hasDirected {
			opts = append(opts, core.WithDirected(lf.isDirected))
		}
		if kind == core.Windy && lf.hasReverse {
			opts = append(opts, core.WithReverseCost(lf.reverseCost))
		}
		link, err := g.AddLink(lf.v1, lf.v2, lf.cost, opts...)
		if err != nil {
			return nil, parseErr(lines[a.idx].num, "%v", err)
		}
		if lf.required {
			required = append(required, link.ID)
		}
	}
	return required, nil
}

func buildVertices(g *core.Graph, lines []rawLine, format []string) error {
	if len(lines) == 0 {
		return nil
	}
	hasID := false
	if format != nil {
		for _, f := range format {
			if f == "id" {
				hasID = true
			}
		}
	} else {
		// Default [id,]x,y: sniff from the first line's field count.
		fields := splitFields(strings.ReplaceAll(lines[0].text, ",", " "))
		hasID = len(fields) >= 3
		if hasID {
			format = []string{"id", "x", "y"}
		} else {
			format = []string{"x", "y"}
		}
	}

	for idx, l := range lines {
		fields := splitFields(strings.ReplaceAll(l.text, ",", " "))
		var id int
		var x, y float64
		var xSet, ySet bool
		col := 0
		if hasID {
			if col >= len(fields) {
				return parseErr(l.num, "missing vertex id")
			}
			v, err := strconv.Atoi(fields[col])
			if err != nil {
				return parseErr(l.num, "bad vertex id %q", fields[col])
			}
			id = v
			col++
		} else {
			id = idx + 1
		}
		for _, name := range format {
			if name == "id" {
				continue
			}
			if col >= len(fields) {
				break
			}
			v, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return parseErr(l.num, "bad %s %q", name, fields[col])
			}
			switch name {
			case "x":
				x, xSet = v, true
			case "y":
				y, ySet = v, true
			}
			col++
		}
		if xSet && ySet {
			g.EnsureVertex(id)
			if err := g.SetVertexCoords(id, x, y); err != nil {
				return parseErr(l.num, "%v", err)
			}
		}
	}
	return nil
}
