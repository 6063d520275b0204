package output

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"

	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/search"
)

const rootNode = "root"

// SearchGraph builds a Graphviz graph of a search report: one node for
// the position and one per root move, the chosen move filled.
func SearchGraph(report *search.Report) (*gographviz.Graph, error) {
	if report == nil {
		return nil, fmt.Errorf("no search report")
	}

	g := gographviz.NewGraph()
	if err := g.SetName("search"); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	label := fmt.Sprintf("%v to move, depth %d, %d nodes", report.Colour, report.Depth, report.Nodes)
	if report.Fallback {
		label += ", random fallback"
	}
	if err := g.AddNode("search", rootNode, map[string]string{
		"label": quote(label),
		"shape": "box",
	}); err != nil {
		return nil, errors.Wrap(err, "adding root node")
	}

	for i, root := range report.Roots {
		name := fmt.Sprintf("m%d", i)
		attrs := map[string]string{
			"label": quote(fmt.Sprintf("%v %s", root.Move, search.FormatScore(root.Score))),
		}
		if root.Move == report.Best {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "lightgrey"
		}
		if err := g.AddNode("search", name, attrs); err != nil {
			return nil, errors.Wrapf(err, "adding node for %v", root.Move)
		}
		if err := g.AddEdge(rootNode, name, true, map[string]string{
			"label": quote(fmt.Sprintf("%d", root.Nodes)),
		}); err != nil {
			return nil, errors.Wrapf(err, "adding edge for %v", root.Move)
		}
	}
	return g, nil
}

// WriteSearchDOT writes the report as a DOT digraph.
func WriteSearchDOT(w io.Writer, report *search.Report) error {
	g, err := SearchGraph(report)
	if err != nil {
		return errors.Wrap(err, "building search graph")
	}
	_, err = io.WriteString(w, g.String())
	return err
}
