package report

import (
	"io"
	"strconv"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// DefaultTestCaseLabel names the outcomes recorded before any test case was opened.
const DefaultTestCaseLabel = "(default)"

var headers = []string{"Test Case", "Passed", "Failed", "Errors"}

// Table writes a markdown table with the outcome counts of each test case.
// Test cases appear once, in the order they were first opened; outcomes
// recorded outside any opened test case come last.
func Table(w io.Writer, results fuzzlog.Results) error {
	passed, failed, errored := results.Passed(), results.Failed(), results.Errors()

	table := newTable(w)
	for _, id := range testCases(results) {
		label := id.String()
		if id == fuzzlog.DefaultTestCase {
			label = DefaultTestCaseLabel
		}
		row := []string{
			label,
			strconv.Itoa(len(passed.Descriptions(id))),
			strconv.Itoa(len(failed.Descriptions(id))),
			strconv.Itoa(len(errored.Descriptions(id))),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func testCases(results fuzzlog.Results) []fuzzlog.TestCaseID {
	seen := make(map[fuzzlog.TestCaseID]bool)
	var ids []fuzzlog.TestCaseID
	add := func(candidates []fuzzlog.TestCaseID) {
		for _, id := range candidates {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	add(results.AllTestCases())
	add(results.Passed().TestCases())
	add(results.Failed().TestCases())
	add(results.Errors().TestCases())
	return ids
}

func newTable(w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 80,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
