package sqlbuilder

import (
	"github.com/jedib0t/go-pretty/table"
)

// Schematic renders the statement's clause list as a readable table, one
// row per clause in call order. Useful when debugging a long chain.
func (s *Statement) Schematic() string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"#", "Clause", "SQL"})
	for i, c := range s.clauses {
		w.AppendRow(table.Row{i + 1, string(c.typ), c.String()})
	}
	return w.Render()
}
