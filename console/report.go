package console

import (
	"chat-mediator/domain/event"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// RenderStats prints the event counters as a table, rows sorted by kind then key.
func RenderStats(w io.Writer, stats event.Stats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Key", "Count"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	types := lo.MapKeys(stats.ByType, func(_ uint64, k event.Type) string { return string(k) })
	appendRows(table, "event", types)
	appendRows(table, "author", stats.ByAuthor)
	appendRows(table, "lang", stats.ByLang)

	table.Render()
}

func appendRows(table *tablewriter.Table, kind string, counts map[string]uint64) {
	keys := lo.Keys(counts)
	slices.Sort(keys)
	for _, key := range keys {
		table.Append([]string{kind, key, strconv.FormatUint(counts[key], 10)})
	}
}
