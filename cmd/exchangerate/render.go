package main

import (
	"encoding/json"
	"fmt"
	"io"

	"service-exchangerate/internal"

	"github.com/olekukonko/tablewriter"
)

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printResult(from internal.CurrencyCode, to internal.Targets, res internal.QuoteResult) error {
	if a.jsonOut {
		return a.printJSON(res)
	}
	if res.IsSingle() {
		pair := from.Pair(to.Codes()[0])
		_, err := fmt.Fprintf(a.out, "%s %s\n", pair, res.Value())
		return err
	}
	renderPairs(a.out, []string{"Pair", "Value"}, res.Quotes())
	return nil
}

func (a *app) printTimeframe(tf internal.Timeframe) error {
	if a.jsonOut {
		return a.printJSON(tf)
	}
	renderTimeframe(a.out, tf)
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	return table
}

func renderPairs(w io.Writer, header []string, m internal.OrderedMap[string]) {
	table := newTable(w, header)
	for k, v := range m.All() {
		table.Append([]string{k, v})
	}
	table.Render()
}

func renderTimeframe(w io.Writer, tf internal.Timeframe) {
	table := newTable(w, []string{"Date", "Pair", "Value"})
	table.SetRowLine(true)
	for date, quotes := range tf.All() {
		for pair, v := range quotes.All() {
			table.Append([]string{date, pair, v})
		}
	}
	table.Render()
}

func renderArchived(w io.Writer, rows []internal.ArchivedRate) {
	table := newTable(w, []string{"Date", "Base", "Quote", "Rate", "Fetched at"})
	for _, r := range rows {
		table.Append([]string{
			r.AsOfDate.String(),
			r.BaseCCY.String(),
			r.QuoteCCY.String(),
			r.Rate.String(),
			r.FetchedAt.UTC().Format("2006-01-02 15:04:05Z07:00"),
		})
	}
	table.Render()
}
