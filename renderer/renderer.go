// Package renderer turns finance reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/finance"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the registry summary as a markdown document with
// one table row per user.
func SummaryMarkdown(s *finance.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Finance Summary")

	if len(s.Users) == 0 {
		doc.PlainText("No user profiles recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"User", "Transactions", "First", "Last", "Income", "Expenses", "Balance"},
	}
	for _, u := range s.Users {
		first, last := u.FirstActivity.String(), u.LastActivity.String()
		if u.Transactions == 0 {
			first, last = "-", "-"
		}
		table.Rows = append(table.Rows, []string{
			u.Name,
			strconv.Itoa(u.Transactions),
			first,
			last,
			u.TotalIncome.String(),
			u.TotalExpenses.String(),
			u.Balance.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total balance across %d profiles: %s", len(s.Users), s.TotalBalance))

	return doc.String()
}
