package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one receipt row, in cart order.
type Line struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type Receipt struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

const separator = "----------------------------------------------"

// Render produces the printable receipt: header, fixed-width columns, a
// separator, and the dollar total. Amounts carry at most two fractional
// digits with trailing zeros trimmed, so 5.00 prints as 5 and 5.50 as 5.5.
func (r Receipt) Render() string {
	var b strings.Builder
	b.WriteString("Receipt:\n\n")
	fmt.Fprintf(&b, "%-20s %-10s %-10s\n", "Name", "Price", "Quantity")
	b.WriteString(separator + "\n")
	for _, ln := range r.Lines {
		fmt.Fprintf(&b, "%-20s %-10s %-10s\n", ln.Name, FormatAmount(ln.UnitPrice), strconv.Itoa(ln.Quantity))
	}
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Total: $%s\n", FormatAmount(r.Total))
	return b.String()
}

// FormatAmount renders a money amount with up to two fractional digits.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
