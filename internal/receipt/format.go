// Package receipt renders cart contents into the byte-exact document the
// thermal printer expects: fixed-width text lines interleaved with ESC/POS
// alignment and emphasis sequences.
package receipt

import (
	"fmt"
	"strings"
)

const (
	storeNameLine1 = "TEH KENCANA POS"
	storeNameLine2 = "Indonesia & Eatery"
	thanksLine     = "Terima Kasih!"

	nameWidth     = 16
	qtyWidth      = 3
	subtotalWidth = 9
)

var separator = strings.Repeat("=", 32)

// Entry is one receipt line: a product name, unit price and quantity.
type Entry struct {
	Name     string
	Price    float64
	Quantity int
}

// Format renders the receipt for the given entries and total. It is a pure
// function: identical inputs always produce byte-identical output, an empty
// entry list produces header and footer only.
//
// Money is printed as whole currency units, truncated toward zero — never
// rounded.
func Format(entries []Entry, total float64) []byte {
	var sb strings.Builder

	sb.WriteString(alignCenter)
	sb.WriteString(boldOn)
	sb.WriteString(storeNameLine1 + "\n")
	sb.WriteString(boldOff)
	sb.WriteString(storeNameLine2 + "\n")
	sb.WriteString(separator + "\n")
	sb.WriteString(alignLeft)

	for _, e := range entries {
		sb.WriteString(formatEntry(e) + "\n")
	}

	sb.WriteString(separator + "\n")
	sb.WriteString(alignCenter)
	sb.WriteString(boldOn)
	fmt.Fprintf(&sb, "TOTAL: Rp %d\n", truncate(total))
	sb.WriteString(boldOff)
	sb.WriteString("\n")
	sb.WriteString(thanksLine + "\n")
	// Paper feed before the cut
	sb.WriteString("\n\n\n")

	return []byte(sb.String())
}

// formatEntry renders one cart line: name truncated to 16 characters and
// space-filled to exactly 16, then "<n>x" right-aligned in 3, then the
// truncated integer subtotal right-aligned in 9.
func formatEntry(e Entry) string {
	name := e.Name
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth])
	}

	qty := fmt.Sprintf("%dx", e.Quantity)
	subtotal := truncate(e.Price * float64(e.Quantity))

	return fmt.Sprintf("%-*s %*s %*d", nameWidth, name, qtyWidth, qty, subtotalWidth, subtotal)
}

// truncate drops the fractional part toward zero; 24999.99 prints as 24999.
func truncate(v float64) int64 {
	return int64(v)
}
