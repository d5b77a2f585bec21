// Package invoicenum defines the invoice identifier scheme: INV-{year}-{seq},
// sequence zero-padded to at least 3 digits, scoped per owner and per
// calendar year, restarting at 1 each new year.
package invoicenum

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix returns the identifier prefix for a year, e.g. "INV-2026-".
func Prefix(year int) string {
	return fmt.Sprintf("INV-%d-", year)
}

// Format builds the identifier for a year and sequence: Format(2026, 7)
// returns "INV-2026-007". Sequences beyond 999 widen naturally.
func Format(year, seq int) string {
	return fmt.Sprintf("%s%03d", Prefix(year), seq)
}

// Sequence extracts the numeric suffix of an identifier. It tolerates any
// prefix shape as long as the final dash-separated segment is numeric.
func Sequence(number string) (int, error) {
	idx := strings.LastIndexByte(number, '-')
	if idx < 0 || idx == len(number)-1 {
		return 0, fmt.Errorf("invoice number %q has no sequence suffix", number)
	}
	seq, err := strconv.Atoi(number[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("invoice number %q: non-numeric sequence: %w", number, err)
	}
	return seq, nil
}
