package invoicenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepro/invoice-api/internal/domain/invoicenum"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV-2026-001", invoicenum.Format(2026, 1))
	assert.Equal(t, "INV-2026-042", invoicenum.Format(2026, 42))
	assert.Equal(t, "INV-2026-999", invoicenum.Format(2026, 999))
	// Beyond three digits the number widens instead of wrapping.
	assert.Equal(t, "INV-2026-1000", invoicenum.Format(2026, 1000))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "INV-2025-", invoicenum.Prefix(2025))
}

func TestSequence(t *testing.T) {
	seq, err := invoicenum.Sequence("INV-2026-017")
	require.NoError(t, err)
	assert.Equal(t, 17, seq)

	seq, err = invoicenum.Sequence("INV-2026-1234")
	require.NoError(t, err)
	assert.Equal(t, 1234, seq)
}

func TestSequence_Invalid(t *testing.T) {
	_, err := invoicenum.Sequence("no-suffix-")
	assert.Error(t, err)

	_, err = invoicenum.Sequence("INV-2026-abc")
	assert.Error(t, err)

	_, err = invoicenum.Sequence("plainnumber")
	assert.Error(t, err)
}

func TestFormatSequenceRoundTrip(t *testing.T) {
	for _, seq := range []int{1, 9, 99, 100, 999, 1000, 12345} {
		got, err := invoicenum.Sequence(invoicenum.Format(2026, seq))
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}
