package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	tb := Table()

	n := Note{Title: "t", Body: "b", Pinned: true, Views: 3}
	vals := tb.Values(n)

	require.Len(t, vals, len(tb.Columns), "Values must align with Columns")
	assert.Equal(t, []any{"t", "b", true, 3}, vals)
	assert.False(t, tb.HasColumn("id"), "audit columns are not client-settable")
}
