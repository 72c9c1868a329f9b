package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	require.Empty(t, Unified("a\nb\n", "a\nb\n", "before", "after"))
}

func TestUnifiedChangedLine(t *testing.T) {
	t.Parallel()

	before := "color: red;\nmargin: 0;\npadding: 1rem;\n"
	after := "color: blue;\nmargin: 0;\npadding: 1rem;\n"

	require.Equal(t, strings.Join([]string{
		"--- current",
		"+++ updated",
		"@@ -1,3 +1,3 @@",
		"-color: red;",
		"+color: blue;",
		" margin: 0;",
		" padding: 1rem;",
		"",
	}, "\n"), Unified(before, after, "current", "updated"))
}

func TestUnifiedAddedAndRemoved(t *testing.T) {
	t.Parallel()

	result := Unified("a\nb\n", "b\nc\n", "x", "y")
	require.Contains(t, result, "-a\n")
	require.Contains(t, result, " b\n")
	require.Contains(t, result, "+c\n")
}

func TestUnifiedFromEmpty(t *testing.T) {
	t.Parallel()

	result := Unified("", "gap: 1rem;\n", "x", "y")
	require.Contains(t, result, "@@ -1,0 +1,1 @@")
	require.Contains(t, result, "+gap: 1rem;\n")
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	var after strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		fmt.Fprintf(&after, "line %d\n", i)
	}

	result := Unified("", after.String(), "x", "y")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	require.Equal(t, maxDiffLines+1, strings.Count(result, "\n"))
}
