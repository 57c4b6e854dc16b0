package terminal

import (
	"fmt"
	"testing"

	"dxfolio/internal/catalog"
	"dxfolio/internal/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestNew_BootBanner(t *testing.T) {
	p := New()
	assert.True(t, p.Expanded)
	assert.Equal(t, BootBanner, p.Lines)
}

func TestSubmit_EchoesAndAppends(t *testing.T) {
	cat := testCatalog(t)
	p := Panel{}

	p, res := p.Submit("open U_BAE_01", cat, "simon-ws")
	assert.Equal(t, command.ActionOpen, res.Action.Kind)
	assert.Equal(t, []string{
		"user@simon-ws:~$ open U_BAE_01",
		"Opening design files for: Boeing 777x ACE...",
	}, p.Lines)
}

func TestSubmit_ClearSuppressesEcho(t *testing.T) {
	cat := testCatalog(t)
	p := New()

	p, res := p.Submit("clear", cat, "simon-ws")
	assert.Equal(t, command.ActionClear, res.Action.Kind)
	assert.Empty(t, p.Lines)
}

func TestSubmit_BlankIgnored(t *testing.T) {
	cat := testCatalog(t)
	p := New()

	next, res := p.Submit("   ", cat, "simon-ws")
	assert.Equal(t, p, next)
	assert.Equal(t, command.Result{}, res)
}

func TestSubmit_DoesNotExpand(t *testing.T) {
	cat := testCatalog(t)
	p := Panel{Expanded: false}

	p, _ = p.Submit("help", cat, "h")
	assert.False(t, p.Expanded)
}

func TestAppend_ForcesExpanded(t *testing.T) {
	p := New().ToggleExpand()
	require.False(t, p.Expanded)

	p = p.Append("Export complete.")
	assert.True(t, p.Expanded)
	assert.Equal(t, "Export complete.", p.Lines[len(p.Lines)-1])
}

func TestToggleExpand_KeepsLog(t *testing.T) {
	p := New()
	collapsed := p.ToggleExpand()
	assert.False(t, collapsed.Expanded)
	assert.Equal(t, p.Lines, collapsed.Lines)
	assert.True(t, collapsed.ToggleExpand().Expanded)
}

func TestAppend_Bounded(t *testing.T) {
	p := Panel{}
	for i := 0; i < MaxLogLines+25; i++ {
		p = p.Append(fmt.Sprintf("line %d", i))
	}
	require.Len(t, p.Lines, MaxLogLines)
	assert.Equal(t, "line 25", p.Lines[0])
	assert.Equal(t, fmt.Sprintf("line %d", MaxLogLines+24), p.Lines[MaxLogLines-1])
}

func TestAppend_DoesNotShareBacking(t *testing.T) {
	base := Panel{Lines: make([]string, 1, 8)}
	base.Lines[0] = "first"

	a := base.Append("a")
	b := base.Append("b")
	assert.Equal(t, "a", a.Lines[1])
	assert.Equal(t, "b", b.Lines[1])
	assert.Len(t, base.Lines, 1)
}
