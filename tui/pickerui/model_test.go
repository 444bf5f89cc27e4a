package pickerui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func visibleLabels(m *Model) []string {
	labels := make([]string, 0, len(m.visible))
	for _, v := range m.visible {
		labels = append(labels, m.items[v.index].Label)
	}
	return labels
}

func TestFuzzyFilter(t *testing.T) {
	m := New()
	m.SetItems([]Item{
		{Label: "cmd/main.go"},
		{Label: "README.md"},
		{Label: "config/loader.go"},
	})

	typeString(m, "go")

	assert.ElementsMatch(t, []string{"cmd/main.go", "config/loader.go"}, visibleLabels(m))
}

func TestSortingDisabledPreservesItemOrder(t *testing.T) {
	m := New()
	m.SetSortingEnabled(false)
	m.SetItems([]Item{
		{Label: "zebra pattern"},
		{Label: "pat"},
		{Label: "spat"},
	})

	typeString(m, "pat")

	// fuzzy ranking would put the exact match first; list order wins here
	assert.Equal(t, []string{"zebra pattern", "pat", "spat"}, visibleLabels(m))
}

func TestFilteringDisabledShowsEverything(t *testing.T) {
	m := New()
	m.SetFilteringEnabled(false)
	m.SetItems([]Item{
		{Label: "alpha"},
		{Label: "beta"},
	})

	typeString(m, "zzz")

	assert.Equal(t, []string{"alpha", "beta"}, visibleLabels(m))
}

func TestCursorSkipsSeparators(t *testing.T) {
	m := New()
	m.SetItems([]Item{
		{Label: "recently opened", Separator: true},
		{Label: "first"},
		{Label: "other results", Separator: true},
		{Label: "second"},
	})

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "first", selected.Label)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "second", selected.Label)

	// clamped at the end
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, _ = m.Selected()
	assert.Equal(t, "second", selected.Label)
}

func TestSeparatorOnlyListHasNoSelection(t *testing.T) {
	m := New()
	m.SetItems([]Item{
		{Label: "recently opened", Separator: true},
		{Label: "other results", Separator: true},
	})

	_, ok := m.Selected()
	assert.False(t, ok)

	count := 0
	m.OnDidAccept(func(AcceptEvent) { count++ })
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Zero(t, count, "a separator must not be acceptable")
}

func TestAcceptEmitsSelectedItem(t *testing.T) {
	m := New()
	m.SetItems([]Item{{Label: "target", Data: 42}})

	var got []AcceptEvent
	m.OnDidAccept(func(ev AcceptEvent) { got = append(got, ev) })

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, got, 1)
	assert.Equal(t, "target", got[0].Item.Label)
	assert.Equal(t, 42, got[0].Item.Data)
	assert.False(t, got[0].Mods.CtrlCmd)
}

func TestAcceptToSideCarriesKeyMods(t *testing.T) {
	m := New()
	m.SetItems([]Item{{Label: "target"}})

	var got []AcceptEvent
	m.OnDidAccept(func(ev AcceptEvent) { got = append(got, ev) })

	m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})

	require.Len(t, got, 1)
	assert.True(t, got[0].Mods.CtrlCmd)
}

func TestCancelKeysEmit(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := New()
		count := 0
		m.OnDidCancel(func() { count++ })

		m.Update(k)

		assert.Equal(t, 1, count, "key %s", k)
	}
}

func TestChangeEmitsOnTypingAndSetValue(t *testing.T) {
	m := New()

	var values []string
	m.OnDidChangeValue(func(v string) { values = append(values, v) })

	typeString(m, "ab")
	m.SetValue("ab") // unchanged, no event
	m.SetValue("xyz")

	assert.Equal(t, []string{"a", "ab", "xyz"}, values)
}

func TestSubscriptionDisposal(t *testing.T) {
	m := New()

	count := 0
	sub := m.OnDidChangeValue(func(string) { count++ })
	sub.Dispose()

	typeString(m, "a")

	assert.Zero(t, count)
}

func TestViewShowsNoResults(t *testing.T) {
	m := New()
	m.SetItems([]Item{{Label: "alpha"}})

	typeString(m, "zzzz")

	assert.Contains(t, m.View(), "No results")
}
