// Package pickerui implements the quick-pick widget: a filter input over a
// provider-supplied item list. Providers that rank their own results switch
// the widget's built-in matching off through the quicknav.Picker surface.
package pickerui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/grovetools/quicknav"
)

// Item is one entry in the pick list.
type Item struct {
	Label       string
	Description string
	Detail      string

	// Separator renders the item as a non-selectable section divider.
	Separator bool

	// Data carries the provider's payload for this item.
	Data any
}

// AcceptEvent is emitted when the user accepts an item.
type AcceptEvent struct {
	Item Item
	Mods quicknav.KeyMods
}

// visibleItem pairs an item index with the label positions matched by the
// built-in filter, used for match highlighting.
type visibleItem struct {
	index   int
	matched []int
}

// Model is the Bubble Tea model for the picker. It is used through a pointer
// so provider-registered subscriptions observe live state.
type Model struct {
	input  textinput.Model
	keys   KeyMap
	items  []Item
	cursor int
	width  int
	height int

	// built-in matching, switched off by navigation providers
	filteringEnabled     bool
	sortingEnabled       bool
	labelMatchingEnabled bool

	visible []visibleItem

	onChange *quicknav.Signal[string]
	onAccept *quicknav.Signal[AcceptEvent]
	onCancel *quicknav.Signal[struct{}]
}

// New creates an empty picker with built-in matching enabled.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	m := &Model{
		input:                ti,
		keys:                 defaultKeyMap,
		filteringEnabled:     true,
		sortingEnabled:       true,
		labelMatchingEnabled: true,
		onChange:             quicknav.NewSignal[string](),
		onAccept:             quicknav.NewSignal[AcceptEvent](),
		onCancel:             quicknav.NewSignal[struct{}](),
	}
	m.updateVisible()
	return m
}

// SetFilteringEnabled implements quicknav.Picker.
func (m *Model) SetFilteringEnabled(enabled bool) {
	m.filteringEnabled = enabled
	m.updateVisible()
}

// SetSortingEnabled implements quicknav.Picker.
func (m *Model) SetSortingEnabled(enabled bool) {
	m.sortingEnabled = enabled
	m.updateVisible()
}

// SetLabelMatchingEnabled implements quicknav.Picker.
func (m *Model) SetLabelMatchingEnabled(enabled bool) {
	m.labelMatchingEnabled = enabled
}

// SetPlaceholder replaces the input placeholder text.
func (m *Model) SetPlaceholder(text string) {
	m.input.Placeholder = text
}

// SetItems replaces the pick list. The cursor moves to the first selectable
// item.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.updateVisible()
	m.cursor = m.firstSelectable()
}

// Items returns the current pick list.
func (m *Model) Items() []Item {
	return m.items
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the input text. Like a typed edit, it emits a change
// event when the text actually changed.
func (m *Model) SetValue(text string) {
	if m.input.Value() == text {
		return
	}
	m.input.SetValue(text)
	m.updateVisible()
	m.cursor = m.firstSelectable()
	m.onChange.Emit(text)
}

// Selected returns the item under the cursor, if any.
func (m *Model) Selected() (Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return Item{}, false
	}
	return m.items[m.visible[m.cursor].index], true
}

// OnDidChangeValue registers a handler for input text changes.
func (m *Model) OnDidChangeValue(handler func(string)) quicknav.Disposable {
	return m.onChange.Subscribe(handler)
}

// OnDidAccept registers a handler for item acceptance.
func (m *Model) OnDidAccept(handler func(AcceptEvent)) quicknav.Disposable {
	return m.onAccept.Subscribe(handler)
}

// OnDidCancel registers a handler for picker cancellation.
func (m *Model) OnDidCancel(handler func()) quicknav.Disposable {
	return m.onCancel.Subscribe(func(struct{}) {
		handler()
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.onCancel.Emit(struct{}{})
			return m, nil

		case key.Matches(msg, m.keys.AcceptToSide):
			if item, ok := m.Selected(); ok {
				m.onAccept.Emit(AcceptEvent{Item: item, Mods: quicknav.KeyMods{CtrlCmd: true}})
			}
			return m, nil

		case key.Matches(msg, m.keys.Accept):
			if item, ok := m.Selected(); ok {
				m.onAccept.Emit(AcceptEvent{Item: item})
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-10)
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(10)
			return m, nil
		}

		prevValue := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != prevValue {
			m.updateVisible()
			m.cursor = m.firstSelectable()
			m.onChange.Emit(value)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveCursor moves the selection by delta, skipping separators and clamping
// at the list edges.
func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}

	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}

	cursor := m.cursor
	for moved := 0; moved < delta; moved++ {
		next := cursor + step
		for next >= 0 && next < len(m.visible) && m.items[m.visible[next].index].Separator {
			next += step
		}
		if next < 0 || next >= len(m.visible) {
			break
		}
		cursor = next
	}
	m.cursor = cursor
}

// firstSelectable returns the index of the first non-separator visible item,
// or -1 when every visible item is a separator.
func (m *Model) firstSelectable() int {
	for i, v := range m.visible {
		if !m.items[v.index].Separator {
			return i
		}
	}
	return -1
}

// updateVisible recomputes the visible list from the items and, when the
// built-in filter is enabled, the typed input.
func (m *Model) updateVisible() {
	value := m.input.Value()

	if !m.filteringEnabled || value == "" {
		m.visible = make([]visibleItem, len(m.items))
		for i := range m.items {
			m.visible[i] = visibleItem{index: i}
		}
		return
	}

	matches := fuzzy.FindFrom(value, labelSource(m.items))
	if !m.sortingEnabled {
		// fuzzy results come ranked by score; restore list order instead
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Index < matches[j].Index
		})
	}

	m.visible = m.visible[:0]
	for _, match := range matches {
		if m.items[match.Index].Separator {
			continue
		}
		m.visible = append(m.visible, visibleItem{index: match.Index, matched: match.MatchedIndexes})
	}
}

// labelSource adapts items to the fuzzy matcher's source interface.
type labelSource []Item

func (s labelSource) String(i int) string { return s[i].Label }
func (s labelSource) Len() int            { return len(s) }
