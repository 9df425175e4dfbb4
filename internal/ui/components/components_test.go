package components

import (
	"sort"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestOptionListNavigation(t *testing.T) {
	opts := []Option{
		{Key: "a", Label: "a"},
		{Key: "an", Label: "an"},
		{Key: "the", Label: "the"},
	}

	tests := []struct {
		name string
		keys []rune
		want string
	}{
		{"initial selection", nil, "a"},
		{"down once", []rune{'j'}, "an"},
		{"down twice", []rune{'j', 'j'}, "the"},
		{"down clamps at bottom", []rune{'j', 'j', 'j'}, "the"},
		{"up clamps at top", []rune{'k'}, "a"},
		{"down then up", []rune{'j', 'k'}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ol := NewOptionList("Pick one", opts)
			for _, r := range tt.keys {
				ol, _ = ol.Update(keyPress(r))
			}
			assert.Equal(t, tt.want, ol.SelectedKey())
		})
	}
}

func TestOptionListReveal(t *testing.T) {
	ol := NewOptionList("Pick one", []Option{
		{Key: "go", Label: "go"},
		{Key: "went", Label: "went"},
	})
	require.False(t, ol.Revealed())

	ol = ol.Reveal("went")
	require.True(t, ol.Revealed())

	// Selection freezes after reveal.
	before := ol.SelectedKey()
	ol, _ = ol.Update(keyPress('j'))
	assert.Equal(t, before, ol.SelectedKey())
}

func TestOptionListSelectedKeyEmpty(t *testing.T) {
	ol := NewOptionList("Pick one", nil)
	assert.Equal(t, "", ol.SelectedKey())
}

func TestFragmentPickerPoolIsShuffledCopy(t *testing.T) {
	fragments := []string{"she", "has", "never", "been", "to", "Paris"}
	fp := NewFragmentPicker("Rebuild the sentence", fragments)

	// The original slice is untouched.
	assert.Equal(t, []string{"she", "has", "never", "been", "to", "Paris"}, fragments)

	// Picking everything yields the same multiset of fragments.
	for !fp.Done() {
		fp, _ = fp.Update(specialKey(tea.KeyEnter))
	}
	picked := fp.Picked()
	require.Len(t, picked, len(fragments))

	wantSorted := append([]string(nil), fragments...)
	sort.Strings(wantSorted)
	gotSorted := append([]string(nil), picked...)
	sort.Strings(gotSorted)
	assert.Equal(t, wantSorted, gotSorted)
}

func TestFragmentPickerPickAndUndo(t *testing.T) {
	fp := NewFragmentPicker("Rebuild", []string{"one", "two"})

	fp, _ = fp.Update(specialKey(tea.KeyEnter))
	require.Len(t, fp.Picked(), 1)
	first := fp.Picked()[0]

	fp, _ = fp.Update(specialKey(tea.KeyBackspace))
	assert.Empty(t, fp.Picked())
	assert.False(t, fp.Done())

	// The returned fragment is pickable again.
	for !fp.Done() {
		fp, _ = fp.Update(specialKey(tea.KeyEnter))
	}
	assert.Contains(t, fp.Picked(), first)
}

func TestFragmentPickerRevealFreezes(t *testing.T) {
	fp := NewFragmentPicker("Rebuild", []string{"one", "two"})
	fp = fp.Reveal()
	require.True(t, fp.Revealed())

	fp, _ = fp.Update(specialKey(tea.KeyEnter))
	assert.Empty(t, fp.Picked())
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Practice"},
		{Label: "Quit"},
	})
	assert.Equal(t, 1, m.Selected, "initial selection skips disabled items")

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 1, m.Selected, "up does not land on a disabled item")

	m, _ = m.Update(keyPress('j'))
	assert.Equal(t, 2, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "Practice", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	_, _ = m.Update(specialKey(tea.KeyEnter))
	assert.True(t, ran)
}

func TestMenuDigitShortcut(t *testing.T) {
	var ran string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			ran = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Practice", Action: action("practice")},
		{Label: "Progress", Action: action("progress")},
		{Label: "Locked", Action: action("locked"), Disabled: true},
	})

	m, _ = m.Update(keyPress('2'))
	assert.Equal(t, "progress", ran)
	assert.Equal(t, 1, m.Selected)

	// Digits outside the item range and disabled items are inert.
	ran = ""
	m, _ = m.Update(keyPress('3'))
	assert.Empty(t, ran)
	m, _ = m.Update(keyPress('9'))
	assert.Empty(t, ran)
	_ = m
}

func TestMenuDescriptionShownForSelection(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Practice", Description: "Run a session"},
		{Label: "Quit"},
	})

	assert.Contains(t, m.View(), "Run a session")

	m, _ = m.Update(keyPress('j'))
	assert.NotContains(t, m.View(), "Run a session")
}

func TestProgressBarView(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		width    int
		wantFull int
	}{
		{"empty", 0, 10, 0},
		{"half", 0.5, 10, 5},
		{"full", 1, 10, 10},
		{"overflow clamps", 1.5, 10, 10},
		{"negative clamps", -0.5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewProgressBar("", tt.percent, false, tt.width).View()
			assert.Equal(t, tt.wantFull, strings.Count(out, "█"))
			assert.Equal(t, tt.width-tt.wantFull, strings.Count(out, "░"))
		})
	}
}

func TestProgressBarShowsPercent(t *testing.T) {
	out := NewProgressBar("Level 3", 0.42, true, 40).View()
	assert.Contains(t, out, "Level 3")
	assert.Contains(t, out, "42%")
}
