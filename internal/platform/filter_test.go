package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	windows []Window
}

func (f *fakeBackend) Displays() ([]Display, error)    { return nil, nil }
func (f *fakeBackend) ListWindows() ([]Window, error)  { return f.windows, nil }
func (f *fakeBackend) Geometry(WindowID) (Rect, error) { return Rect{}, nil }
func (f *fakeBackend) MoveResize(WindowID, Rect) error { return nil }

func TestMatchTitle_CaseInsensitive(t *testing.T) {
	assert.True(t, MatchTitle("BlueStacks App Player", "bluestacks"))
	assert.True(t, MatchTitle("farm1", "FARM1"))
	assert.False(t, MatchTitle("Firefox", "bluestacks"))
}

func TestFilterByTitle_AnyKeyword(t *testing.T) {
	windows := []Window{
		{ID: 1, Title: "BlueStacks App Player"},
		{ID: 2, Title: "principal"},
		{ID: 3, Title: "Firefox"},
		{ID: 4, Title: "farm2 - BlueStacks"},
	}

	matched := FilterByTitle(windows, []string{"bluestacks", "principal", "farm"})
	require.Len(t, matched, 3)
	assert.Equal(t, WindowID(1), matched[0].ID)
	assert.Equal(t, WindowID(2), matched[1].ID)
	assert.Equal(t, WindowID(4), matched[2].ID)
}

func TestFilterByTitle_MatchesOnceDespiteMultipleKeywords(t *testing.T) {
	windows := []Window{{ID: 1, Title: "farm1 - BlueStacks"}}
	matched := FilterByTitle(windows, []string{"farm", "bluestacks"})
	assert.Len(t, matched, 1)
}

func TestFindWindow_PriorityOrder(t *testing.T) {
	backend := &fakeBackend{windows: []Window{
		{ID: 10, Title: "BlueStacks App Player"},
		{ID: 20, Title: "farm1"},
	}}

	// "farm1" is tried first, so window 20 wins even though 10 sorts first.
	w, err := FindWindow(backend, []string{"farm1", "principal", "bluestacks"})
	require.NoError(t, err)
	assert.Equal(t, WindowID(20), w.ID)
}

func TestFindWindow_NoMatch(t *testing.T) {
	backend := &fakeBackend{windows: []Window{{ID: 1, Title: "Firefox"}}}

	_, err := FindWindow(backend, []string{"bluestacks"})
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestRectRatio(t *testing.T) {
	assert.InDelta(t, 0.5769, Rect{Width: 600, Height: 1040}.Ratio(), 0.0001)
	assert.Zero(t, Rect{Width: 600}.Ratio())
}
