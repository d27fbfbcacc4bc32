package testcase

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"

	"github.com/JaMo42/rectcase/geom"
)

func TestComputeScenarios(t *testing.T) {
	rects := []geom.Rect{{Top: 0, Left: 0, Bottom: 10, Right: 10}}

	found := Compute(rects, geom.Rect{Top: 5, Left: 5, Bottom: 15, Right: 15})
	require.Equal(t, []int{0}, found.Sorted())

	found = Compute(rects, geom.Rect{Top: 10, Left: 10, Bottom: 20, Right: 20})
	require.Empty(t, found.Sorted())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	tc := TestCase{
		DataRects: []geom.Rect{
			{Top: 0, Left: 0, Bottom: 10, Right: 10},
			{Top: 50, Left: 50, Bottom: 60, Right: 70},
			{Top: 8, Left: 3, Bottom: 30, Right: 4},
		},
		SearchRect: geom.Rect{Top: 5, Left: 2, Bottom: 15, Right: 15},
		Found:      NewFoundSet(2, 0),
	}
	require.NoError(t, tc.Validate())
	require.NoError(t, tc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, tc, loaded)
}

func TestFileShape(t *testing.T) {
	tc := TestCase{
		DataRects:  []geom.Rect{{Top: 1, Left: 2, Bottom: 3, Right: 4}},
		SearchRect: geom.Rect{Top: 0, Left: 0, Bottom: 9, Right: 9},
		Found:      NewFoundSet(0),
	}
	data, err := json.Marshal(&tc)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"data_rects": [{"top": 1, "left": 2, "bottom": 3, "right": 4}],
		"search_rect": {"top": 0, "left": 0, "bottom": 9, "right": 9},
		"founded": [0]
	}`, string(data))
}

func TestEmptyCaseShape(t *testing.T) {
	data, err := json.Marshal(&TestCase{})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"data_rects": [],
		"search_rect": {"top": 0, "left": 0, "bottom": 0, "right": 0},
		"founded": []
	}`, string(data))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.True(t, errors.Is(err, fs.ErrNotExist))

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	_, err = Load(write("garbage.json", "{not json"))
	require.Error(t, err)

	_, err = Load(write("nosearch.json", `{"data_rects": [], "founded": []}`))
	require.ErrorIs(t, err, ErrMissingSearchRect)

	_, err = Load(write("range.json", `{
		"data_rects": [{"top": 0, "left": 0, "bottom": 1, "right": 1}],
		"search_rect": {"top": 0, "left": 0, "bottom": 1, "right": 1},
		"founded": [0, 3]
	}`))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLoadDuplicatesCollapse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_rects": [{"top": 0, "left": 0, "bottom": 10, "right": 10}],
		"search_rect": {"top": 5, "left": 5, "bottom": 15, "right": 15},
		"founded": [0, 0]
	}`), 0o644))
	tc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{0}, tc.Found.Sorted())
	require.NoError(t, tc.Validate())
}

func TestValidate(t *testing.T) {
	tc := TestCase{
		DataRects:  []geom.Rect{{Top: 0, Left: 0, Bottom: 10, Right: 10}},
		SearchRect: geom.Rect{Top: 10, Left: 10, Bottom: 20, Right: 20},
		Found:      NewFoundSet(0),
	}
	require.Error(t, tc.Validate())

	tc.Found = NewFoundSet()
	require.NoError(t, tc.Validate())

	tc.Found = NewFoundSet(-1)
	require.ErrorIs(t, tc.Validate(), ErrIndexOutOfRange)
}

func TestFoundSet(t *testing.T) {
	set := NewFoundSet(3, 1)
	clone := set.Clone()
	set.Remove(3)
	set.Add(2)
	require.Equal(t, []int{1, 2}, set.Sorted())
	require.Equal(t, []int{1, 3}, clone.Sorted())
	require.True(t, clone.Contains(3))
	require.False(t, set.Contains(3))
}
