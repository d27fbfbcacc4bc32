// Package testcase contains the persisted test case format: a list of data
// rectangles, a search rectangle and the indices of the data rectangles that
// intersect the search rectangle.
package testcase

import (
	"errors"
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/JaMo42/rectcase/geom"
)

var (
	ErrMissingSearchRect = errors.New("missing search_rect")
	ErrIndexOutOfRange   = errors.New("found index out of range")
)

// FoundSet is a set of indices into the data rectangles.
type FoundSet map[int]struct{}

func NewFoundSet(indices ...int) FoundSet {
	set := make(FoundSet, len(indices))
	for _, i := range indices {
		set.Add(i)
	}
	return set
}

func (self FoundSet) Add(index int) {
	self[index] = struct{}{}
}

func (self FoundSet) Remove(index int) {
	delete(self, index)
}

func (self FoundSet) Contains(index int) bool {
	_, ok := self[index]
	return ok
}

// Sorted returns the indices in ascending order.
func (self FoundSet) Sorted() []int {
	indices := maps.Keys(self)
	slices.Sort(indices)
	return indices
}

func (self FoundSet) Clone() FoundSet {
	return maps.Clone(self)
}

func (self FoundSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.Sorted())
}

func (self *FoundSet) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	*self = NewFoundSet(indices...)
	return nil
}

// Compute returns the indices of all rectangles intersecting search.
func Compute(rects []geom.Rect, search geom.Rect) FoundSet {
	found := NewFoundSet()
	for i, rect := range rects {
		if rect.IntersectsWith(search) {
			found.Add(i)
		}
	}
	return found
}

type TestCase struct {
	DataRects  []geom.Rect
	SearchRect geom.Rect
	Found      FoundSet
}

// fileFormat is the on-disk shape of a TestCase.
type fileFormat struct {
	DataRects  []geom.Rect `json:"data_rects"`
	SearchRect *geom.Rect  `json:"search_rect"`
	Founded    FoundSet    `json:"founded"`
}

func (self TestCase) MarshalJSON() ([]byte, error) {
	rects := self.DataRects
	if rects == nil {
		rects = []geom.Rect{}
	}
	found := self.Found
	if found == nil {
		found = NewFoundSet()
	}
	return json.Marshal(fileFormat{rects, &self.SearchRect, found})
}

func (self *TestCase) UnmarshalJSON(data []byte) error {
	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.SearchRect == nil {
		return ErrMissingSearchRect
	}
	if file.Founded == nil {
		file.Founded = NewFoundSet()
	}
	*self = TestCase{file.DataRects, *file.SearchRect, file.Founded}
	return nil
}

// Validate checks that the found set matches the intersection predicate.
func (self *TestCase) Validate() error {
	for _, i := range self.Found.Sorted() {
		if i < 0 || i >= len(self.DataRects) {
			return fmt.Errorf("%w: %d (have %d rectangles)", ErrIndexOutOfRange, i, len(self.DataRects))
		}
	}
	expected := Compute(self.DataRects, self.SearchRect)
	for i := range self.DataRects {
		if expected.Contains(i) != self.Found.Contains(i) {
			return fmt.Errorf(
				"rectangle %d: intersects search rectangle: %t, listed as found: %t",
				i, expected.Contains(i), self.Found.Contains(i),
			)
		}
	}
	return nil
}

// Load reads a test case file. Found indices outside of the data rectangles
// are rejected, use Validate for a full consistency check.
func Load(pathname string) (TestCase, error) {
	data, err := os.ReadFile(pathname)
	if err != nil {
		return TestCase{}, err
	}
	var tc TestCase
	if err := json.Unmarshal(data, &tc); err != nil {
		return TestCase{}, fmt.Errorf("%s: %w", pathname, err)
	}
	for i := range tc.Found {
		if i < 0 || i >= len(tc.DataRects) {
			return TestCase{}, fmt.Errorf("%s: %w: %d", pathname, ErrIndexOutOfRange, i)
		}
	}
	return tc, nil
}

// Save writes the test case, truncating the file if it exists.
func (self *TestCase) Save(pathname string) error {
	data, err := json.MarshalIndent(self, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(pathname, data, 0o644)
}
