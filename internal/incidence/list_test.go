package incidence_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scenegraph/internal/incidence"
)

func TestList_PushAndCount(t *testing.T) {
	var l incidence.List[uint32]
	l.Push(3)
	l.Push(1)
	l.Push(3)

	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains(3))
	assert.False(t, l.Contains(7))
	assert.Equal(t, 2, l.Count(3))
}

func TestList_RemoveFirst(t *testing.T) {
	l := incidence.List[uint32]{4, 2, 4, 5}

	require.True(t, l.RemoveFirst(4))
	assert.Equal(t, incidence.List[uint32]{2, 4, 5}, l)

	assert.False(t, l.RemoveFirst(9))
	assert.Equal(t, 3, l.Len())
}

func TestList_RemoveAll(t *testing.T) {
	l := incidence.List[uint32]{4, 2, 4, 5, 4}

	assert.Equal(t, 3, l.RemoveAll(4))
	assert.Equal(t, incidence.List[uint32]{2, 5}, l)
	assert.Equal(t, 0, l.RemoveAll(4))
}

func TestList_Reindex(t *testing.T) {
	tests := []struct {
		name    string
		in      incidence.List[uint32]
		removed uint32
		want    incidence.List[uint32]
		dropped int
	}{
		{"below untouched", incidence.List[uint32]{0, 1}, 5, incidence.List[uint32]{0, 1}, 0},
		{"above shifted", incidence.List[uint32]{6, 9}, 5, incidence.List[uint32]{5, 8}, 0},
		{"removed dropped", incidence.List[uint32]{5, 2, 5, 7}, 5, incidence.List[uint32]{2, 6}, 2},
		{"empty", nil, 0, incidence.List[uint32]{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := tc.in.Clone()
			dropped := l.Reindex(tc.removed)
			assert.Equal(t, tc.dropped, dropped)
			assert.Equal(t, len(tc.want), l.Len())
			if len(tc.want) > 0 {
				assert.Equal(t, tc.want, l)
			}
		})
	}
}

func TestList_AllSnapshotsHeader(t *testing.T) {
	l := incidence.List[uint32]{1, 2, 3}
	seq := l.All()
	l.Push(4)

	assert.Equal(t, []uint32{1, 2, 3}, slices.Collect(seq))
}

func TestList_AllStopsEarly(t *testing.T) {
	l := incidence.List[uint32]{1, 2, 3}
	var seen []uint32
	for v := range l.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{1, 2}, seen)
}

func TestList_CloneIsIndependent(t *testing.T) {
	l := incidence.List[uint32]{1, 2}
	c := l.Clone()
	c.Push(3)
	l.RemoveFirst(1)

	assert.Equal(t, incidence.List[uint32]{2}, l)
	assert.Equal(t, incidence.List[uint32]{1, 2, 3}, c)
}
