package region_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/region"
)

func TestDigitSum(t *testing.T) {
	cases := map[int]int{
		0:           0,
		7:           7,
		10:          1,
		19:          10,
		35:          8,
		100:         1,
		-35:         8,
		999_999:     54,
		math.MaxInt: 88, // 9223372036854775807
		math.MinInt: 89, // 9223372036854775808
	}
	for n, want := range cases {
		assert.Equal(t, want, region.DigitSum(n), "DigitSum(%d)", n)
	}
}

func TestEnterable(t *testing.T) {
	assert.True(t, region.Enterable(grid.Point{}, 0))
	assert.False(t, region.Enterable(grid.Point{}, -1))
	assert.True(t, region.Enterable(grid.Point{Row: 35, Col: 37}, 18))
	assert.False(t, region.Enterable(grid.Point{Row: 35, Col: 38}, 18))
}

func TestCount_Table(t *testing.T) {
	cases := []struct {
		name                  string
		rows, cols, threshold int
		want                  int
	}{
		{"SingleCell", 1, 1, 0, 1},
		{"FullThreeByThree", 3, 3, 4, 9},
		{"TwoByThreeK1", 2, 3, 1, 3},
		{"ColumnK0", 3, 1, 0, 1},
		{"Triangle", 10, 10, 4, 15},
		{"BlockedAtTen", 16, 8, 4, 15},
		{"WholeBlock", 10, 10, 18, 100},
		{"ZeroRows", 0, 5, 10, 0},
		{"ZeroCols", 5, 0, 10, 0},
		{"NegativeThreshold", 4, 4, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := region.Count(tc.rows, tc.cols, tc.threshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCount_InvalidInput(t *testing.T) {
	for _, dims := range [][2]int{{-1, 3}, {3, -1}, {-1, -1}} {
		n, err := region.Count(dims[0], dims[1], 5)
		assert.ErrorIs(t, err, region.ErrInvalidInput)
		assert.Zero(t, n)
	}

	n, err := region.Count(3, 3, 5, region.WithOrigin(grid.Point{Row: 3, Col: 0}))
	assert.ErrorIs(t, err, region.ErrInvalidInput)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Zero(t, n)
}

// TestCount_MonotoneInThreshold checks that raising the threshold never shrinks the region.
func TestCount_MonotoneInThreshold(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {7, 13}, {25, 25}, {40, 12}, {100, 100}} {
		prev := 0
		for k := 0; k <= 36; k++ {
			got, err := region.Count(dims[0], dims[1], k)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "%dx%d k=%d", dims[0], dims[1], k)
			assert.LessOrEqual(t, got, dims[0]*dims[1])
			prev = got
		}
		assert.Equal(t, dims[0]*dims[1], prev, "k=36 covers every cell of %dx%d", dims[0], dims[1])
	}
}

// TestCount_ForwardMatchesConn4 verifies that right/down expansion from (0,0)
// reaches exactly the cells that 4-directional expansion reaches.
func TestCount_ForwardMatchesConn4(t *testing.T) {
	sizes := []int{1, 2, 5, 10, 11, 19, 23, 37, 50, 100}
	for _, r := range sizes {
		for _, c := range sizes {
			for k := 0; k <= 20; k++ {
				fwd, err := region.Reachable(r, c, k)
				require.NoError(t, err)
				all, err := region.Reachable(r, c, k, region.WithConnectivity(grid.Conn4))
				require.NoError(t, err)
				if diff := cmp.Diff(all, fwd); diff != "" {
					t.Fatalf("%dx%d k=%d: forward differs from conn4 (-conn4 +forward):\n%s", r, c, k, diff)
				}
			}
		}
	}
}

func TestCount_Origin(t *testing.T) {
	// From (0,10) with k=2: (0,10),(0,11),(1,10) on the forward set.
	got, err := region.Count(2, 12, 2, region.WithOrigin(grid.Point{Row: 0, Col: 10}))
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	// Conn4 may also step left back into the first block: (0,9) has sum 9 > 2, so no.
	got, err = region.Count(2, 12, 2,
		region.WithOrigin(grid.Point{Row: 0, Col: 10}),
		region.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	// Non-enterable origin counts nothing.
	got, err = region.Count(20, 20, 5, region.WithOrigin(grid.Point{Row: 9, Col: 9}))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCount_Conn4FromInnerOrigin(t *testing.T) {
	// A 3×3 fully enterable grid started in the middle: forward sees 4 cells, Conn4 sees 9.
	fwd, err := region.Count(3, 3, 4, region.WithOrigin(grid.Point{Row: 1, Col: 1}))
	require.NoError(t, err)
	assert.Equal(t, 4, fwd)

	all, err := region.Count(3, 3, 4,
		region.WithOrigin(grid.Point{Row: 1, Col: 1}),
		region.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	assert.Equal(t, 9, all)
}

func TestReachable(t *testing.T) {
	got, err := region.Reachable(3, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, got)

	got, err = region.Reachable(3, 3, -1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = region.Reachable(-1, 3, 1)
	assert.ErrorIs(t, err, region.ErrInvalidInput)
}

func TestCount_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := region.Count(10, 10, 5, region.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCount_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	got, err := region.Count(3, 3, 4, region.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 9, got)

	entries := logs.FilterMessage("region: filled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(9), fields["count"])
	assert.Equal(t, "forward", fields["conn"])
}

// TestCount_HugeDimensions covers boards whose cell count overflows int.
// Only the reachable cells are tracked, so these finish instantly.
func TestCount_HugeDimensions(t *testing.T) {
	huge := math.MaxInt/2 + 1
	cases := []struct {
		name                  string
		rows, cols, threshold int
		want                  int
	}{
		{"SquareOverflow", huge, huge, 1, 3},
		{"MaxIntRows", math.MaxInt, 2, 1, 3},
		{"MaxIntBoth", math.MaxInt, math.MaxInt, 4, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := region.Count(tc.rows, tc.cols, tc.threshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	// Far corner origin: right and down leave the board without overflowing.
	corner := grid.Point{Row: math.MaxInt - 1, Col: math.MaxInt - 1}
	got, err := region.Count(math.MaxInt, math.MaxInt, 174, region.WithOrigin(corner))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	cells, err := region.Reachable(math.MaxInt, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, cells)
}
