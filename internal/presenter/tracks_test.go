package presenter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackStrings(tracks []*layout.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.String()
	}
	return out
}

func TestSharedSizeGroupKey(t *testing.T) {
	assert.Equal(t, "Column0", SharedSizeGroupKey(0))
	assert.Equal(t, "Column12", SharedSizeGroupKey(12))
	assert.NotEqual(t, SharedSizeGroupKey(1), SharedSizeGroupKey(2))
}

func TestGenerateTracks(t *testing.T) {
	type tc struct {
		columns        func() []*column.Column
		starFromActual bool
		expected       []string
	}

	tests := map[string]tc{
		"empty": {
			columns:  func() []*column.Column { return nil },
			expected: []string{"filler(auto)"},
		},
		"mixed widths in header": {
			columns: func() []*column.Column {
				return []*column.Column{
					column.New(column.WithWidth(layout.Auto())),
					column.New(column.WithWidth(layout.Pixel(80))),
					column.New(column.WithWidth(layout.Star(1))),
				}
			},
			expected: []string{
				"column(auto, group=Column0)", "separator(1)",
				"column(80)", "separator(1)",
				"column(*)", "separator(1)",
				"filler(auto)",
			},
		},
		"star follows actual width in rows": {
			columns: func() []*column.Column {
				notes := column.New(column.WithWidth(layout.Star(2)))
				notes.ActualWidth.Set(37)
				return []*column.Column{notes}
			},
			starFromActual: true,
			expected:       []string{"column(37)", "separator(1)", "filler(auto)"},
		},
		"auto keys follow leaf index": {
			columns: func() []*column.Column {
				return []*column.Column{
					column.New(column.WithWidth(layout.Pixel(4))),
					column.New(),
				}
			},
			expected: []string{
				"column(4)", "separator(1)",
				"column(auto, group=Column1)", "separator(1)",
				"filler(auto)",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			scope := reactive.NewScope()
			defer scope.Dispose()

			topo := column.Resolve(tt.columns())
			tracks := generateTracks(scope, topo.Leaves, nil, tt.starFromActual)
			if diff := cmp.Diff(tt.expected, trackStrings(tracks)); diff != "" {
				t.Errorf("tracks mismatch (-want +got):\n%s", diff)
			}
			assert.Len(t, tracks, 2*len(topo.Leaves)+1)
		})
	}
}

func TestGenerateTracks_Bindings(t *testing.T) {
	name := column.New(column.WithMinWidth(2))
	notes := column.New(column.WithWidth(layout.Star(1)))
	topo := column.Resolve([]*column.Column{name, notes})

	shared := layout.NewSharedSizeScope()
	scope := reactive.NewScope()
	header := generateTracks(scope, topo.Leaves, shared, false)
	row := generateTracks(scope, topo.Leaves, shared, true)

	assert.Equal(t, header[0].SharedSizeGroup, row[0].SharedSizeGroup)
	assert.Equal(t, 2, shared.Members("Column0"))
	assert.Equal(t, 2.0, row[0].MinWidth)

	name.MinWidth.Set(6)
	name.MaxWidth.Set(20)
	assert.Equal(t, 6.0, header[0].MinWidth)
	assert.Equal(t, 20.0, row[0].MaxWidth)

	notes.ActualWidth.Set(15)
	assert.Equal(t, layout.Pixel(15), row[2].Width)
	assert.Equal(t, layout.Star(1), header[2].Width)

	// unrelated column leaves the star track alone
	name.ActualWidth.Set(99)
	assert.Equal(t, layout.Pixel(15), row[2].Width)

	scope.Dispose()
	assert.Empty(t, shared.Keys())
	assert.Empty(t, header[0].SharedSizeGroup)
	assert.Empty(t, row[0].SharedSizeGroup)

	notes.ActualWidth.Set(50)
	assert.Equal(t, layout.Pixel(15), row[2].Width)
	require.Zero(t, name.MinWidth.Bindings())
	require.Zero(t, notes.ActualWidth.Bindings())
}

func TestWatchTopology(t *testing.T) {
	email := column.New()
	contact := column.New(column.WithChildren(email))
	age := column.New(column.WithWidth(layout.Pixel(80)))
	topo := column.Resolve([]*column.Column{contact, age})

	scope := reactive.NewScope()
	defer scope.Dispose()
	calls := 0
	watchTopology(scope, topo, func() { calls++ })

	age.Width.Set(layout.Pixel(90))
	assert.Equal(t, 0, calls, "same width kind")

	age.Width.Set(layout.Star(1))
	assert.Equal(t, 1, calls)

	contact.Children.Add(column.New())
	assert.Equal(t, 2, calls)

	email.Children.Add(column.New())
	assert.Equal(t, 3, calls, "leaf turning into a group")
}
