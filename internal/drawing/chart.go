package drawing

import (
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/civildesignlab/gorcplan/internal/load"
)

// LoadProfile charts the factored column loads, heaviest first, so
// outliers at the head of the takedown stand out at a glance.
func LoadProfile(records []load.Record) string {
	if len(records) == 0 {
		return ""
	}
	data := make([]float64, len(records))
	for i, r := range records {
		data[i] = r.Factored
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(data)))

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("factored column loads, kN (heaviest first)"),
	)
}
