package layout

import "math"

// Measurer returns the desired width of a child's content.
type Measurer func(Child) int

// Measure reports the desired width of every keyed auto track of g to the
// shared scope. Call it for every grid sharing the scope before arranging
// any of them so group widths reflect all members.
func Measure(g *Grid, measure Measurer, shared *SharedSizeScope) {
	if g == nil || shared == nil {
		return
	}
	for i, t := range g.columns {
		if t.Kind != TrackColumn || t.SharedSizeGroup == "" {
			continue
		}
		shared.Report(t, desiredWidth(g, i, t, measure))
	}
}

// Arrange resolves the column track widths of g for the available width and
// stores them in each track's ActualWidth.
//
// Pixel tracks take their amount, auto tracks the widest child they host (or
// their group width), star tracks split what is left by weight and the
// filler takes whatever remains after that. All widths are clamped to the
// track bounds and rounded cumulatively so the total never drifts.
func Arrange(g *Grid, available int, measure Measurer, shared *SharedSizeScope) []int {
	if g == nil || len(g.columns) == 0 {
		return nil
	}

	// Phase 1: non-proportional tracks
	widths := make([]float64, len(g.columns))
	var stars []int
	filler := -1
	used := 0.0
	for i, t := range g.columns {
		switch {
		case t.Kind == TrackFiller:
			filler = i
			continue
		case t.Width.IsStar():
			stars = append(stars, i)
			continue
		}
		w := desiredWidth(g, i, t, measure)
		if shared != nil && t.SharedSizeGroup != "" && shared.Contains(t) {
			w = max(w, shared.Width(t.SharedSizeGroup))
		}
		widths[i] = t.Clamp(w)
		used += widths[i]
	}

	// Phase 2: distribute free space over star tracks
	free := math.Max(0, float64(available)-used)
	used += distributeStars(g.columns, stars, widths, free)

	if filler >= 0 {
		t := g.columns[filler]
		widths[filler] = t.Clamp(math.Max(0, float64(available)-used))
	}

	// Round once at the edges, not per track
	out := make([]int, len(widths))
	edge, prev := 0.0, 0
	for i, w := range widths {
		edge += w
		next := int(math.Round(edge))
		out[i] = next - prev
		prev = next
		g.columns[i].ActualWidth = float64(out[i])
	}
	return out
}

// distributeStars shares free among the star tracks by weight. Tracks whose
// share violates their bounds are frozen at the bound and the rest is
// redistributed. Returns the total width handed out.
func distributeStars(tracks []*Track, stars []int, widths []float64, free float64) float64 {
	frozen := make(map[int]bool, len(stars))
	total := 0.0
	for {
		weight := 0.0
		remaining := free
		for _, i := range stars {
			if frozen[i] {
				remaining -= widths[i]
				continue
			}
			weight += tracks[i].Width.Amount
		}
		if weight <= 0 {
			break
		}
		remaining = math.Max(0, remaining)

		violated := false
		for _, i := range stars {
			if frozen[i] {
				continue
			}
			share := remaining * tracks[i].Width.Amount / weight
			clamped := tracks[i].Clamp(share)
			widths[i] = share
			if clamped != share {
				widths[i] = clamped
				frozen[i] = true
				violated = true
			}
		}
		if !violated {
			break
		}
	}
	for _, i := range stars {
		total += widths[i]
	}
	return total
}

// desiredWidth is the unshared width a non-star track asks for.
func desiredWidth(g *Grid, col int, t *Track, measure Measurer) float64 {
	switch t.Width.Unit {
	case UnitPixel:
		return t.Clamp(t.Width.Amount)
	case UnitAuto:
		w := 0
		if measure != nil {
			for _, c := range g.children {
				p := c.GridPlacement()
				if p.Column == col && p.Columns() == 1 {
					w = max(w, measure(c))
				}
			}
		}
		return t.Clamp(float64(w))
	default:
		return 0
	}
}
