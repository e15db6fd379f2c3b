package alloc

import (
	"math"

	"github.com/nulvox/TabConverter/model"
)

// octaveShifts is the retry order when a pitch cannot land in its role's
// preferred strings as written.
var octaveShifts = [5]int{0, 12, -12, 24, -24}

const regionPenalty = 100

// Place finds a string/fret position for an absolute pitch on the target
// tuning, given the strings already taken in this column and the opposing
// role's fretted positions. It first accepts only placements whose string
// sits in the role's preferred half, retrying the pitch an octave or two
// away; failing that it takes the first placement that worked anywhere.
// The boolean is false when no pitch/octave combination has a legal spot.
func Place(p model.Pitch, role model.Role, target model.Tuning, occupied map[int]bool, opposing []int, lim model.Limits) (model.Placement, bool) {
	var fallback model.Placement
	haveFallback := false

	for _, shift := range octaveShifts {
		shifted := int(p) + shift
		if shifted < 0 {
			continue
		}
		pl, ok := placeOnce(model.Pitch(shifted), role, target, occupied, opposing, lim)
		if !ok {
			continue
		}
		if inPreferredRegion(pl.String, role, len(target)) {
			return pl, true
		}
		if !haveFallback {
			fallback = pl
			haveFallback = true
		}
	}
	return fallback, haveFallback
}

// placeOnce runs one allocation attempt at an exact pitch: collect legal
// frets per free string, score them, and keep the cheapest. Ties go to the
// lowest string index.
func placeOnce(p model.Pitch, role model.Role, target model.Tuning, occupied map[int]bool, opposing []int, lim model.Limits) (model.Placement, bool) {
	lo, hi := roleWindow(role, lim)
	mid := float64(lo+hi) / 2

	var best model.Placement
	bestScore := math.Inf(1)
	found := false

	for s, open := range target {
		if occupied[s] {
			continue
		}
		fret := int(p) - int(open)
		if fret < 0 || fret > lim.MaxFret {
			continue
		}
		// Fret 0 is an open string: no fretting hand involved, so the
		// role window and hand-separation constraints do not apply.
		if fret != 0 {
			if fret < lo || fret > hi {
				continue
			}
			if collides(fret, opposing, lim.HandSeparation) {
				continue
			}
		}

		score := 0.1 * math.Abs(float64(fret)-mid)
		if !inPreferredRegion(s, role, len(target)) {
			score += regionPenalty
		}
		if score < bestScore {
			bestScore = score
			best = model.Placement{String: s, Fret: fret}
			found = true
		}
	}
	return best, found
}

func roleWindow(role model.Role, lim model.Limits) (int, int) {
	if role == model.Bass {
		return 0, lim.BassMaxFret
	}
	return lim.MelodyMinFret, lim.MaxFret
}

func collides(fret int, opposing []int, separation int) bool {
	for _, o := range opposing {
		if abs(fret-o) < separation {
			return true
		}
	}
	return false
}

// inPreferredRegion splits the target at floor(count/2): lower indices are
// bass territory, upper are melody.
func inPreferredRegion(stringIdx int, role model.Role, count int) bool {
	split := count / 2
	if role == model.Bass {
		return stringIdx < split
	}
	return stringIdx >= split
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
