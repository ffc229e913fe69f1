package location

import "strings"

// Score rates how well a job's location fits the user's preferences on a
// 0.0 to 1.0 scale. Preferences are free-text strings and are normalized
// with the same rules as job locations before comparison.
//
// Remote jobs always score 1.0. A hard remote-only preference against a
// non-remote job scores 0.2; the matcher applies its own hard filter on top
// of this, the low score keeps the signal consistent if the filter is off.
func Score(job NormalizedLocation, preferred []string, openToRelocation, openToInternational, remoteOnly bool) float64 {
	if job.Type == TypeRemote {
		return 1.0
	}

	if remoteOnly {
		return 0.2
	}

	if len(preferred) == 0 {
		return 0.5
	}

	best := 0.0
	sharesCountry := false

	for _, pref := range preferred {
		prefLoc := Normalize(pref)

		if job.City != "" && prefLoc.City != "" && strings.EqualFold(job.City, prefLoc.City) {
			if 1.0 > best {
				best = 1.0
			}
			continue
		}

		if job.Country != "" && prefLoc.Country != "" && strings.EqualFold(job.Country, prefLoc.Country) {
			sharesCountry = true
			if 0.7 > best {
				best = 0.7
			}
		}
	}

	if best > 0 {
		return best
	}

	if openToRelocation && sharesCountry {
		return 0.5
	}
	if openToInternational {
		return 0.4
	}
	return 0.1
}
