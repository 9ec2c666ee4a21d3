package relay

// Partition splits results by rating. Each bucket keeps the first
// occurrence of every kanji; results with an unrecognised rating are
// dropped.
func Partition(results []TestResult) Buckets {
	var b Buckets
	seen := map[Rating]map[string]struct{}{
		RatingForgot: {},
		RatingHard:   {},
		RatingGood:   {},
		RatingEasy:   {},
	}
	for _, r := range results {
		set, ok := seen[r.Rating]
		if !ok {
			continue
		}
		if _, dup := set[r.KanjiChar]; dup {
			continue
		}
		set[r.KanjiChar] = struct{}{}

		switch r.Rating {
		case RatingForgot:
			b.Forgot = append(b.Forgot, r.KanjiChar)
		case RatingHard:
			b.Hard = append(b.Hard, r.KanjiChar)
		case RatingGood:
			b.Good = append(b.Good, r.KanjiChar)
		case RatingEasy:
			b.Easy = append(b.Easy, r.KanjiChar)
		}
	}
	return b
}
