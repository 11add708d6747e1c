package game

// Score compares guess against secret.
//
// Exact counts positions holding the same color. Misplaced is the multiset
// overlap of the two sequences (per color, the smaller of the two counts)
// minus Exact: exact positions sit inside that overlap, so what remains is
// right color, wrong position.
//
// Both sequences are expected to have the same length; the game never
// produces anything else.
func Score(secret, guess Sequence) Feedback {
	n := min(len(secret), len(guess))

	exact := 0
	for i := 0; i < n; i++ {
		if secret[i] == guess[i] {
			exact++
		}
	}

	secretCounts := make(map[Color]int, len(secret))
	for _, c := range secret {
		secretCounts[c]++
	}
	guessCounts := make(map[Color]int, len(guess))
	for _, c := range guess {
		guessCounts[c]++
	}

	overlap := 0
	for c, sc := range secretCounts {
		overlap += min(sc, guessCounts[c])
	}

	return Feedback{Exact: exact, Misplaced: overlap - exact}
}
