package engine

import (
	"regexp"
	"strconv"
)

// Simple dice notation like "1d8" or "2d6"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// diceAverage2 returns twice the average roll of a notation so dice can be
// compared without fractions. Unparseable notation scores zero.
func diceAverage2(notation string) int {
	m := diceNotationRegex.FindStringSubmatch(notation)
	if m == nil {
		return 0
	}
	count, _ := strconv.Atoi(m[1])
	size, _ := strconv.Atoi(m[2])
	return count * (size + 1)
}

// largerDice returns whichever notation has the higher average, preferring
// current on a tie.
func largerDice(current, candidate string) string {
	if diceAverage2(candidate) > diceAverage2(current) {
		return candidate
	}
	return current
}
