package allocator

import (
	"fmt"
	"math/rand"
)

// namePrefixes is the fixed 10-entry alphabet simulated course names are
// drawn from (spec §4.3).
var namePrefixes = []string{"ALG", "BIO", "CHE", "DAT", "ECO", "FIN", "GEO", "HIS", "ITC", "JRN"}

const (
	nameNumberLow  = 300
	nameNumberHigh = 500
)

// SimulateCourses generates n distinct synthetic courses. For each course
// a uniform draw decides whether its cohort size comes from the low band
// [minSize, changeSize) (90% of the time) or the high band
// [changeSize, maxSize) (10% of the time), and the given strategy
// populates its preference list.
func SimulateCourses(n, minSize, maxSize, changeSize int, strategy Strategy, rng *rand.Rand) []*Course {
	courses := make([]*Course, 0, n)
	used := make(map[string]bool, n)

	for len(courses) < n {
		name := simulateName(rng, used)
		used[name] = true

		var size int
		if rng.Float64() < 0.9 {
			size = randRange(rng, minSize, changeSize)
		} else {
			size = randRange(rng, changeSize, maxSize)
		}

		c := &Course{Name: name, CohortSize: size}
		c.Preferences = strategy.GeneratePreferences(c, rng)
		courses = append(courses, c)
	}
	return courses
}

func simulateName(rng *rand.Rand, used map[string]bool) string {
	for {
		prefix := namePrefixes[rng.Intn(len(namePrefixes))]
		num := nameNumberLow + rng.Intn(nameNumberHigh-nameNumberLow)
		name := fmt.Sprintf("%s%d", prefix, num)
		if !used[name] {
			return name
		}
	}
}

// randRange draws a uniform integer in [low, high). If high <= low it
// returns low.
func randRange(rng *rand.Rand, low, high int) int {
	if high <= low {
		return low
	}
	return low + rng.Intn(high-low)
}
