package attack

import (
	"slices"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

const (
	// DefaultMaxSearchDice bounds the roster size a single search accepts
	DefaultMaxSearchDice = 16
	// DefaultBruteForceThreshold is the largest input enumerated as a full powerset
	DefaultBruteForceThreshold = 6
)

// SearchLimits bounds the subset-sum search so it terminates in bounded time
type SearchLimits struct {
	MaxDice             int
	BruteForceThreshold int
}

// DefaultLimits returns the default search bounds
func DefaultLimits() SearchLimits {
	return SearchLimits{
		MaxDice:             DefaultMaxSearchDice,
		BruteForceThreshold: DefaultBruteForceThreshold,
	}
}

func (l SearchLimits) normalized() SearchLimits {
	if l.MaxDice <= 0 {
		l.MaxDice = DefaultMaxSearchDice
	}
	if l.BruteForceThreshold < 0 {
		l.BruteForceThreshold = 0
	}
	return l
}

// Item is one candidate die of a search. Items sharing Class and Value are
// interchangeable: a subset is identified by how many of each class it takes.
type Item struct {
	Value int
	Class string
}

type class struct {
	value   int
	indices []int
}

// SubsetsWithSum returns every distinct non-empty subset of items whose values
// add up to target. Each subset is an ascending index list and takes the first
// k items of each class it uses. The result is sorted.
func SubsetsWithSum(items []Item, target int, limits SearchLimits) ([][]int, error) {
	limits = limits.normalized()
	if len(items) > limits.MaxDice {
		return nil, dnderr.InvalidArgumentf("search over %d dice exceeds limit of %d", len(items), limits.MaxDice)
	}
	for i, it := range items {
		if it.Value < 1 {
			return nil, dnderr.InvalidArgumentf("item %d has value %d", i, it.Value)
		}
	}
	if target < 1 || len(items) == 0 {
		return nil, nil
	}

	classes := groupClasses(items)

	var found [][]int
	if len(items) <= limits.BruteForceThreshold {
		found = bruteForce(items, classes, target)
	} else {
		found = pruned(classes, target)
	}

	slices.SortFunc(found, func(a, b []int) int { return slices.Compare(a, b) })
	return found, nil
}

func groupClasses(items []Item) []class {
	var classes []class
	index := make(map[string]int)
	for i, it := range items {
		key := it.Class + "#" + strconv.Itoa(it.Value)
		c, ok := index[key]
		if !ok {
			c = len(classes)
			index[key] = c
			classes = append(classes, class{value: it.Value})
		}
		classes[c].indices = append(classes[c].indices, i)
	}
	return classes
}

// bruteForce walks the whole powerset and folds interchangeable picks together
func bruteForce(items []Item, classes []class, target int) [][]int {
	classOf := make([]int, len(items))
	for c, cl := range classes {
		for _, i := range cl.indices {
			classOf[i] = c
		}
	}

	seen := make(map[string]bool)
	var found [][]int
	for mask := 1; mask < 1<<len(items); mask++ {
		total := 0
		counts := make([]int, len(classes))
		for i := range items {
			if mask&(1<<i) != 0 {
				total += items[i].Value
				counts[classOf[i]]++
			}
		}
		if total != target {
			continue
		}
		key := countsKey(counts)
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, pick(classes, counts))
	}
	return found
}

// pruned searches (class index, remaining target), choosing how many dice of
// each class to take. A branch is cut once the remaining target falls outside
// what the untried classes can still reach.
func pruned(classes []class, target int) [][]int {
	n := len(classes)
	suffixMax := make([]int, n+1)
	suffixMin := make([]int, n+1)
	suffixMin[n] = 0
	for i := n - 1; i >= 0; i-- {
		suffixMax[i] = suffixMax[i+1] + classes[i].value*len(classes[i].indices)
		suffixMin[i] = classes[i].value
		if i+1 < n && suffixMin[i+1] < suffixMin[i] {
			suffixMin[i] = suffixMin[i+1]
		}
	}

	var found [][]int
	counts := make([]int, n)
	var walk func(i, remaining int)
	walk = func(i, remaining int) {
		if remaining == 0 {
			found = append(found, pick(classes, counts))
			return
		}
		if i == n || remaining > suffixMax[i] || remaining < suffixMin[i] {
			return
		}
		cl := classes[i]
		for k := len(cl.indices); k >= 0; k-- {
			if k*cl.value > remaining {
				continue
			}
			counts[i] = k
			walk(i+1, remaining-k*cl.value)
		}
		counts[i] = 0
	}
	walk(0, target)
	return found
}

func pick(classes []class, counts []int) []int {
	var subset []int
	for c, k := range counts {
		subset = append(subset, classes[c].indices[:k]...)
	}
	slices.Sort(subset)
	return subset
}

func countsKey(counts []int) string {
	parts := make([]string, len(counts))
	for i, k := range counts {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}
