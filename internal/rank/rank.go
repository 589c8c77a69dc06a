package rank

import (
	"slices"
	"strconv"
	"strings"
)

// Rank is the structured ordering key of a declared group or example.
type Rank struct {
	Path []uint64
}

// Of builds a Rank from its keys.
func Of(keys ...uint64) Rank {
	return Rank{Path: slices.Clone(keys)}
}

// Depth is the number of levels in the rank.
func (r Rank) Depth() int {
	return len(r.Path)
}

// Compare orders two ranks lexicographically. A rank sorts before every rank
// it is a prefix of.
func (r Rank) Compare(other Rank) int {
	return slices.Compare(r.Path, other.Path)
}

// Less reports whether r sorts before other.
func (r Rank) Less(other Rank) bool {
	return r.Compare(other) < 0
}

// String serializes the Rank into its canonical dotted form.
func (r Rank) String() string {
	var sb strings.Builder
	for i, key := range r.Path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(strconv.FormatUint(key, 10))
	}
	return sb.String()
}
