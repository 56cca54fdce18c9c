package core

import (
	"math/rand"
	"slices"

	"github.com/IsaacParker30/paper-read/schema"
)

// stageSeed fixes the pseudo-random draw inside each tier so that a symbol
// is stable across renders. The selector reseeds on every call, so all cells
// of the same tier in a grid show the identical symbol.
const stageSeed = 19

// Stage tier palettes. Repeated symbols bias the draw toward the common
// glyph of the tier.
var (
	seedTier = []string{"🫘", "🌰"}

	saplingTier = slices.Concat(
		slices.Repeat([]string{"🌱"}, 10),
		slices.Repeat([]string{"🌿", "🍃", "☘️"}, 3),
		[]string{"🍀"},
	)

	treeTier = slices.Concat(
		slices.Repeat([]string{"🌳", "🌲"}, 4),
		[]string{"🍄", "🍄‍🟫"},
	)

	insectTier = []string{"🐛", "🐞", "🦋", "🐝", "🐜", "🦗", "🐌", "🕷️"}

	animalTier = []string{"🐿️", "🦡", "🦔", "🦌", "🐭", "🦊", "🐻", "🐺", "🦉", "🦅"}
)

// StageSymbol maps a local streak length to its stage glyph. Zero or
// negative lengths produce the empty cell; lengths of five and beyond stay
// in the woodland animal tier. The function is pure: the same input always
// yields the same symbol.
func StageSymbol(streak int) string {
	switch {
	case streak <= 0:
		return schema.EmptyCell
	case streak == 1:
		return pickSymbol(seedTier)
	case streak == 2:
		return pickSymbol(saplingTier)
	case streak == 3:
		return pickSymbol(treeTier)
	case streak == 4:
		return pickSymbol(insectTier)
	default:
		return pickSymbol(animalTier)
	}
}

// pickSymbol draws one symbol from a tier with a freshly seeded generator.
func pickSymbol(tier []string) string {
	r := rand.New(rand.NewSource(stageSeed))
	return tier[r.Intn(len(tier))]
}
