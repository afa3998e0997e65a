package analysis

import (
	"github.com/leapstack-labs/pandalint/pkg/jsast"
)

// Anchor records which recipe section a variant walk stopped at.
type Anchor int

// Anchors of a variant walk.
const (
	Unanchored Anchor = iota
	AnchoredAtBase
	AnchoredAtVariants
)

func (a Anchor) String() string {
	switch a {
	case AnchoredAtBase:
		return "base"
	case AnchoredAtVariants:
		return "variants"
	default:
		return "unanchored"
	}
}

// Recipe factories recognized by the variant detector.
const (
	RecipeFunc     = "cva"
	SlotRecipeFunc = "sva"
)

// Hop thresholds. Slot recipes nest style objects one slot name deeper.
const (
	recipeHops       = 2
	slotRecipeHops   = 4
	variantExtraHops = 4
)

// VariantWalk walks parent links from n until it meets a property keyed
// `base` or `variants`. It returns the anchor found and the number of hops
// taken before it; unanchored walks count every hop off the root.
func VariantWalk(n jsast.Node) (Anchor, int) {
	hops := 0
	for cur := n; cur != nil; {
		if a := anchorOf(cur); a != Unanchored {
			return a, hops
		}
		cur = cur.Parent()
		hops++
	}
	return Unanchored, hops
}

func anchorOf(n jsast.Node) Anchor {
	p, ok := n.(*jsast.Property)
	if !ok || p.Computed {
		return Unanchored
	}
	id, ok := p.Key.(*jsast.Identifier)
	if !ok {
		return Unanchored
	}
	switch id.Name {
	case "base":
		return AnchoredAtBase
	case "variants":
		return AnchoredAtVariants
	default:
		return Unanchored
	}
}

// VariantThreshold returns the hop count below which a key inside a recipe
// definition made by factory is a variant key.
func VariantThreshold(factory string, anchor Anchor) int {
	limit := recipeHops
	if factory == SlotRecipeFunc {
		limit = slotRecipeHops
	}
	if anchor != AnchoredAtBase {
		limit += variantExtraHops
	}
	return limit
}

// IsRecipeVariant reports whether p is a variant key inside a cva or sva
// definition rather than a style property. The recipe factory is resolved
// through the raw import list.
func (f *File) IsRecipeVariant(p *jsast.Property) bool {
	if p == nil {
		return false
	}
	if v, ok := f.variants[p]; ok {
		return v
	}
	v := f.isRecipeVariant(p)
	f.variants[p] = v
	return v
}

func (f *File) isRecipeVariant(p *jsast.Property) bool {
	caller, ok := f.InPandaFunction(p)
	if !ok {
		return false
	}
	imp, ok := f.ImportFor(caller)
	if !ok || (imp.Name != RecipeFunc && imp.Name != SlotRecipeFunc) {
		return false
	}
	anchor, hops := VariantWalk(p)
	return hops < VariantThreshold(imp.Name, anchor)
}
