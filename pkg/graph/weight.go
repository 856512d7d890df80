package graph

// BaseWeight is the weight of a module node and the floor of a class node.
const BaseWeight = 4

// DefaultPerDependency is the weight added per dependency (plus one) by
// [DefaultWeight].
const DefaultPerDependency = 2

// WeightFunc maps a class's dependency count to its visual weight.
type WeightFunc func(dependencies int) int

// LinearWeight returns base + perDependency*(1+dependencies).
func LinearWeight(base, perDependency int) WeightFunc {
	return func(dependencies int) int {
		return base + perDependency*(1+dependencies)
	}
}

// DefaultWeight is LinearWeight(BaseWeight, DefaultPerDependency).
var DefaultWeight = LinearWeight(BaseWeight, DefaultPerDependency)
