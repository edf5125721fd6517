// Package alliance implements the alliance engine over the actor graph:
// proposing alliances, synthesizing the full pairwise alliance network, and
// choosing the best ally for a conquest.
//
// Proposal factor:
//
//	path  = shortest alliance path a..b (PathPolicy decides the weights)
//	factor = mean compatibility of the public alliances on path
//	       | fallback in [min, max) when there is no path or no public hop
//	power = (strength(a) + strength(b)) * factor
//
// The fallback draws from an injected Rand, so tests can fix it.
//
// Path policy:
//
//	PowerAsCost (default)  alliance edge weight (= power) is minimized, so the
//	                       path favors weak alliances
//	HopCount               fewest alliances, weights ignored
//
// Derived graphs (PublicView, AllPossible) are independent copies; the live
// actor graph is only mutated by Propose.
package alliance
