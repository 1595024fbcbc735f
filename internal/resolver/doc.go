// Package resolver orders assets so that every asset comes after the assets it
// depends on.
//
// Resolution is a depth-first traversal over an arena of nodes indexed by name.
// Assets are visited in input order and each asset's dependencies are visited in
// declared order, so the same input always yields the same output.
//
// By default resolution never fails. Dependencies naming an asset that is not in
// the input contribute nothing, and a dependency on an asset whose traversal is
// still in progress (a cycle) is dropped. This keeps rendering alive as a last
// resort but makes no promise about the relative order of assets in a cycle.
// The Strict option turns both situations into errors instead.
package resolver
