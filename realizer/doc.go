// Package realizer provides order-dimension diagnostics: minimal realizers,
// realizer intersection, critical (incomparable) pairs and the crown poset
// fixture.
//
// Everything here is exponential in the number of items. FindMin refuses
// inputs above a configurable item limit (WithMaxItems, default 8) and
// nothing in the sampling path calls into this package; it exists for
// reports and for validating the order algebra on small, well-known posets.
//
// Example:
//
//	names, h, _ := realizer.Crown(3)
//	r, err := realizer.FindMin(h, []int{0, 1, 2, 3, 4, 5})
//	// r.Size() == 3 (the crown on 6 elements has dimension 3)
package realizer
