// Package heuristics implements the advanced single-pass deduction rules
// layered on top of overlap and edge forcing: glue, mercury, joining and
// splitting, and punctuation.
//
// What:
//
//   - Glue extends a partial Filled run toward a block size it can only be
//     part of.
//   - Mercury restates overlap restricted to the contiguous Crossed-free
//     segment a block's window falls in, catching forced cells a Crossed
//     barrier creates that the barrier-blind overlap formula misses.
//   - Joining/splitting merges two adjacent runs separated by a single
//     Empty cell when more runs exist than blocks.
//   - Punctuation crosses every remaining Empty cell once the line's
//     Filled runs already match the constraint exactly.
//
// Each rule is applied once per line per call to Apply; a fixed-point
// driver is expected to re-invoke Apply until it returns no deductions.
package heuristics
