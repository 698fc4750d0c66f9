// Package graphcalc implements the computation core of a graphing
// calculator: an infix expression evaluator over float64 values.
//
// The syntax is intended to be what you'd punch into a TI-84 or write in
// your notes. "2x" is a multiplication, "sin 90" is a function call, and
// "-2^2" is -(2^2). Combinations and permutations are the word operators
// nCr and nPr, as in "5 nCr 2".
//
// Parse an expression once and evaluate it for many inputs by binding
// variables in a Context. The Context also selects whether trigonometric
// functions work in degrees or radians.
package graphcalc
