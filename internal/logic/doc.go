// Package logic implements manipulation of symbolic propositional-logic
// expressions.
//
// An expression is parsed from a string built from the operators !, &, |,
// ->, <->, which correspond to the logical functions not, and, or,
// if-then, and if-and-only-if. Variable names must start with a letter and
// contain only alphanumerics and the underscore character; TRUE and FALSE
// are literals.
//
// Precedence, high to low: !, &, |, ->, <->. Binary connectives are
// left-associative, so -> binds tighter than <-> and a->b->c parses as
// (a->b)->c. Parentheses override precedence.
//
// Statements are immutable trees. A truth table enumerates a statement's
// value over all 2^n assignments of its n variables in increasing row
// order, with variable i (in first-occurrence order) taking bit i of the
// row index.
package logic
