// Package jsast provides an ESTree-shaped syntax tree for JavaScript,
// TypeScript, JSX and TSX sources.
//
// The tree is built from a tree-sitter parse and keeps only the node kinds
// the linter reasons about. Every other construct becomes an *Other node that
// preserves its children, so ancestor walks and traversals still see the whole
// file. Node is a closed sum type: the set of implementations is fixed by this
// package and type switches over it are expected to be exhaustive.
//
// Parent links follow ESTree conventions rather than the concrete grammar:
// call arguments hang directly off the CallExpression, parenthesized
// expressions are unwrapped, and a self-closing JSX element owns a synthetic
// opening element with the same span.
package jsast
