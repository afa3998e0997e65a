// Package props holds fixed CSS property mapping tables: physical to
// logical property names and values.
package props
