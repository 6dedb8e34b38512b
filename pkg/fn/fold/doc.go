// Package fold provides generic left-to-right accumulation over slices and
// channels, with and without element indexes, plus a result-aware variant
// that unfolds before accumulating.
package fold
