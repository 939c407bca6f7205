// Package attrtext provides the attributed-text model for the extension
// core: a character sequence partitioned into runs, where each run carries
// an attribute set. Text values are immutable; every operation returns a
// new value with the run partition invariant re-established (runs sorted,
// non-overlapping, exactly covering the text with no gaps).
package attrtext
