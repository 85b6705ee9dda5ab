// Package analyzer classifies the files of a directory tree and
// aggregates usage and security statistics.
//
// It walks the tree with fastwalk for parallel traversal, categorizes
// each regular file by magic-byte signature with an extension
// fallback, audits file modes for unusual permission bits, and folds
// everything into a single Report with per-category totals, the
// largest files and grouped permission issues.
package analyzer
