// Package rbt implements a red-black tree: a self-balancing binary
// search tree that keeps search and insertion at O(log n) by pairing a
// per-node color bit with rotation and recoloring rules applied after
// every mutation. It is an ordered-container building block of the kind
// used beneath indexes, ordered maps, and scheduling queues.
//
// The tree is generic over any ordered value type and rejects
// duplicates: inserting a value that is already present leaves the
// structure untouched and reports the existing node. Deletion is not
// provided; the container is insert-and-query-only.
//
// The tree is a single-writer structure. Rotations and recoloring are
// multi-step pointer surgery with no intermediate consistency, so
// callers needing concurrent access must serialize externally.
package rbt
