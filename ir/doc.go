// Package ir defines the tree representation for cfg documents.
//
// A cfg document is a tree of settings. Every setting is an [ir.Node]:
// either a scalar (int, int64, float, bool, string), a group (an ordered
// mapping of uniquely named child settings), an array (an ordered sequence
// of same-typed scalars), or a list (an ordered sequence of settings of any
// kind). The root of a document is always a group.
//
// The IR works as a recursive tagged structure: the Type field selects the
// node kind and determines which payload fields are meaningful. Scalar
// payloads live in Int64, Float64, Bool and String; container children live
// in Values.
//
// # Parent linkage
//
// Each non-root node records its parent, its index within the parent's
// Values, and, when the parent is a group, its name. The parent link is a
// structural back-reference and never implies ownership: ownership flows
// strictly from the root down through Values. Mutation helpers (Add, Remove,
// RemoveAt) keep parent linkage consistent; code building trees by hand must
// do the same.
//
// # Invariants
//
//   - Group children have unique, non-empty names; insertion order is
//     preserved and significant.
//   - Array children are scalars sharing a single type.
//   - List and array children carry no name.
//
// Add enforces all three, so trees built through Add (the parser and the
// cfg writer API both do) cannot violate them.
//
// # Paths
//
// Lookup navigates a tree with a dotted path such as "server.ports.[0]";
// Path reports the dotted path of a node. Path syntax is defined in
// package [github.com/cfg-format/go-cfg/ir/cfgpath].
//
// Node trees are not safe for concurrent use.
package ir
