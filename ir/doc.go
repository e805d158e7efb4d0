// Package ir defines the value tree produced by parsing a build script.
//
// A tree is made of Nodes. Block nodes hold named entries in source order;
// the other node kinds are leaves or hold positional arguments. Every node
// is owned by exactly one parent container, so the tree is acyclic and can
// be mutated in place without aliasing concerns. The package also provides
// path-based access: Get, Set and Remove address nodes by a sequence of
// string segments.
package ir
