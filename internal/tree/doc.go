// Package tree defines the generic syntax tree populated by the Ada parser.
//
// Every node implements Node. Composite nodes own their children exclusively
// and keep them in source order; an absent optional child is nil. Unit is the
// explicit "no value" node and is only ever returned at the top level as the
// failure value of the sentinel driver API.
//
// Names are represented by Ident, Selected (P.Q), Attribute (X'First),
// Call (F(X), A(I), T(V)) and Deref (P.all). The parser does not try to tell
// a function call from an indexed component or a type conversion: all three
// are Call.
package tree
