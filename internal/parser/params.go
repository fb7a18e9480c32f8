package parser

// The grammar is parameterised by a handful of flags that productions pass
// down to their children. Each flag is its own type so that arguments cannot
// be swapped by accident at a call site. Productions copy them by value; a
// child forcing a flag for its own sub-parse never affects the caller.

// AllowIn is false only in contexts where `in` would be ambiguous, such as
// the initialiser of a `for` loop.
type AllowIn bool

// AllowYield is true inside generator bodies, where `yield` is an operator.
type AllowYield bool

// AllowAwait is true inside async function bodies, where `await` is an
// operator.
type AllowAwait bool

// AllowReturn is true inside function bodies.
type AllowReturn bool
