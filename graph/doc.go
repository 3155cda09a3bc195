// Package graph compiles textual parametric curve definitions into
// evaluatable function trees.
//
// A curve is submitted as three independent sources: an x(t) expression, a
// y(t) expression, and a "where" clause of zero or more auxiliary
// assignments. [Compile] turns a submission into a [Parametric], which is
// sampled with a single scalar parameter per simulation tick.
//
// # Grammar
//
// Informal EBNF, precedence already encoded (highest binds first):
//
//	assigns → assign* EOF
//	assign  → identifier '=' expr
//	expr    → add
//	add     → mul (('+' | '-') mul)*
//	mul     → neg (('*' | '/' | '//' | '%') neg)*
//	neg     → '-'? exp
//	exp     → call ('^' call)*        right-associative
//	call    → call2 | call1 | primary
//	call1   → name primary
//	call2   → name primary primary
//	primary → '(' expr ')' | variable | constant
//
// Whitespace is insignificant between tokens. Function calls use prefix
// syntax without parentheses around the name: `sin t`, `min a b`.
//
// # Pipeline
//
// Compilation runs in two stages. The grammar stage lexes the source and
// produces a parse tree that mirrors the productions above, failing with a
// positioned syntax error on the first unparseable token. The build stage
// walks the parse tree and emits an immutable [Function] tree, resolving
// names against the registered constants, the unary and binary function
// tables, and the variables defined so far by the where clause. All
// failures reject the whole submission; nothing is recovered or retried.
//
// Evaluation is a pure recursion over the tree with IEEE 754 semantics
// throughout: division by zero and domain errors propagate as ±Inf or NaN
// rather than failing.
package graph
