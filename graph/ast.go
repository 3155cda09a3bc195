package graph

// Function is a compiled expression tree node. Trees are immutable once
// built and strictly hierarchical; sharing happens only through Ref
// nodes, which point into an assignment list by index.
type Function interface {
	// Eval computes the node's value for the parameter t. Ref nodes
	// index into assigns, which must be the list the tree was compiled
	// against.
	Eval(t float64, assigns []Function) float64
}

// Param is the free parameter t.
type Param struct{}

// Ref is a reference to the i-th auxiliary assignment. The builder only
// ever emits indices of assignments already defined to its left, so a
// Ref can never reach forward.
type Ref int

// Const is a numeric literal or a resolved named constant.
type Const float64

// AddOp selects how a term joins an additive chain.
type AddOp int

// MulOp selects how a term joins a multiplicative chain.
type MulOp int

const (
	OpAdd AddOp = iota
	OpSub
)

const (
	OpMul MulOp = iota
	OpDiv
	OpFloorDiv
	OpMod
)

// AddTerm is one operand of an additive chain with its joining operator.
// The first term of a chain always carries OpAdd.
type AddTerm struct {
	F  Function
	Op AddOp
}

// MulTerm is one operand of a multiplicative chain. The first term of a
// chain always carries OpMul.
type MulTerm struct {
	F  Function
	Op MulOp
}

// Add is an additive chain of two or more terms in textual order. The
// builder never emits a single-term chain.
type Add []AddTerm

// Mul is a multiplicative chain of two or more terms in textual order.
type Mul []MulTerm

// Exp is an exponentiation chain of two or more operands in textual
// order. Evaluation folds right to left, so the chain is
// right-associative.
type Exp []Function

// Neg negates its operand.
type Neg struct {
	F Function
}

// Call1 applies a registered unary function.
type Call1 struct {
	Arg Function
	Fn  Unary
}

// Call2 applies a registered binary function.
type Call2 struct {
	Args [2]Function
	Fn   Binary
}
