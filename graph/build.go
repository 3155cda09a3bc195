package graph

import (
	"fmt"
	"strconv"
)

// paramIndex marks the free parameter t in the variable resolver.
const paramIndex = -1

// newResolver returns a variable resolver pre-seeded with t.
func newResolver() map[string]int {
	return map[string]int{"t": paramIndex}
}

var addOps = map[string]AddOp{
	"+": OpAdd,
	"-": OpSub,
}

var mulOps = map[string]MulOp{
	"*":  OpMul,
	"/":  OpDiv,
	"//": OpFloorDiv,
	"%":  OpMod,
}

// buildAssigns builds the assignment list from a where-clause parse
// tree, extending vars as it goes. Each name is registered before its
// defining expression is built, so an assignment may reference any name
// to its left but never one to its right.
func buildAssigns(root *pair, vars map[string]int) ([]Function, error) {
	assigns := make([]Function, 0, len(root.kids))

	for i, a := range root.kids {
		name := a.kids[0].tok

		if _, ok := vars[name.text]; ok {
			return nil, locate(
				ErrRedefined,
				fmt.Sprintf("'%s' is already defined", name.text),
				name,
			)
		}

		if _, ok := LookupConstant(name.text); ok {
			return nil, locate(
				ErrAssignConstant,
				fmt.Sprintf("cannot assign to constant '%s'", name.text),
				name,
			)
		}

		vars[name.text] = i

		f, err := buildFunction(a.kids[1], vars)
		if err != nil {
			return nil, err
		}

		assigns = append(assigns, f)
	}

	return assigns, nil
}

// buildFunction builds a Function from a parse tree, resolving names
// against vars and the registries. Single-operand add, mul and exp
// chains degenerate to their operand, so the result carries no
// redundant wrapper nodes.
func buildFunction(p *pair, vars map[string]int) (Function, error) {
	switch p.rule {
	case ruleExpr, rulePrimary:
		return buildFunction(p.kids[0], vars)

	case ruleAdd:
		if len(p.kids) == 1 {
			return buildFunction(p.kids[0], vars)
		}

		chain := make(Add, 0, (len(p.kids)+1)/2)
		op := OpAdd

		for i := 0; i < len(p.kids); i++ {
			if p.kids[i].rule == ruleOp {
				op = addOps[p.kids[i].tok.text]
				i++
			}

			f, err := buildFunction(p.kids[i], vars)
			if err != nil {
				return nil, err
			}

			chain = append(chain, AddTerm{F: f, Op: op})
		}

		return chain, nil

	case ruleMul:
		if len(p.kids) == 1 {
			return buildFunction(p.kids[0], vars)
		}

		chain := make(Mul, 0, (len(p.kids)+1)/2)
		op := OpMul

		for i := 0; i < len(p.kids); i++ {
			if p.kids[i].rule == ruleOp {
				op = mulOps[p.kids[i].tok.text]
				i++
			}

			f, err := buildFunction(p.kids[i], vars)
			if err != nil {
				return nil, err
			}

			chain = append(chain, MulTerm{F: f, Op: op})
		}

		return chain, nil

	case ruleNeg:
		f, err := buildFunction(p.kids[0], vars)
		if err != nil {
			return nil, err
		}

		if p.minus {
			return Neg{F: f}, nil
		}

		return f, nil

	case ruleExp:
		if len(p.kids) == 1 {
			return buildFunction(p.kids[0], vars)
		}

		chain := make(Exp, 0, len(p.kids))

		for _, kid := range p.kids {
			f, err := buildFunction(kid, vars)
			if err != nil {
				return nil, err
			}

			chain = append(chain, f)
		}

		return chain, nil

	case ruleCall1:
		name := p.kids[0].tok

		fn, ok := LookupUnary(name.text)
		if !ok {
			return nil, locate(
				ErrUnknownUnary,
				"unknown unary function: "+name.text,
				name,
			)
		}

		arg, err := buildFunction(p.kids[1], vars)
		if err != nil {
			return nil, err
		}

		return Call1{Fn: fn, Arg: arg}, nil

	case ruleCall2:
		name := p.kids[0].tok

		fn, ok := LookupBinary(name.text)
		if !ok {
			return nil, locate(
				ErrUnknownBinary,
				"unknown binary function: "+name.text,
				name,
			)
		}

		arg1, err := buildFunction(p.kids[1], vars)
		if err != nil {
			return nil, err
		}

		arg2, err := buildFunction(p.kids[2], vars)
		if err != nil {
			return nil, err
		}

		return Call2{Fn: fn, Args: [2]Function{arg1, arg2}}, nil

	case ruleVar:
		name := p.tok

		// Reserved constants shadow user definitions of the same name,
		// though the builder rejects such definitions anyway.
		if v, ok := LookupConstant(name.text); ok {
			return Const(v), nil
		}

		if idx, ok := vars[name.text]; ok {
			if idx == paramIndex {
				return Param{}, nil
			}

			return Ref(idx), nil
		}

		return nil, locate(
			ErrUnknownVariable,
			"unknown variable: "+name.text,
			name,
		)

	case ruleConst:
		// The lexer guarantees the form; an out-of-range literal keeps
		// the returned infinity.
		v, _ := strconv.ParseFloat(p.tok.text, 64)

		return Const(v), nil

	default:
		return nil, syntaxError(p.tok.line, p.tok.col)
	}
}
