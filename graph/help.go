package graph

// QuickHelp summarizes the expression language for display alongside
// the entry form.
const QuickHelp = `
Examples:
x(t) = v                    x(t) = -2 * t
y(t) = u^2                  y(t) = sin(3 * t)
where u = 2 * t - 4         where
      v = u + t * 0               <nothing>

Operations:
add (+), subtract (-), multiply (*), divide (/),
floor divide (//), modulo (%), exponent (^)

Constants: tau, pi, e

Unary functions (syntax: ` + "`sin a`" + `):
sin, cos, tan, asin, acos, atan, sinh, cosh, tanh,
asinh, acosh, atanh, ln, log2, log10, sqrt, cbrt,
abs, sign, floor, ceil, fract

Binary functions (syntax: ` + "`min a b`" + `): min, max, atan2

Precedence (highest to lowest):
function call
^
* / // %
+ -
`
