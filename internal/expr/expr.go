// Package expr implements a small arithmetic expression grammar used for
// user-supplied waveform formulas and coefficient lists.
//
// The grammar covers decimal literals, the sampled-time variable t, the
// constants pi and e, the binary operators + - * / ^, unary minus,
// parentheses, and a fixed whitelist of elementary functions. Anything
// outside that grammar is a parse error; there is deliberately no general
// evaluation facility.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrParse is wrapped by every parse failure.
var ErrParse = errors.New("expr: parse error")

// functions is the whitelist of callable elementary functions.
var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

// node is one evaluated AST node.
type node interface {
	eval(t float64) float64
}

type literal float64

func (l literal) eval(float64) float64 { return float64(l) }

type variable struct{}

func (variable) eval(t float64) float64 { return t }

type unary struct {
	operand node
}

func (u unary) eval(t float64) float64 { return -u.operand.eval(t) }

type binary struct {
	op          byte
	left, right node
}

func (b binary) eval(t float64) float64 {
	l := b.left.eval(t)
	r := b.right.eval(t)

	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default: // '^'
		return math.Pow(l, r)
	}
}

type call struct {
	fn      func(float64) float64
	operand node
}

func (c call) eval(t float64) float64 { return c.fn(c.operand.eval(t)) }

// Expr is a parsed expression ready for repeated evaluation.
type Expr struct {
	root    node
	usesVar bool
}

// Eval evaluates the expression with the variable t bound to the given
// value. Domain errors surface as NaN or Inf; callers that need finite
// results must check the output.
func (e *Expr) Eval(t float64) float64 {
	return e.root.eval(t)
}

// UsesVar reports whether the expression references the variable t.
func (e *Expr) UsesVar() bool {
	return e.usesVar
}

// Parse compiles src into an Expr or fails with an error wrapping ErrParse.
func Parse(src string) (*Expr, error) {
	p := &parser{src: src}
	p.skipSpace()

	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}

	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, p.src[p.pos], p.pos)
	}

	return &Expr{root: root, usesVar: p.usesVar}, nil
}

type parser struct {
	src     string
	pos     int
	usesVar bool
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}

	return 0
}

// parseSum handles + and - at the lowest precedence level.
func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()

		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++

		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}

		left = binary{op: op, left: left, right: right}
	}
}

// parseProduct handles * and /.
func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()

		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = binary{op: op, left: left, right: right}
	}
}

// parseUnary handles a prefix minus sign.
func (p *parser) parseUnary() (node, error) {
	p.skipSpace()

	if p.peek() == '-' {
		p.pos++

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return unary{operand: operand}, nil
	}

	return p.parsePower()
}

// parsePower handles the right-associative ^ operator.
func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++

	// Right associativity: the exponent may itself be a power or a
	// unary minus, as in 2^-t.
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binary{op: '^', left: base, right: exponent}, nil
}

func (p *parser) parseAtom() (node, error) {
	p.skipSpace()

	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}

	c := p.src[p.pos]

	switch {
	case c == '(':
		p.pos++

		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrParse)
		}
		p.pos++

		return inner, nil

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()

	case unicode.IsLetter(rune(c)):
		return p.parseIdent()
	}

	return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, c, p.pos)
}

func (p *parser) parseNumber() (node, error) {
	start := p.pos
	seenExp := false

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}

		if (c == 'e' || c == 'E') && !seenExp && p.pos > start {
			next := p.pos + 1
			if next < len(p.src) && (p.src[next] == '+' || p.src[next] == '-') {
				next++
			}
			if next < len(p.src) && p.src[next] >= '0' && p.src[next] <= '9' {
				seenExp = true
				p.pos = next
				continue
			}
		}

		break
	}

	value, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrParse, p.src[start:p.pos])
	}

	return literal(value), nil
}

func (p *parser) parseIdent() (node, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}
		p.pos++
	}

	name := strings.ToLower(p.src[start:p.pos])

	switch name {
	case "t":
		p.usesVar = true
		return variable{}, nil
	case "pi":
		return literal(math.Pi), nil
	case "e":
		return literal(math.E), nil
	}

	fn, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown identifier %q", ErrParse, name)
	}

	p.skipSpace()
	if p.peek() != '(' {
		return nil, fmt.Errorf("%w: function %q requires parentheses", ErrParse, name)
	}
	p.pos++

	operand, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.peek() != ')' {
		return nil, fmt.Errorf("%w: missing closing parenthesis after %q", ErrParse, name)
	}
	p.pos++

	return call{fn: fn, operand: operand}, nil
}
