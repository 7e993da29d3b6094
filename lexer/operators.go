package lexer

import "github.com/dlink-lang/dlinkc/token"

// singleCharKind maps an ASCII byte to the token kind it starts as a
// single-character operator or punctuation mark.
var singleCharKind = map[byte]token.Kind{
	'~': token.BitNot, '!': token.Exclamation, '$': token.Dollar,
	'%': token.Modulo, '^': token.BitXor, '&': token.BitAnd,
	'*': token.Multiply, '(': token.ParenLeft, ')': token.ParenRight,
	'-': token.Minus, '+': token.Plus, '=': token.Assign,
	'|': token.BitOr, '{': token.BraceLeft, '[': token.BigParenLeft,
	'}': token.BraceRight, ']': token.BigParenRight, ':': token.Colon,
	';': token.Semicolon, '<': token.Less, ',': token.Comma,
	'>': token.Greater, '.': token.Dot, '?': token.Question,
	'/': token.Divide,
}

// invalidSpecialBytes are special characters with no operator meaning
// outside of a string/character literal: backtick, at, hash, backslash.
var invalidSpecialBytes = map[byte]bool{
	'`': true, '@': true, '#': true, '\\': true,
}

type complexKey struct {
	base token.Kind
	next byte
}

// complexTokenType implements the complex-operator extension table. Depth
// is capped at 3: a token may absorb at most two bytes beyond its first.
var complexTokenType = map[complexKey]token.Kind{
	{token.Exclamation, '='}: token.EqualNot,
	{token.Modulo, '='}:      token.ModuloAssign,
	{token.BitXor, '='}:      token.BitXorAssign,
	{token.BitAnd, '='}:      token.BitAndAssign,
	{token.BitAnd, '&'}:      token.LogicAnd,
	{token.Multiply, '='}:    token.MultiplyAssign,
	{token.Multiply, '*'}:    token.Exp,
	{token.Minus, '-'}:       token.Decrement,
	{token.Minus, '='}:       token.MinusAssign,
	{token.Minus, '>'}:       token.RightwardsArrow,
	{token.Plus, '+'}:        token.Increment,
	{token.Plus, '='}:        token.PlusAssign,
	{token.Plus, '>'}:        token.RightwardsDoubleArrow,
	{token.Assign, '='}:      token.Equal,
	{token.BitOr, '='}:       token.BitOrAssign,
	{token.BitOr, '|'}:       token.LogicOr,
	{token.Less, '<'}:        token.BitShiftLeft,
	{token.Greater, '>'}:     token.BitShiftRight,
	{token.Divide, '='}:      token.DivideAssign,

	// Depth-3 extensions of the depth-2 results above.
	{token.Exp, '='}:              token.ExpAssign,
	{token.BitShiftLeft, '='}:     token.BitShiftLeftAssign,
	{token.BitShiftRight, '='}:    token.BitShiftRightAssign,
}
