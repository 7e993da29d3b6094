// Package token defines the lexical token kinds and the Token value the
// lexer produces. Tokens hold borrowed slices into a Source's buffers; a
// Source must outlive every Token produced from it.
package token

import "fmt"

// Kind enumerates every lexical token variant. The declaration order
// mirrors the original Dlink compiler's token_type enum (see
// _examples/original_source/include/Dlink/token.hpp) so that the numeric
// values are stable across the two implementations for diffing purposes.
type Kind int

const (
	None Kind = iota // uninitialised sentinel
	EOF

	// Sub-pass A placeholder; never survives into the final token vector.
	Whitespace

	// Sub-pass A placeholder for an unclassified run of letters/digits,
	// relabelled to Identifier, a keyword kind, or a numeric kind in
	// sub-pass B.
	NoneHM

	Identifier

	IntegerBin
	IntegerOct
	IntegerDec
	IntegerHex

	Decimal

	Character // 'x'
	String    // "..."

	Plus        // +
	Increment   // ++
	PlusAssign  // +=

	Minus       // -
	Decrement   // --
	MinusAssign // -=

	Multiply       // *
	MultiplyAssign // *=

	Divide       // /
	DivideAssign // /=

	Modulo       // %
	ModuloAssign // %=

	Exp       // **
	ExpAssign // **=

	Assign     // =
	Equal      // ==
	EqualNot   // !=
	Greater    // >
	EqualLess  // <=
	Less       // <
	EqualGreater // >=

	LogicAnd // &&
	LogicOr  // ||

	BitNot             // ~
	BitAnd             // &
	BitAndAssign       // &=
	BitOr              // |
	BitOrAssign        // |=
	BitXor             // ^
	BitXorAssign       // ^=
	BitShiftLeft       // <<
	BitShiftLeftAssign // <<=
	BitShiftRight       // >>
	BitShiftRightAssign // >>=

	RightwardsArrow       // ->
	RightwardsDoubleArrow // =>

	BraceLeft     // {
	BraceRight    // }
	ParenLeft     // (
	ParenRight    // )
	BigParenLeft  // [
	BigParenRight // ]

	Dot       // .
	Comma     // ,
	Apostrophe // '
	Semicolon // ;
	Colon     // :

	Exclamation // !
	Question    // ?

	Dollar // $
	At     // @

	KeywordAuto
	KeywordVoid
	KeywordBool
	KeywordChar
	KeywordChar16
	KeywordChar32

	KeywordI8
	KeywordI16
	KeywordI32
	KeywordI64
	KeywordU8
	KeywordU16
	KeywordU32
	KeywordU64

	KeywordLet
	KeywordImmut
	KeywordMut
	KeywordConst

	KeywordFunc
	KeywordClass
	KeywordUnion
	KeywordModule
	KeywordDomain
	KeywordInline
	KeywordEnum
	KeywordPublic
	KeywordInternal
	KeywordProtected
	KeywordPrivate
	KeywordUse
	KeywordAs
	KeywordDefault
	KeywordMacro
	KeywordPanic

	KeywordFor
	KeywordDo
	KeywordWhile
	KeywordMatch
	KeywordIf
	KeywordElse
	KeywordGoto
	KeywordBreak
	KeywordContinue
	KeywordReturn

	KeywordExtern
	KeywordTemplate
	KeywordType
	KeywordConcept
	KeywordUnsafe

	KeywordVirtual
	KeywordAbstract
	KeywordOpen
	KeywordThis
	KeywordSuper
	KeywordStatic

	KeywordAsync
	KeywordAwait

	KeywordBit
	KeywordNew
	KeywordDelete
	KeywordNullptr

	KeywordStaticCast
	KeywordDynamicCast
	KeywordConstCast
	KeywordReinterpretCast
	KeywordIs
	KeywordTypeid

	KeywordStaticAssert

	KeywordTrue
	KeywordFalse
)

var kindNames = map[Kind]string{
	None:       "none",
	EOF:        "eof",
	Whitespace: "whitespace",
	NoneHM:     "none_hm",

	Identifier: "identifier",

	IntegerBin: "integer_bin",
	IntegerOct: "integer_oct",
	IntegerDec: "integer_dec",
	IntegerHex: "integer_hex",

	Decimal: "decimal",

	Character: "character",
	String:    "string",

	Plus:       "plus",
	Increment:  "increment",
	PlusAssign: "plus_assign",

	Minus:       "minus",
	Decrement:   "decrement",
	MinusAssign: "minus_assign",

	Multiply:       "multiply",
	MultiplyAssign: "multiply_assign",

	Divide:       "divide",
	DivideAssign: "divide_assign",

	Modulo:       "modulo",
	ModuloAssign: "modulo_assign",

	Exp:       "exp",
	ExpAssign: "exp_assign",

	Assign:       "assign",
	Equal:        "equal",
	EqualNot:     "equal_not",
	Greater:      "greater",
	EqualGreater: "equal_greater",
	Less:         "less",
	EqualLess:    "equal_less",

	LogicAnd: "logic_and",
	LogicOr:  "logic_or",

	BitNot:              "bit_not",
	BitAnd:              "bit_and",
	BitAndAssign:        "bit_and_assign",
	BitOr:               "bit_or",
	BitOrAssign:         "bit_or_assign",
	BitXor:              "bit_xor",
	BitXorAssign:        "bit_xor_assign",
	BitShiftLeft:        "bit_shift_left",
	BitShiftLeftAssign:  "bit_shift_left_assign",
	BitShiftRight:       "bit_shift_right",
	BitShiftRightAssign: "bit_shift_right_assign",

	RightwardsArrow:       "rightwards_arrow",
	RightwardsDoubleArrow: "rightwards_double_arrow",

	BraceLeft:     "brace_left",
	BraceRight:    "brace_right",
	ParenLeft:     "paren_left",
	ParenRight:    "paren_right",
	BigParenLeft:  "big_paren_left",
	BigParenRight: "big_paren_right",

	Dot:        "dot",
	Comma:      "comma",
	Apostrophe: "apostrophe",
	Semicolon:  "semicolon",
	Colon:      "colon",

	Exclamation: "exclamation",
	Question:    "question",

	Dollar: "dollar",
	At:     "at",

	KeywordAuto:   "keyword_auto",
	KeywordVoid:   "keyword_void",
	KeywordBool:   "keyword_bool",
	KeywordChar:   "keyword_char",
	KeywordChar16: "keyword_char16",
	KeywordChar32: "keyword_char32",

	KeywordI8:  "keyword_i8",
	KeywordI16: "keyword_i16",
	KeywordI32: "keyword_i32",
	KeywordI64: "keyword_i64",
	KeywordU8:  "keyword_u8",
	KeywordU16: "keyword_u16",
	KeywordU32: "keyword_u32",
	KeywordU64: "keyword_u64",

	KeywordLet:   "keyword_let",
	KeywordImmut: "keyword_immut",
	KeywordMut:   "keyword_mut",
	KeywordConst: "keyword_const",

	KeywordFunc:      "keyword_func",
	KeywordClass:     "keyword_class",
	KeywordUnion:     "keyword_union",
	KeywordModule:    "keyword_module",
	KeywordDomain:    "keyword_domain",
	KeywordInline:    "keyword_inline",
	KeywordEnum:      "keyword_enum",
	KeywordPublic:    "keyword_public",
	KeywordInternal:  "keyword_internal",
	KeywordProtected: "keyword_protected",
	KeywordPrivate:   "keyword_private",
	KeywordUse:       "keyword_use",
	KeywordAs:        "keyword_as",
	KeywordDefault:   "keyword_default",
	KeywordMacro:     "keyword_macro",
	KeywordPanic:     "keyword_panic",

	KeywordFor:      "keyword_for",
	KeywordDo:       "keyword_do",
	KeywordWhile:    "keyword_while",
	KeywordMatch:    "keyword_match",
	KeywordIf:       "keyword_if",
	KeywordElse:     "keyword_else",
	KeywordGoto:     "keyword_goto",
	KeywordBreak:    "keyword_break",
	KeywordContinue: "keyword_continue",
	KeywordReturn:   "keyword_return",

	KeywordExtern:   "keyword_extern",
	KeywordTemplate: "keyword_template",
	KeywordType:     "keyword_type",
	KeywordConcept:  "keyword_concept",
	KeywordUnsafe:   "keyword_unsafe",

	KeywordVirtual:  "keyword_virtual",
	KeywordAbstract: "keyword_abstract",
	KeywordOpen:     "keyword_open",
	KeywordThis:     "keyword_this",
	KeywordSuper:    "keyword_super",
	KeywordStatic:   "keyword_static",

	KeywordAsync: "keyword_async",
	KeywordAwait: "keyword_await",

	KeywordBit:     "keyword_bit",
	KeywordNew:     "keyword_new",
	KeywordDelete:  "keyword_delete",
	KeywordNullptr: "keyword_nullptr",

	KeywordStaticCast:      "keyword_static_cast",
	KeywordDynamicCast:     "keyword_dynamic_cast",
	KeywordConstCast:       "keyword_const_cast",
	KeywordReinterpretCast: "keyword_reinterpret_cast",
	KeywordIs:              "keyword_is",
	KeywordTypeid:          "keyword_typeid",

	KeywordStaticAssert: "keyword_static_assert",

	KeywordTrue:  "keyword_true",
	KeywordFalse: "keyword_false",
}

// String returns the kind's own spelling, e.g. "keyword_auto".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps every reserved word to its keyword kind.
var Keywords = map[string]Kind{
	"auto": KeywordAuto, "void": KeywordVoid, "bool": KeywordBool,
	"char": KeywordChar, "char16": KeywordChar16, "char32": KeywordChar32,
	"i8": KeywordI8, "i16": KeywordI16, "i32": KeywordI32, "i64": KeywordI64,
	"u8": KeywordU8, "u16": KeywordU16, "u32": KeywordU32, "u64": KeywordU64,
	"let": KeywordLet, "immut": KeywordImmut, "mut": KeywordMut, "const": KeywordConst,
	"func": KeywordFunc, "class": KeywordClass, "union": KeywordUnion,
	"module": KeywordModule, "domain": KeywordDomain, "inline": KeywordInline,
	"enum": KeywordEnum, "public": KeywordPublic, "internal": KeywordInternal,
	"protected": KeywordProtected, "private": KeywordPrivate, "use": KeywordUse,
	"as": KeywordAs, "default": KeywordDefault, "macro": KeywordMacro, "panic": KeywordPanic,
	"for": KeywordFor, "do": KeywordDo, "while": KeywordWhile, "match": KeywordMatch,
	"if": KeywordIf, "else": KeywordElse, "goto": KeywordGoto, "break": KeywordBreak,
	"continue": KeywordContinue, "return": KeywordReturn,
	"extern": KeywordExtern, "template": KeywordTemplate, "type": KeywordType,
	"concept": KeywordConcept, "unsafe": KeywordUnsafe,
	"virtual": KeywordVirtual, "abstract": KeywordAbstract, "open": KeywordOpen,
	"this": KeywordThis, "super": KeywordSuper, "static": KeywordStatic,
	"async": KeywordAsync, "await": KeywordAwait,
	"bit": KeywordBit, "new": KeywordNew, "delete": KeywordDelete, "nullptr": KeywordNullptr,
	"static_cast": KeywordStaticCast, "dynamic_cast": KeywordDynamicCast,
	"const_cast": KeywordConstCast, "reinterpret_cast": KeywordReinterpretCast,
	"is": KeywordIs, "typeid": KeywordTypeid,
	"static_assert": KeywordStaticAssert,
	"true":          KeywordTrue, "false": KeywordFalse,
}

// IsNumeric reports whether k is one of the numeric literal kinds.
func (k Kind) IsNumeric() bool {
	switch k {
	case IntegerBin, IntegerOct, IntegerDec, IntegerHex, Decimal:
		return true
	default:
		return false
	}
}

// Token is a single lexical element, holding borrowed views into the
// Source's buffers. The Source that produced a Token must outlive it.
type Token struct {
	Kind Kind

	// Line is 1-based; Column is the 0-based byte offset of Data within
	// LineData.
	Line   int
	Column int

	// Data is the token's own text, a sub-slice of LineData (or, for the
	// Whitespace sentinel, an empty slice).
	Data []byte

	// LineData is the full physical line the token was found on, retained
	// for diagnostic excerpts.
	LineData []byte

	// PrefixLiteral and PostfixLiteral hold, respectively, leading and
	// trailing non-digit text attached to a numeric literal (currently only
	// PostfixLiteral is produced; PrefixLiteral is reserved for symmetry
	// with the borrowed-view design of the rest of the token model).
	PrefixLiteral  []byte
	PostfixLiteral []byte
}

// IsWhitespace reports whether t is the sub-pass-A whitespace sentinel.
func (t Token) IsWhitespace() bool {
	return t.Kind == Whitespace
}
