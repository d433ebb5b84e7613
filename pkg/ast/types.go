package ast

import (
	"strings"

	"smash/pkg/lexer"
)

// TypeKind is the basic shape of a C type
type TypeKind int

const (
	TypeVoid TypeKind = iota
	TypeBool
	TypeChar
	TypeShort
	TypeInt
	TypeLong
	TypeLongLong
	TypeUChar
	TypeUShort
	TypeUInt
	TypeULong
	TypeULongLong
	TypeFloat
	TypeDouble
	TypeLongDouble
	TypeStruct
	TypeEnum
	TypeUnion
	TypePointer
)

var typeKindNames = map[TypeKind]string{
	TypeVoid:       "void",
	TypeBool:       "_Bool",
	TypeChar:       "char",
	TypeShort:      "short",
	TypeInt:        "int",
	TypeLong:       "long",
	TypeLongLong:   "long long",
	TypeUChar:      "unsigned char",
	TypeUShort:     "unsigned short",
	TypeUInt:       "unsigned int",
	TypeULong:      "unsigned long",
	TypeULongLong:  "unsigned long long",
	TypeFloat:      "float",
	TypeDouble:     "double",
	TypeLongDouble: "long double",
	TypeStruct:     "struct",
	TypeEnum:       "enum",
	TypeUnion:      "union",
	TypePointer:    "pointer",
}

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Type describes the C type attached to a node. Only literals and
// declarators get one during parsing.
type Type struct {
	Kind    TypeKind
	Members []*Type // struct/union members
	Ptr     *Type   // pointee for TypePointer

	IsStatic   bool
	IsRegister bool
	IsConst    bool
	IsRestrict bool
	IsVolatile bool
}

// NewType creates an unqualified type of the given kind
func NewType(kind TypeKind) *Type {
	return &Type{Kind: kind}
}

// PointerTo returns a pointer type to t
func PointerTo(t *Type) *Type {
	return &Type{Kind: TypePointer, Ptr: t}
}

// TypeOfNumber maps a literal subtype to its C type
func TypeOfNumber(nt lexer.NumberType) *Type {
	switch nt {
	case lexer.NumberLong:
		return NewType(TypeLong)
	case lexer.NumberLongLong:
		return NewType(TypeLongLong)
	case lexer.NumberUInt:
		return NewType(TypeUInt)
	case lexer.NumberULong:
		return NewType(TypeULong)
	case lexer.NumberULongLong:
		return NewType(TypeULongLong)
	case lexer.NumberFloat:
		return NewType(TypeFloat)
	case lexer.NumberDouble:
		return NewType(TypeDouble)
	case lexer.NumberLongDouble:
		return NewType(TypeLongDouble)
	}
	return NewType(TypeInt)
}

// IsInteger reports whether t is an integer type
func (t *Type) IsInteger() bool {
	return t != nil && t.Kind >= TypeBool && t.Kind <= TypeULongLong
}

// String renders the type in C declaration order, e.g. "const int" or "char*".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	var sb strings.Builder
	if t.IsStatic {
		sb.WriteString("static ")
	}
	if t.IsRegister {
		sb.WriteString("register ")
	}
	if t.IsConst {
		sb.WriteString("const ")
	}
	if t.IsVolatile {
		sb.WriteString("volatile ")
	}

	if t.Kind == TypePointer {
		sb.WriteString(t.Ptr.String())
		sb.WriteString("*")
		if t.IsRestrict {
			sb.WriteString(" restrict")
		}
		return sb.String()
	}

	sb.WriteString(t.Kind.String())
	return sb.String()
}
