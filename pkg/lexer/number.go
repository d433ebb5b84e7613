package lexer

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberType is the C type of a numeric literal, selected by its form and
// suffix.
type NumberType int

const (
	NumberInt NumberType = iota
	NumberLong
	NumberLongLong
	NumberUInt
	NumberULong
	NumberULongLong
	NumberFloat
	NumberDouble
	NumberLongDouble
)

var numberTypeNames = map[NumberType]string{
	NumberInt:        "int",
	NumberLong:       "long",
	NumberLongLong:   "long long",
	NumberUInt:       "unsigned int",
	NumberULong:      "unsigned long",
	NumberULongLong:  "unsigned long long",
	NumberFloat:      "float",
	NumberDouble:     "double",
	NumberLongDouble: "long double",
}

func (nt NumberType) String() string {
	if name, ok := numberTypeNames[nt]; ok {
		return name
	}
	return fmt.Sprintf("NumberType(%d)", int(nt))
}

// IsInteger reports whether nt is one of the six integer subtypes.
func (nt NumberType) IsInteger() bool {
	return nt <= NumberULongLong
}

// IsUnsigned reports whether nt is an unsigned integer subtype.
func (nt NumberType) IsUnsigned() bool {
	return nt >= NumberUInt && nt <= NumberULongLong
}

// Number is the decoded value of a numeric literal. The dynamic type of the
// held value follows Type: int32, int64, int64, uint32, uint64, uint64,
// float32, float64 and decimal.Decimal respectively.
type Number struct {
	Type NumberType
	Base int
	val  any
}

// Value returns the decoded value in its natural Go type.
func (n *Number) Value() any {
	return n.val
}

// Int64 returns integer values as int64. Unsigned 64-bit values keep their
// bit pattern; floating values are truncated.
func (n *Number) Int64() int64 {
	switch v := n.val.(type) {
	case int32:
		return int64(v)
	case int64:
		return v
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	case decimal.Decimal:
		return v.IntPart()
	}
	return 0
}

// Uint64 returns the value as uint64.
func (n *Number) Uint64() uint64 {
	if v, ok := n.val.(uint64); ok {
		return v
	}
	return uint64(n.Int64())
}

// Float64 returns the value as float64. Long double values are rounded.
func (n *Number) Float64() float64 {
	switch v := n.val.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case decimal.Decimal:
		f, _ := v.Float64()
		return f
	case uint64:
		return float64(v)
	}
	return float64(n.Int64())
}

// LongDouble returns the value as a decimal.
func (n *Number) LongDouble() decimal.Decimal {
	switch v := n.val.(type) {
	case decimal.Decimal:
		return v
	case float32, float64:
		return decimal.NewFromFloat(n.Float64())
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
	}
	return decimal.NewFromInt(n.Int64())
}

func (n *Number) String() string {
	switch v := n.val.(type) {
	case decimal.Decimal:
		return v.String()
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprint(n.val)
}

// NewInteger folds digits in base into a value of type nt. Digits must not
// carry a base prefix. The fold wraps silently when the literal does not fit
// in the subtype.
func NewInteger(digits string, base int, nt NumberType) *Number {
	var acc uint64
	for i := 0; i < len(digits); i++ {
		d, ok := digitValue(int(digits[i]), base)
		if !ok {
			break
		}
		acc = acc*uint64(base) + uint64(d)
	}

	n := &Number{Type: nt, Base: base}
	switch nt {
	case NumberInt:
		n.val = int32(uint32(acc))
	case NumberLong, NumberLongLong:
		n.val = int64(acc)
	case NumberUInt:
		n.val = uint32(acc)
	default:
		n.val = acc
	}
	return n
}

// NewFloat decodes a floating literal body (no type suffix) of type nt.
// Hexadecimal bodies carry their 0x prefix and binary exponent.
func NewFloat(body string, base int, nt NumberType) (*Number, error) {
	n := &Number{Type: nt, Base: base}

	if nt == NumberLongDouble && base == 10 {
		d, err := decimal.NewFromString(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedNumber, body)
		}
		n.val = d
		return n, nil
	}

	bits := 64
	if nt == NumberFloat {
		bits = 32
	}
	f, err := strconv.ParseFloat(body, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedNumber, body)
	}

	switch nt {
	case NumberFloat:
		n.val = float32(f)
	case NumberLongDouble:
		n.val = decimal.NewFromFloat(f)
	default:
		n.val = f
	}
	return n, nil
}

// integerSuffix maps a written integer suffix to its subtype.
func integerSuffix(suffix string) NumberType {
	s := strings.ToLower(suffix)
	unsigned := strings.HasPrefix(s, "u")
	switch strings.TrimPrefix(s, "u") {
	case "ll":
		if unsigned {
			return NumberULongLong
		}
		return NumberLongLong
	case "l":
		if unsigned {
			return NumberULong
		}
		return NumberLong
	}
	if unsigned {
		return NumberUInt
	}
	return NumberInt
}

func digitValue(c, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = c - '0'
	case c >= 'a' && c <= 'f':
		d = c - 'a' + 10
	case c >= 'A' && c <= 'F':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	return d, d < base
}
