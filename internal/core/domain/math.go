package domain

import (
	"errors"
	"math"
	"math/bits"
)

// BPDenominator is the basis-point scale: 10000 bp = 100%.
const BPDenominator = 10000

// MicroUnit is the fixed-point scale for money and prices (10^-6).
const MicroUnit = 1_000_000

// ErrOverflow is returned by the checked helpers when a result leaves the
// non-negative int64 domain.
var ErrOverflow = errors.New("integer overflow")

// ErrNegativeOperand is returned when a checked helper receives a negative input.
var ErrNegativeOperand = errors.New("negative operand")

// MulDiv returns floor(a*b/d) for non-negative a, b and positive d using a
// 128-bit intermediate, so the product never wraps.
func MulDiv(a, b, d int64) (int64, error) {
	if a < 0 || b < 0 || d < 0 {
		return 0, ErrNegativeOperand
	}
	if d == 0 {
		return 0, errors.New("division by zero")
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(d) {
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, uint64(d))
	if q > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(q), nil
}

// Mul returns a*b for non-negative operands.
func Mul(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrNegativeOperand
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}

// Add returns a+b for non-negative operands.
func Add(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrNegativeOperand
	}
	if a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// ApplyBP returns floor(amount*bp/10000).
func ApplyBP(amount int64, bp int) (int64, error) {
	return MulDiv(amount, int64(bp), BPDenominator)
}
