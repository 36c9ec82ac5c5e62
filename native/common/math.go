package common

import "github.com/holiman/uint256"

// MulDiv computes a*b/div with a 256-bit intermediate, flooring the result.
func MulDiv(a, b, div uint64) (uint64, error) {
	if div == 0 {
		return 0, ErrDivideByZero
	}
	product := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	quotient := product.Div(product, uint256.NewInt(div))
	if !quotient.IsUint64() {
		return 0, ErrArithmeticOverflow
	}
	return quotient.Uint64(), nil
}

// MulDivCeil computes ceil(a*b/div) with a 256-bit intermediate.
func MulDivCeil(a, b, div uint64) (uint64, error) {
	if div == 0 {
		return 0, ErrDivideByZero
	}
	product := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	divisor := uint256.NewInt(div)
	quotient, rem := new(uint256.Int).DivMod(product, divisor, new(uint256.Int))
	if !rem.IsZero() {
		quotient.AddUint64(quotient, 1)
	}
	if !quotient.IsUint64() {
		return 0, ErrArithmeticOverflow
	}
	return quotient.Uint64(), nil
}

// CheckedAdd adds two amounts, failing on uint64 overflow.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

// CheckedSub subtracts b from a, failing when b exceeds a.
func CheckedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrArithmeticOverflow
	}
	return a - b, nil
}

// CheckedMul multiplies two amounts, failing on uint64 overflow.
func CheckedMul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/a != b {
		return 0, ErrArithmeticOverflow
	}
	return product, nil
}

// CeilDiv computes ceil(a/div).
func CeilDiv(a, div uint64) (uint64, error) {
	if div == 0 {
		return 0, ErrDivideByZero
	}
	q := a / div
	if a%div != 0 {
		q++
	}
	return q, nil
}
