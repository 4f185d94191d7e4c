package mathutil

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrNotInteger is returned by ParseInt for input that is not an integer.
	ErrNotInteger = errors.New("input must be an integer")
	// ErrNotPositive is returned by Numbers when n < 1.
	ErrNotPositive = errors.New("input must be a positive integer")
	// ErrNegative is returned by Factorial when n < 0.
	ErrNegative = errors.New("factorial is not defined for negative numbers")
)

// Numbers returns the ordered sequence [1, 2, ..., n].
func Numbers(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNotPositive, n)
	}
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums, nil
}

// Factorial returns n! for n >= 0 as an arbitrary-precision integer.
// 0! and 1! are 1 by convention.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegative, n)
	}
	result := big.NewInt(1)
	if n == 0 || n == 1 {
		return result, nil
	}
	nums, err := Numbers(n)
	if err != nil {
		return nil, err
	}
	m := new(big.Int)
	for _, num := range nums {
		result.Mul(result, m.SetInt64(int64(num)))
	}
	return result, nil
}

// ParseInt converts untyped string input (CLI args, URL params) to an
// integer. Non-integer text such as "3.5" or "abc" returns ErrNotInteger.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrNotInteger, s)
	}
	return n, nil
}
