// Package powerful tests numbers for powerfulness.
//
// A powerful number is a positive integer whose every prime factor appears
// with exponent at least 2. See https://oeis.org/A001694. The test uses
// naive trial division, so it is slow for very large inputs.
package powerful

import "errors"

// ErrZero is returned for the invalid input 0, which is neither powerful
// nor not powerful.
var ErrZero = errors.New("powerful: zero is not a valid input")

// IsPowerful reports whether n is powerful, i.e. whether every prime
// factor of n divides it at least twice. 1 is powerful vacuously. The
// only possible error is ErrZero for n == 0, distinct from both boolean
// outcomes.
//
// Factors of 2 and 3 are stripped first, then candidate divisors of the
// form 6k±1 are tried up to the square root of the remainder. Any factor
// found with exponent exactly 1 proves n is not powerful.
func IsPowerful(n uint64) (bool, error) {
	if n == 0 {
		return false, ErrZero
	}

	exponent := 0
	for n&1 == 0 {
		n >>= 1
		exponent++
	}
	if exponent == 1 {
		return false, nil
	}

	exponent = 0
	for n%3 == 0 {
		n /= 3
		exponent++
	}
	if exponent == 1 {
		return false, nil
	}

	for divisor := uint64(5); divisor*divisor <= n; divisor += 4 {
		exponent = 0
		for n%divisor == 0 {
			n /= divisor
			exponent++
		}
		if exponent == 1 {
			return false, nil
		}

		// 6k-1 done; add 2 here so the loop increment lands on 6(k+1)-1.
		divisor += 2
		exponent = 0
		for n%divisor == 0 {
			n /= divisor
			exponent++
		}
		if exponent == 1 {
			return false, nil
		}
	}

	// Any remainder greater than 1 is a prime with exponent 1.
	return n == 1, nil
}
