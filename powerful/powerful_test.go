package powerful_test

import (
	"errors"
	"testing"

	. "github.com/import-this/lynx/powerful"
)

var powerfulNumbers = []uint64{
	// https://oeis.org/A001694
	1, 4, 8, 9, 16, 25, 27, 32, 36, 49, 64, 72, 81, 100, 108, 121, 125, 128,
	144, 169, 196, 200, 216, 225, 243, 256, 288, 289, 324, 343, 361, 392,
	400, 432, 441, 484, 500, 512, 529, 576, 625, 648, 675, 676, 729, 784,
	800, 841, 864, 900, 961, 968, 972, 1000,
	// Larger powerful numbers.
	1024, 1521, 2312, 2744, 2916, 3087, 4900, 5408, 8000,
	10976, 13068, 13824, 15876, 17956, 18000, 19600, 19881, 21600, 25088,
	26244, 27556, 30375,
	// Powerful by construction.
	2 * 2, 3 * 3, 5 * 5, 7 * 7, 101 * 101,
	2 * 2 * 3 * 3 * 5 * 5,
	2 * 2 * 3 * 3 * 5 * 5 * 7 * 7,
	2 * 2 * 2, 3 * 3 * 3, 5 * 5 * 5, 7 * 7 * 7, 101 * 101 * 101,
	2 * 2 * 2 * 3 * 3 * 7 * 7,
	2 * 2 * 2 * 3 * 3 * 7 * 7 * 11 * 11,
	2 * 2 * 2 * 2 * 2,
	3 * 3 * 3 * 3 * 3,
	5 * 5 * 5 * 5 * 5,
	11 * 11, 13 * 13, 17 * 17,
	3 * 3 * 7 * 7 * 13 * 13,
	227 * 227, 229 * 229,
}

var notPowerfulNumbers = []uint64{
	// Primes - https://oeis.org/A000040
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271,
	// Composites with at least one prime factor of exponent 1.
	279, 1111,
	2 * 3 * 5 * 7 * 11,
	2 * 3 * 5 * 7 * 11 * 11,
	2 * 2 * 2 * 3 * 3 * 7 * 11 * 11,
	2 * 2 * 2 * 3 * 3 * 7 * 7 * 11,
	3 * 3 * 7 * 7 * 13 * 13 * 19,
	43 * 43 * 47 * 83 * 83,
	229 * 229 * 233,
}

func TestPowerfulNumbers(t *testing.T) {
	for _, n := range powerfulNumbers {
		got, err := IsPowerful(n)
		if err != nil {
			t.Fatalf("IsPowerful(%d): unexpected error: %v", n, err)
		}
		if !got {
			t.Errorf("expected %d to be powerful", n)
		}
	}
}

func TestNotPowerfulNumbers(t *testing.T) {
	for _, n := range notPowerfulNumbers {
		got, err := IsPowerful(n)
		if err != nil {
			t.Fatalf("IsPowerful(%d): unexpected error: %v", n, err)
		}
		if got {
			t.Errorf("expected %d not to be powerful", n)
		}
	}
}

func TestZeroIsInvalid(t *testing.T) {
	got, err := IsPowerful(0)
	if !errors.Is(err, ErrZero) {
		t.Fatalf("expected ErrZero for input 0, got %v", err)
	}
	if got {
		t.Error("expected false result alongside the error")
	}
}
