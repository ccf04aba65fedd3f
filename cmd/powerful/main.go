// Command powerful reports whether a number is powerful.
//
// Usage:
//
//	powerful <number>
//
// Prints 1 if the number is powerful, 0 if it is not, and -1 for the
// invalid input 0. The argument may be given in decimal, octal (0 prefix)
// or hexadecimal (0x prefix).
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/import-this/lynx/powerful"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %% %s <number>\n", os.Args[0])
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	number, err := strconv.ParseInt(os.Args[1], 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			fmt.Fprintln(os.Stderr, "The number specified is too large.")
		} else {
			usage()
		}
		os.Exit(1)
	}
	if number < 0 {
		fmt.Fprintln(os.Stderr, "The number specified should be positive.")
		os.Exit(1)
	}

	ok, err := powerful.IsPowerful(uint64(number))
	switch {
	case err != nil:
		fmt.Println(-1)
	case ok:
		fmt.Println(1)
	default:
		fmt.Println(0)
	}
}
