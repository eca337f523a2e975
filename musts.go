package number

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}

// MustParsePrefix is like [ParsePrefix] but panics if s does not start
// with a number.
func MustParsePrefix(s string) (Number, string) {
	n, rest, err := ParsePrefix(s)
	if err != nil {
		panic(fmt.Sprintf("MustParsePrefix(%q) failed: %v", s, err))
	}
	return n, rest
}
