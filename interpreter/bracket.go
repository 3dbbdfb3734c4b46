package interpreter

// matchBracket finds the ] matching the [ at open, scanning no further
// than end. It returns the offset of the closing bracket.
func matchBracket(code string, open int, end int) (closing int, err error) {
	depth := 0
	for n := open + 1; n < end; n++ {
		switch code[n] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				closing = n
				return
			}
			depth--
		}
	}

	err = &ErrFault{Offset: open, Symbol: '[', Err: ErrBracketUnmatched}
	return
}

// Validate checks that every [ in code has a matching ], and that there
// is no ] without an opening [.
func Validate(code string) (err error) {
	var opens []int
	for n := 0; n < len(code); n++ {
		switch code[n] {
		case '[':
			opens = append(opens, n)
		case ']':
			if len(opens) == 0 {
				err = &ErrFault{Offset: n, Symbol: ']', Err: ErrBracketUnmatched}
				return
			}
			opens = opens[:len(opens)-1]
		}
	}

	if len(opens) != 0 {
		// Report the outermost unmatched bracket.
		err = &ErrFault{Offset: opens[0], Symbol: '[', Err: ErrBracketUnmatched}
	}

	return
}
