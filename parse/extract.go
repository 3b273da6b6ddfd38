package parse

import "fmt"

// Extract parses data with the named backend and returns its metadata handle.
// An empty name selects DefaultParser.
//
// Extract has no side effects. Any failure, including a panic raised by the
// backend on hostile input, is returned as a *ParseError.
func Extract(data []byte, parserName string) (ParsedFont, error) {
	if parserName == "" {
		parserName = DefaultParser
	}
	return ExtractWith(Get(parserName), parserName, data)
}

// ExtractWith is like Extract but uses p directly. name is only used to
// label errors.
func ExtractWith(p FontParser, name string, data []byte) (parsed ParsedFont, err error) {
	if len(data) == 0 {
		return nil, &ParseError{Parser: name, Err: ErrEmptyFontData}
	}

	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = &ParseError{Parser: name, Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	parsed, err = p.Parse(data)
	if err != nil {
		return nil, &ParseError{Parser: name, Err: err}
	}
	if parsed == nil {
		return nil, &ParseError{Parser: name, Err: fmt.Errorf("parser returned no font")}
	}
	return parsed, nil
}
