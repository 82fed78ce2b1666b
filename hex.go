package byteberry

import "encoding/hex"

// EncodeHex returns the lower-case hex encoding of data: two digits
// per byte, no prefix, in the order the bytes are stored.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex decodes hex text into bytes, in encounter order.
//
// It returns an OddLengthError if the text length is not a multiple
// of two, or an InvalidHexError identifying the first character that
// is not a hex digit. Upper-case digits are accepted on input;
// EncodeHex always emits lower-case.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, NewOddLengthError(len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := hexNibble(s[i])
		if !ok {
			return nil, NewInvalidHexError(s[i], i)
		}
		lo, ok := hexNibble(s[i+1])
		if !ok {
			return nil, NewInvalidHexError(s[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
