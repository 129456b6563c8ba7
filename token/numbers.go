package token

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	TrueLiteral  = "True"
	FalseLiteral = "False"
	NoneLiteral  = "None"
)

func FormatBool(b bool) string {
	if b {
		return TrueLiteral
	}
	return FalseLiteral
}

// ParseBool accepts exactly "True" or "False".
func ParseBool(s string) (bool, error) {
	switch s {
	case TrueLiteral:
		return true, nil
	case FalseLiteral:
		return false, nil
	}
	return false, errors.New("expected True or False")
}

func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// ParseInt parses a base 10 integer with an optional leading '-'.
func ParseInt(s string) (int64, error) {
	if strings.HasPrefix(s, "+") {
		return 0, strconv.ErrSyntax
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return i, nil
}

// FormatFloat renders f as Python's repr does: the shortest digits that
// read back to f, in positional notation when the decimal exponent is in
// [-4, 16) and scientific notation otherwise.  Integral values keep a
// trailing ".0".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exps, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(exps)
	decpt := exp + 1

	if decpt <= -4 || decpt > 16 {
		res := digits[:1]
		if len(digits) > 1 {
			res += "." + digits[1:]
		}
		esign := "+"
		if exp < 0 {
			esign = "-"
			exp = -exp
		}
		es := strconv.Itoa(exp)
		if len(es) < 2 {
			es = "0" + es
		}
		return sign + res + "e" + esign + es
	}
	switch {
	case decpt <= 0:
		return sign + "0." + strings.Repeat("0", -decpt) + digits
	case decpt >= len(digits):
		return sign + digits + strings.Repeat("0", decpt-len(digits)) + ".0"
	default:
		return sign + digits[:decpt] + "." + digits[decpt:]
	}
}

// ParseFloat parses decimal float text, inf, infinity and nan in any case.
// Hexadecimal floats are rejected.  Literals out of range saturate to ±Inf
// or 0 instead of failing.
func ParseFloat(s string) (float64, error) {
	if isHex(s) {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if errors.Is(numErr.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, numErr.Err
	}
	return 0, err
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
