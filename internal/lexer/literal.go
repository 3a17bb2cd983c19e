package lexer

import (
	"math/big"
	"strings"
)

// StringValue снимает кавычки и сворачивает "" в ".
func StringValue(text string) string {
	if len(text) < 2 {
		return text
	}
	return strings.ReplaceAll(text[1:len(text)-1], `""`, `"`)
}

// CharValue возвращает символ из 'x'.
func CharValue(text string) string {
	if len(text) < 3 {
		return text
	}
	return text[1 : len(text)-1]
}

// IntValue вычисляет значение целого литерала (десятичного или с основанием)
// и возвращает его десятичную запись. ok=false для текста, который лексер не принял бы.
func IntValue(text string) (string, bool) {
	s := strings.ToLower(strings.ReplaceAll(text, "_", ""))
	exp := int64(0)
	mant := s
	base := int64(10)

	if i := strings.IndexByte(s, '#'); i >= 0 {
		j := strings.LastIndexByte(s, '#')
		if j <= i {
			return "", false
		}
		b, ok := new(big.Int).SetString(s[:i], 10)
		if !ok || !b.IsInt64() {
			return "", false
		}
		base = b.Int64()
		mant = s[i+1 : j]
		if rest := s[j+1:]; rest != "" {
			if rest[0] != 'e' {
				return "", false
			}
			e, ok := parseExp(rest[1:])
			if !ok {
				return "", false
			}
			exp = e
		}
	} else if i := strings.IndexByte(s, 'e'); i >= 0 {
		e, ok := parseExp(s[i+1:])
		if !ok {
			return "", false
		}
		exp = e
		mant = s[:i]
	}
	if exp < 0 || exp > 4096 || base < 2 || base > 16 {
		return "", false
	}

	v, ok := new(big.Int).SetString(mant, int(base))
	if !ok {
		return "", false
	}
	if exp > 0 {
		scale := new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
		v.Mul(v, scale)
	}
	return v.String(), true
}

func parseExp(s string) (int64, bool) {
	s = strings.TrimPrefix(s, "+")
	e, ok := new(big.Int).SetString(s, 10)
	if !ok || !e.IsInt64() {
		return 0, false
	}
	return e.Int64(), true
}

// RealValue нормализует вещественный литерал: без '_', в нижнем регистре.
func RealValue(text string) string {
	return strings.ToLower(strings.ReplaceAll(text, "_", ""))
}
