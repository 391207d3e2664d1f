package util

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern is the plain decimal notation a CSV number may use. Go
// literal forms such as 1_000, 0x1p4 or Inf are not numbers here.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var missingMarkers = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"null": {}, "NULL": {}, "None": {}, "#N/A": {}, "#NA": {}, "#N/A N/A": {}, "<NA>": {},
	"1.#IND": {}, "1.#QNAN": {}, "-1.#IND": {}, "-1.#QNAN": {},
}

// IsMissing matches the markers exactly; " NA" is text.
func IsMissing(input string) bool {
	_, ok := missingMarkers[input]
	return ok
}

func LooksNumeric(input string) bool {
	s := strings.TrimSpace(input)
	if !decimalPattern.MatchString(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// CanonicalNumber keeps a spelling made only of digits, '.' and '-' and
// rewrites any other one ("+0.3", "1e3") in plain decimal form.
func CanonicalNumber(input string) string {
	s := strings.TrimSpace(input)
	if KeepRunes(s, IsNumericRune) == s {
		return s
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
