package utils

import (
	"encoding/hex"
	"strconv"
)

func BytesToHex(bytes []byte) string {
	return hex.EncodeToString(bytes)
}

func Int64ToString(i int64) string {
	return strconv.FormatInt(i, 10)
}

// Float64ToString renders the shortest decimal that parses back to f, e.g. 100 -> "100", 0.5 -> "0.5".
func Float64ToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
