package common

import (
	"fmt"
	"math/big"
)

// DecimalToUint64 converts a decimal string, as Postgres returns NUMERIC
// values, to a uint64. It fails unless the value is exactly representable:
// no fractional part, not negative, not above math.MaxUint64. Values like
// "5.00" are accepted since they denote an integer.
func DecimalToUint64(value string) (uint64, error) {
	rat, ok := new(big.Rat).SetString(value)
	if !ok {
		return 0, fmt.Errorf("failed to parse numeric value: %s", value)
	}
	if !rat.IsInt() {
		return 0, fmt.Errorf("numeric value %s has a fractional part", value)
	}
	num := rat.Num()
	if num.Sign() < 0 || !num.IsUint64() {
		return 0, fmt.Errorf("numeric value %s does not fit in a uint64", value)
	}
	return num.Uint64(), nil
}
