// Package format provides the display conventions shared across the
// explanation engine: address shortening and decimal scaling of raw
// integer amounts with magnitude suffixes.
package format

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the decimal count of the chain's native asset. Unknown
// tokens fall back to the same scale.
const NativeDecimals = 18

// defaultShortenChars is the number of trailing hex characters kept when
// shortening an address.
const defaultShortenChars = 4

// ShortenAddress shortens a 0x-prefixed hex address to the conventional
// first-6-plus-last-4 display form, e.g. "0x1234...abcd". Strings already
// shorter than the target width are returned unchanged; an empty input
// renders as "Unknown".
func ShortenAddress(address string) string {
	return ShortenAddressTo(address, defaultShortenChars)
}

// ShortenAddressTo shortens an address keeping chars+2 leading and chars
// trailing characters around a literal "..." separator.
func ShortenAddressTo(address string, chars int) string {
	if address == "" {
		return "Unknown"
	}
	if len(address) <= chars*2+2 {
		return address
	}
	return address[:chars+2] + "..." + address[len(address)-chars:]
}

// FormatNativeAmount formats a raw native-asset amount (wei scale, signed)
// for display. Native amounts keep four decimal places up to a thousand
// units, then collapse to K/M magnitude suffixes.
func FormatNativeAmount(amount *big.Int) string {
	return formatScaled(amount, NativeDecimals, 4)
}

// FormatTokenAmount formats a raw token amount (signed) scaled by the
// token's decimal count. Token amounts keep two decimal places between one
// and a thousand units.
func FormatTokenAmount(amount *big.Int, decimals int32) string {
	return formatScaled(amount, decimals, 2)
}

// FormatGwei renders a wei-scale gas price in gwei. Prices below a
// milligwei collapse to "< 0.001"; below one gwei three decimal places are
// kept, above it one.
func FormatGwei(wei *big.Int) string {
	gwei := decimal.NewFromBigInt(wei, -9)
	switch {
	case gwei.LessThan(decimal.RequireFromString("0.001")):
		return "< 0.001"
	case gwei.LessThan(decimal.NewFromInt(1)):
		return gwei.StringFixed(3)
	default:
		return gwei.StringFixed(1)
	}
}

func formatScaled(amount *big.Int, decimals int32, midPrecision int32) string {
	if amount == nil {
		return "0"
	}
	v := decimal.NewFromBigInt(amount, -decimals)
	if v.IsZero() {
		return "0"
	}

	abs := v.Abs()
	switch {
	case abs.LessThan(decimal.RequireFromString("0.0001")):
		if v.Sign() < 0 {
			return "> -0.0001"
		}
		return "< 0.0001"
	case abs.LessThan(decimal.NewFromInt(1)):
		return v.StringFixed(4)
	case abs.LessThan(decimal.NewFromInt(1000)):
		return v.StringFixed(midPrecision)
	case abs.LessThan(decimal.NewFromInt(1000000)):
		return v.Div(decimal.NewFromInt(1000)).StringFixed(2) + "K"
	default:
		return v.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	}
}
