package dto

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// TopUpRequest represents the API request for crediting the caller's balance.
// TopUpAmount accepts a JSON number or a numeric string.
type TopUpRequest struct {
	TopUpAmount any `json:"top_up_amount" binding:"int_gte=0"`
}

// Amount returns the requested amount, zero when it is not a whole number
func (r *TopUpRequest) Amount() int64 {
	n, _ := WholeNumber(r.TopUpAmount)
	return n
}

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// WholeNumber converts a decoded JSON value or a query string to an integer.
// Values outside the int64 range saturate, so the ledger reports them as too large.
func WholeNumber(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		if n >= math.MaxInt64 {
			return math.MaxInt64, true
		}
		if n <= math.MinInt64 {
			return math.MinInt64, true
		}
		return int64(n), true
	case json.Number:
		return WholeNumber(string(n))
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err == nil {
			return parsed, true
		}
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(n, "-") {
				return math.MinInt64, true
			}
			return math.MaxInt64, true
		}
		return 0, false
	default:
		return 0, false
	}
}
