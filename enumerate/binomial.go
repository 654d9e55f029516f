package enumerate

import "github.com/lox/holdem-odds/poker"

// pascal[n][k] = C(n, k) for n, k <= 52, filled row by row.
var pascal = func() [poker.NumberOfCards + 1][poker.NumberOfCards + 1]uint64 {
	var t [poker.NumberOfCards + 1][poker.NumberOfCards + 1]uint64
	for n := range poker.NumberOfCards + 1 {
		t[n][0] = 1
		for k := 1; k <= n; k++ {
			t[n][k] = t[n-1][k-1] + t[n-1][k]
		}
	}
	return t
}()

// Binomial returns C(n, k) for 0 <= n <= 52. It is 0 when k is outside
// [0, n] and for n outside the supported range.
func Binomial(n, k int) uint64 {
	if n < 0 || n > poker.NumberOfCards || k < 0 || k > n {
		return 0
	}
	return pascal[n][k]
}
