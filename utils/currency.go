package utils

import "strconv"

// FormatRupiah groups thousands with dots: 71500 -> "71.500".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)
	n := len(str)
	if n <= 3 {
		return sign + str
	}

	result := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			result = append(result, '.')
		}
		result = append(result, str[i])
	}
	return sign + string(result)
}
