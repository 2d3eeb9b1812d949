package utils

import (
	"math/rand"
	"strings"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID returns a display code like "#7K2QD-M9X0A".
func GenerateOrderID(r *rand.Rand) string {
	var b strings.Builder
	b.WriteByte('#')
	writeGroup(&b, r, 5)
	b.WriteByte('-')
	writeGroup(&b, r, 5)
	return b.String()
}

func writeGroup(b *strings.Builder, r *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(base36[r.Intn(len(base36))])
	}
}
