package utils

import (
	"math"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		500:     "500",
		6500:    "6.500",
		71500:   "71.500",
		1000000: "1.000.000",
		-81500:  "-81.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatRupiah(in), "amount %d", in)
	}
}

func TestGenerateOrderID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9A-Z]{5}-[0-9A-Z]{5}$`)
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateOrderID(r))
	}
}

func TestGenerateOrderID_Deterministic(t *testing.T) {
	a := GenerateOrderID(rand.New(rand.NewSource(7)))
	b := GenerateOrderID(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "s3cret!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyPassword("", "s3cret!")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("k", time.Hour, 12, "a@b.co", "customer")
	require.NoError(t, err)

	claims, err := ValidateToken("k", token)
	require.NoError(t, err)
	assert.Equal(t, 12, claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	_, err = ValidateToken("other", token)
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	token, err := GenerateToken("k", -time.Minute, 1, "a@b.co", "customer")
	require.NoError(t, err)

	_, err = ValidateToken("k", token)
	assert.Error(t, err)
}

func TestPageOffset(t *testing.T) {
	cases := []struct {
		name               string
		page, limit, total int
		want               int
	}{
		{"first page", 1, 4, 10, 0},
		{"middle page", 2, 4, 10, 4},
		{"last partial page", 3, 4, 10, 8},
		{"past the end", 4, 4, 10, 10},
		{"empty", 1, 4, 0, 0},
		{"zero page", 0, 4, 10, 0},
		{"huge page", math.MaxInt, 4, 10, 10},
		{"huge page and limit", math.MaxInt, 100, math.MaxInt - 1, math.MaxInt - 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageOffset(tc.page, tc.limit, tc.total))
		})
	}

	assert.Equal(t, 3, TotalPages(10, 4))
	assert.Equal(t, 0, TotalPages(0, 4))
}
