// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// StudentName generates a random student name.
func StudentName() string {
	return String(6)
}

// CourseName generates a random course name.
func CourseName() string {
	return String(8)
}

// AdultAge generates a random age of an adult student.
func AdultAge() int32 {
	return int32(Intn(60)) + 18
}

// FeeAmountBetween generates a random fee amount between min and max rounded to 4 decimals.
func FeeAmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}

// Currency generates a random currency code.
func Currency() string {
	currencies := []string{"USD", "EUR", "RMB"}
	return currencies[Intn(len(currencies))]
}

// DateRange generates a course date range starting between 1 and 30 days
// from now and lasting between 7 and 90 days.
func DateRange() (time.Time, time.Time) {
	start := time.Now().UTC().AddDate(0, 0, int(Intn(30))+1)
	end := start.AddDate(0, 0, int(Intn(84))+7)

	return start, end
}
