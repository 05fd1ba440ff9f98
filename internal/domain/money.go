package domain

import (
	"fmt"
	"strconv"
)

// Paise is an amount of Indian rupees stored in whole paise. Arithmetic
// on ticket prices and fees stays exact; floats never enter the math.
type Paise int64

// RupeesToPaise converts a whole-rupee amount.
func RupeesToPaise(rupees int64) Paise {
	return Paise(rupees * 100)
}

// Rupees reports the amount in rupees, truncating sub-rupee paise.
func (p Paise) Rupees() int64 {
	return int64(p) / 100
}

func (p Paise) String() string {
	return fmt.Sprintf("₹%d.%02d", int64(p)/100, int64(p)%100)
}

// MarshalJSON renders the amount as a rupee number with two decimals,
// e.g. 123900 paise becomes 1239.00.
func (p Paise) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)), nil
}

// UnmarshalJSON accepts a rupee number, with or without decimals.
func (p *Paise) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", string(data), err)
	}
	*p = Paise(f*100 + 0.5)
	return nil
}
