package room

import (
	"math"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 50

// MaxCapacity is the largest value the capacity column can hold.
const MaxCapacity = math.MaxInt32

type Name struct {
	value string
}

// NewName trims surrounding whitespace; comparison stays case-sensitive.
func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Capacity struct {
	value int
}

func NewCapacity(v int) (Capacity, error) {
	if v <= 0 {
		return Capacity{}, ErrNonPositiveCapacity
	}
	if v > MaxCapacity {
		return Capacity{}, ErrCapacityTooLarge
	}
	return Capacity{value: v}, nil
}

func (c Capacity) Value() int { return c.value }
