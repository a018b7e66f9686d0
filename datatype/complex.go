// Copyright © 2024 The ELPS authors

package datatype

import (
	"math"
	"strconv"
)

// Complex is a complex number with float64 parts.
type Complex struct {
	Re float64
	Im float64
}

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns the real part of c.
func (c Complex) Real() float64 { return c.Re }

// Imag returns the imaginary part of c.
func (c Complex) Imag() float64 { return c.Im }

// Add returns c + other.
func (c Complex) Add(other Complex) Complex {
	return Complex{Re: c.Re + other.Re, Im: c.Im + other.Im}
}

// Sub returns c - other.
func (c Complex) Sub(other Complex) Complex {
	return Complex{Re: c.Re - other.Re, Im: c.Im - other.Im}
}

// String formats c as "1.2 + 3.3i" or "1 - 2i".
func (c Complex) String() string {
	sign := "+"
	if c.Im < 0 {
		sign = "-"
	}
	return formatFloat(c.Re) + " " + sign + " " + formatFloat(math.Abs(c.Im)) + "i"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
