/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package tritutils

import (
	"fmt"
	"math"
)

func checkRadix(radix int) error {
	if radix < 2 || radix > MaxRadix {
		return fmt.Errorf("Radix (%d) out of range: supported radix is 2..%d", radix, MaxRadix)
	}
	return nil
}

// Num constructs an int from an array of uint8, where each element represents
// one digit in the given radix.  The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1.
func Num(s []uint8, radix int) (int, error) {
	var x int
	if err := checkRadix(radix); err != nil {
		return x, err
	}

	maxv := radix - 1
	for i, v := range s {
		if int(v) > maxv {
			return x, fmt.Errorf("Value at %d out of range: got %d - expected 0..%d", i, v, maxv)
		}
		if x > (math.MaxInt-int(v))/radix {
			return x, fmt.Errorf("Value overflows int after %d digits", i)
		}
		x = x*radix + int(v)
	}
	return x, nil
}

// Str populates an array of uint8 with digits representing x in the specified radix.
// The array is arranged with the most significant digit in element 0.
// The array is built from x from the least significant digit upwards.  If the supplied
// array is too short an error is returned alongside the truncated digits.
func Str(x int, r []uint8, radix int) ([]uint8, error) {
	if err := checkRadix(radix); err != nil {
		return r, err
	}
	if x < 0 {
		return r, fmt.Errorf("negative value %d cannot be expressed in radix %d", x, radix)
	}
	m := len(r)
	v := x
	for i := range r {
		r[m-i-1] = uint8(v % radix)
		v /= radix
	}
	if v != 0 {
		return r, fmt.Errorf("destination array too small: %d remains after conversion", v)
	}
	return r, nil
}

// AddMod adds b to a digit by digit, modulo radix, without carry.
// Both arrays must have the same length; the result is a fresh array.
func AddMod(a, b []uint8, radix int) ([]uint8, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("length mismatch: %d and %d digits", len(a), len(b))
	}
	ret := make([]uint8, len(a))
	for i := range a {
		if int(a[i]) >= radix || int(b[i]) >= radix {
			return nil, fmt.Errorf("Value at %d out of range: expected 0..%d", i, radix-1)
		}
		ret[i] = uint8((int(a[i]) + int(b[i])) % radix)
	}
	return ret, nil
}
