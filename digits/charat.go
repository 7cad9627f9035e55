package digits

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// The character at the given zero based offset of "123456789101112...".
//
// The string is made of blocks of equal width numbers: 9 one digit numbers, 90
// two digit numbers, 900 three digit numbers and so on. Skipping whole blocks
// finds the width of the number containing the offset, after which the number
// itself and the digit within it fall out of a division.
func CharAt(offset int64) (byte, error) {
	if offset < 0 {
		return 0, errors.Wrapf(ErrNegativeOffset, "got %d", offset)
	}

	width := int64(1)
	count := int64(9)
	first := int64(1)
	for {
		// A block this large can't be skipped by any int64 offset
		if count > math.MaxInt64/width {
			break
		}
		block := width * count
		if offset < block {
			break
		}
		offset -= block
		width++
		count *= 10
		first *= 10
	}

	number := first + offset/width
	return strconv.FormatInt(number, 10)[offset%width], nil
}
