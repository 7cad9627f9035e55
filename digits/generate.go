// Tools for the string formed by concatenating the positive integers,
// "123456789101112...".
//
// Generate writes a prefix of the string to a file, CharAt computes any single
// character of it directly, and Compare checks one against the other.
package digits

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrInvalidLength  = errors.New("length must be at least 1")
	ErrNegativeOffset = errors.New("offset must not be negative")
)

// Write the integers from 1 up to, but not including, length, with nothing in
// between. A length of 1 writes nothing.
func Generate(w io.Writer, length int64) error {
	if length < 1 {
		return errors.Wrapf(ErrInvalidLength, "got %d", length)
	}
	buf := bufio.NewWriter(w)
	var scratch []byte
	for i := int64(1); i < length; i++ {
		scratch = strconv.AppendInt(scratch[:0], i, 10)
		if _, err := buf.Write(scratch); err != nil {
			return errors.Wrap(err, "writing digits")
		}
	}
	return errors.Wrap(buf.Flush(), "writing digits")
}

func GenerateFile(path string, length int64) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = errors.Wrap(closeErr, "closing output")
		}
	}()
	return Generate(file, length)
}
