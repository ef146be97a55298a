package data

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidYearFormat = errors.New("invalid year format")

// Year is a movie release year. On the wire it is a JSON number, but HTML
// form inputs post it as a string, so UnmarshalJSON accepts both 1984 and
// "1984". An empty string decodes to zero.
type Year int32

func (y *Year) UnmarshalJSON(jsonValue []byte) error {
	raw := string(jsonValue)
	if raw == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*y = 0
			return nil
		}
	}

	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return ErrInvalidYearFormat
	}

	*y = Year(i)
	return nil
}
