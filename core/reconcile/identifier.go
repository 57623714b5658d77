package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingLocation is returned when a successful create carries neither a body nor a Location header.
	ErrMissingLocation = errors.New("created response has no body and no Location header")

	// ErrUnsupportedIdentifier is returned when the identifier type is not int32, int64 or string.
	ErrUnsupportedIdentifier = errors.New("identifier type must be int32, int64 or string")

	// ErrMalformedLocation is returned when the Location segment does not parse as the identifier type.
	ErrMalformedLocation = errors.New("malformed Location header")

	// ErrMalformedID is returned when a raw identifier does not parse as the identifier type.
	ErrMalformedID = errors.New("malformed identifier")

	// ErrStreamClosed is returned by Stream.Terminal when the stream ends without a terminal state.
	ErrStreamClosed = errors.New("stream closed before a terminal state")
)

// ParseIdentifier extracts the segment after the last "/" of a Location value
// and converts it to ID.
func ParseIdentifier[ID any](location string) (ID, error) {
	id, err := ParseID[ID](location[strings.LastIndex(location, "/")+1:])
	if errors.Is(err, ErrMalformedID) {
		return id, fmt.Errorf("%w: %q: %v", ErrMalformedLocation, location, err)
	}
	return id, err
}

// ParseID converts one raw identifier, such as a path parameter or a CLI
// argument, to ID.
func ParseID[ID any](raw string) (ID, error) {
	var id ID

	switch p := any(&id).(type) {
	case *int32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return id, fmt.Errorf("%w %q: %v", ErrMalformedID, raw, errors.Unwrap(err))
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return id, fmt.Errorf("%w %q: %v", ErrMalformedID, raw, errors.Unwrap(err))
		}
		*p = v
	case *string:
		if raw == "" {
			return id, fmt.Errorf("%w: empty", ErrMalformedID)
		}
		*p = raw
	default:
		return id, fmt.Errorf("%w: got %T", ErrUnsupportedIdentifier, id)
	}

	return id, nil
}
