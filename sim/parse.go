package sim

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Caller-boundary errors. Schedulers never return these; they are produced
// while turning user text into scheduler input.
var (
	// ErrMalformedInput is returned when a track or head value is not an integer.
	ErrMalformedInput = errors.New("malformed input")
	// ErrMissingSelection is returned when no algorithm is chosen, or SCAN has no direction.
	ErrMissingSelection = errors.New("missing selection")
	// ErrOutOfRangeTrack is returned when a value lies outside the disk extent.
	ErrOutOfRangeTrack = errors.New("track out of range")
)

// MaxTrackMagnitude bounds the absolute value of any head or request the
// caller boundary hands to a scheduler, with or without range enforcement.
// Within it every seek distance and any realistic total fits in an int.
const MaxTrackMagnitude = math.MaxInt32

// ParseRequests parses whitespace-separated integers into a RequestSet.
// Commas are accepted as separators too. Blank text yields an empty set.
func ParseRequests(text string) (RequestSet, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	requests := make(RequestSet, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: request[%d] %q is not an integer", ErrMalformedInput, i, f)
		}
		requests = append(requests, Track(v))
	}
	return requests, nil
}

// ParseHead parses a single integer head position.
func ParseHead(text string) (Track, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: head position is empty", ErrMalformedInput)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: head position %q is not an integer", ErrMalformedInput, s)
	}
	return Track(v), nil
}

// ParseDirection resolves "left" or "right" (case-insensitive).
// Empty text is a missing selection.
func ParseDirection(text string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	case "":
		return 0, fmt.Errorf("%w: scan requires a direction (left or right)", ErrMissingSelection)
	default:
		return 0, fmt.Errorf("unknown direction %q; valid: left, right", text)
	}
}

// ParseAlgorithm normalizes an algorithm selector. Empty text is a missing selection.
func ParseAlgorithm(text string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	if name == "" {
		return "", fmt.Errorf("%w: no algorithm selected; valid: %s", ErrMissingSelection, strings.Join(AlgorithmNames(), ", "))
	}
	if !IsValidAlgorithm(name) {
		return "", fmt.Errorf("unknown algorithm %q; valid: %s", text, strings.Join(AlgorithmNames(), ", "))
	}
	return name, nil
}

// ParseBoundaryMode resolves a SCAN boundary mode. Empty text yields BoundaryAlways.
func ParseBoundaryMode(text string) (BoundaryMode, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if !IsValidBoundaryMode(s) {
		return "", fmt.Errorf("unknown boundary mode %q; valid: always, on-reverse", text)
	}
	if s == "" {
		return BoundaryAlways, nil
	}
	return BoundaryMode(s), nil
}

// ValidateRange checks that the head and every request lie inside the extent.
// The schedulers accept any integers; this check exists for callers that
// want to enforce the physical track range.
func ValidateRange(requests RequestSet, head Track, extent DiskExtent) error {
	if !extent.Contains(head) {
		return fmt.Errorf("%w: head %d not in [0, %d]", ErrOutOfRangeTrack, head, extent.Max())
	}
	for i, r := range requests {
		if !extent.Contains(r) {
			return fmt.Errorf("%w: request[%d]=%d not in [0, %d]", ErrOutOfRangeTrack, i, r, extent.Max())
		}
	}
	return nil
}

// ValidateMagnitude checks that the head and every request lie within
// ±MaxTrackMagnitude. Unlike ValidateRange it is never relaxed.
func ValidateMagnitude(requests RequestSet, head Track) error {
	if !withinMagnitude(head) {
		return fmt.Errorf("%w: head %d exceeds magnitude %d", ErrOutOfRangeTrack, head, MaxTrackMagnitude)
	}
	for i, r := range requests {
		if !withinMagnitude(r) {
			return fmt.Errorf("%w: request[%d]=%d exceeds magnitude %d", ErrOutOfRangeTrack, i, r, MaxTrackMagnitude)
		}
	}
	return nil
}

func withinMagnitude(t Track) bool {
	return t >= -MaxTrackMagnitude && t <= MaxTrackMagnitude
}
