package weatherapi

import (
	"encoding/json"
	"fmt"
)

// DecodeError reports a payload that could not be turned into a Snapshot:
// malformed JSON, a type mismatch, or a missing required section. The
// caller keeps its previous snapshot; a failed decode never yields a
// partial one.
type DecodeError struct {
	Reason string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decoding forecast response: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("decoding forecast response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// envelope mirrors Snapshot with pointer sections so required-field
// presence can be checked after unmarshalling.
type envelope struct {
	Location *Location `json:"location"`
	Current  *Current  `json:"current"`
	Forecast *Forecast `json:"forecast"`
}

// Decode parses a forecast.json response body into a Snapshot.
//
// The location and current sections are required; forecast is optional
// (a payload without it yields a snapshot with no days). All failures
// come back as *DecodeError.
func Decode(data []byte) (*Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &DecodeError{Reason: "malformed payload", Cause: err}
	}
	if env.Location == nil {
		return nil, &DecodeError{Reason: `missing required field "location"`}
	}
	if env.Current == nil {
		return nil, &DecodeError{Reason: `missing required field "current"`}
	}
	return &Snapshot{
		Location: *env.Location,
		Current:  *env.Current,
		Forecast: env.Forecast,
	}, nil
}

// decodePlaces parses a search.json response body.
func decodePlaces(data []byte) ([]Place, error) {
	var places []Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, &DecodeError{Reason: "malformed search payload", Cause: err}
	}
	return places, nil
}

// Encode renders a Snapshot back into the wire shape, inverting the
// snake_case mapping and the days/"forecastday" rename.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}
