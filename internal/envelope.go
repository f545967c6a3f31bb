package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type (
	// Quotes maps a currency pair ("GBPEUR") to a value: a rate as sent by the
	// service, or a converted amount.
	Quotes = OrderedMap[string]
	// Timeframe maps a date ("2021-10-19") to the quotes of that day.
	Timeframe = OrderedMap[Quotes]
	// Currencies maps a currency code to its display name.
	Currencies = OrderedMap[string]
)

// EnvelopeError is the "error" object of a failed response.
type EnvelopeError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// Envelope is a decoded exchangerate.host response. Payload fields stay raw
// until one of the accessors decodes them.
type Envelope struct {
	Success bool
	Error   *EnvelopeError
	fields  map[string]json.RawMessage
}

func (e *Envelope) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	e.fields = fields
	e.Success = false
	e.Error = nil

	if raw, ok := fields["success"]; ok {
		if err := json.Unmarshal(raw, &e.Success); err != nil {
			return fmt.Errorf("decode success: %w", err)
		}
	}
	if raw, ok := fields["error"]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		var ee EnvelopeError
		if err := json.Unmarshal(raw, &ee); err != nil {
			return fmt.Errorf("decode error: %w", err)
		}
		e.Error = &ee
	}
	return nil
}

func (e *Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields)
}

// Field returns the raw JSON of a top-level field.
func (e *Envelope) Field(name string) (json.RawMessage, bool) {
	raw, ok := e.fields[name]
	return raw, ok
}

// Decode unmarshals a top-level field into v, keeping numbers as text.
func (e *Envelope) Decode(name string, v any) error {
	raw, ok := e.fields[name]
	if !ok {
		return fmt.Errorf("response has no %q field", name)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Quotes decodes a flat "quotes" object.
func (e *Envelope) Quotes() (Quotes, error) {
	var raw OrderedMap[json.Number]
	if err := e.Decode("quotes", &raw); err != nil {
		return Quotes{}, err
	}
	return numbersToText(raw), nil
}

// Timeframe decodes a "quotes" object bucketed by date.
func (e *Envelope) Timeframe() (Timeframe, error) {
	var raw OrderedMap[OrderedMap[json.Number]]
	if err := e.Decode("quotes", &raw); err != nil {
		return Timeframe{}, err
	}

	var out Timeframe
	for date, quotes := range raw.All() {
		out.Set(date, numbersToText(quotes))
	}
	return out, nil
}

func (e *Envelope) Currencies() (Currencies, error) {
	var out Currencies
	if err := e.Decode("currencies", &out); err != nil {
		return Currencies{}, err
	}
	return out, nil
}

func numbersToText(in OrderedMap[json.Number]) Quotes {
	var out Quotes
	for k, v := range in.All() {
		out.Set(k, v.String())
	}
	return out
}
