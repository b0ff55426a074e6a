package models

import (
	"encoding/json"
	"strconv"
)

// Multipart form submissions carrying file uploads serialize the structured
// fields (ingredients, tags) as JSON strings. The types below accept either
// shape and collapse both into one canonical form before validation; anything
// undecodable becomes an empty list rather than an error.

// FlexString unmarshals from a JSON string or number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexInt unmarshals from a JSON number or numeric string. Set reports
// whether a usable value was present.
type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value, f.Set = n, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			f.Value, f.Set = v, true
		}
	}
	return nil
}

// IngredientInput is one raw ingredient entry from a create/update payload.
// Validation happens later, during admission; here everything is tolerated.
type IngredientInput struct {
	Name           string     `json:"name"`
	Quantity       FlexString `json:"quantity"`
	Unit           string     `json:"unit"`
	CategoryID     *uint      `json:"category_id"`
	EstimatedPrice FlexString `json:"estimated_price"`
	Order          FlexInt    `json:"order"`
}

// IngredientInputList accepts a native JSON array or a string-encoded one.
type IngredientInputList []IngredientInput

func (l *IngredientInputList) UnmarshalJSON(data []byte) error {
	var direct []IngredientInput
	if err := json.Unmarshal(data, &direct); err == nil {
		*l = direct
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseIngredientList(s)
		return nil
	}
	*l = IngredientInputList{}
	return nil
}

// ParseIngredientList decodes a string-encoded ingredient array. Decode
// failure or a non-array payload yields an empty list.
func ParseIngredientList(s string) IngredientInputList {
	var direct []IngredientInput
	if err := json.Unmarshal([]byte(s), &direct); err != nil || direct == nil {
		return IngredientInputList{}
	}
	return direct
}

// StringList accepts a native JSON array of strings or a string-encoded one.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*l = direct
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseStringList(s)
		return nil
	}
	*l = StringList{}
	return nil
}

// ParseStringList decodes a string-encoded string array, empty on failure.
func ParseStringList(s string) StringList {
	var direct []string
	if err := json.Unmarshal([]byte(s), &direct); err != nil || direct == nil {
		return StringList{}
	}
	return direct
}
