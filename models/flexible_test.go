package models

import (
	"encoding/json"
	"testing"
)

func TestIngredientListFromNativeArray(t *testing.T) {
	var payload struct {
		Ingredients IngredientInputList `json:"ingredients"`
	}
	data := `{"ingredients":[{"name":"Flour","quantity":"2.50","unit":"g"},{"name":"Eggs","quantity":3}]}`
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload.Ingredients) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(payload.Ingredients))
	}
	if payload.Ingredients[0].Quantity.String() != "2.50" {
		t.Fatalf("string quantity mangled: %q", payload.Ingredients[0].Quantity)
	}
	if payload.Ingredients[1].Quantity.String() != "3" {
		t.Fatalf("numeric quantity mangled: %q", payload.Ingredients[1].Quantity)
	}
}

func TestIngredientListFromEncodedString(t *testing.T) {
	var payload struct {
		Ingredients IngredientInputList `json:"ingredients"`
	}
	data := `{"ingredients":"[{\"name\":\"Flour\",\"quantity\":\"2.50\"}]"}`
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload.Ingredients) != 1 || payload.Ingredients[0].Name != "Flour" {
		t.Fatalf("unexpected result: %+v", payload.Ingredients)
	}
	if payload.Ingredients[0].Quantity.String() != "2.50" {
		t.Fatalf("quantity = %q, want 2.50", payload.Ingredients[0].Quantity)
	}
}

func TestIngredientListToleratesGarbage(t *testing.T) {
	cases := []string{
		`{"ingredients":"not json at all"}`,
		`{"ingredients":"{\"name\":\"Flour\"}"}`, // decodes but is not a list
		`{"ingredients":42}`,
		`{"ingredients":null}`,
	}
	for _, data := range cases {
		var payload struct {
			Ingredients IngredientInputList `json:"ingredients"`
		}
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			t.Fatalf("payload %s must not error: %v", data, err)
		}
		if len(payload.Ingredients) != 0 {
			t.Fatalf("payload %s must normalize to empty, got %+v", data, payload.Ingredients)
		}
	}
}

func TestStringListBothShapes(t *testing.T) {
	var native struct {
		Tags StringList `json:"tags"`
	}
	if err := json.Unmarshal([]byte(`{"tags":["vegan","fast"]}`), &native); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var encoded struct {
		Tags StringList `json:"tags"`
	}
	if err := json.Unmarshal([]byte(`{"tags":"[\"vegan\",\"fast\"]"}`), &encoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(native.Tags) != 2 || len(encoded.Tags) != 2 || native.Tags[0] != encoded.Tags[0] {
		t.Fatalf("shapes diverged: %v vs %v", native.Tags, encoded.Tags)
	}

	var bad struct {
		Tags StringList `json:"tags"`
	}
	if err := json.Unmarshal([]byte(`{"tags":"oops"}`), &bad); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(bad.Tags) != 0 {
		t.Fatalf("garbage must normalize to empty, got %v", bad.Tags)
	}
}

func TestFlexIntFromStringOrNumber(t *testing.T) {
	var in struct {
		Order FlexInt `json:"order"`
	}
	if err := json.Unmarshal([]byte(`{"order":7}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.Order.Set || in.Order.Value != 7 {
		t.Fatalf("numeric order: %+v", in.Order)
	}

	var str struct {
		Order FlexInt `json:"order"`
	}
	if err := json.Unmarshal([]byte(`{"order":"12"}`), &str); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !str.Order.Set || str.Order.Value != 12 {
		t.Fatalf("string order: %+v", str.Order)
	}

	var absent struct {
		Order FlexInt `json:"order"`
	}
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if absent.Order.Set {
		t.Fatalf("absent order must stay unset")
	}
}
