package model_test

import (
	"encoding/json"
	"testing"

	"github.com/td051191/MinhPhat/model"
)

func TestQuantityDecoding(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "plain number", body: `{"quantity": 5}`, want: 5},
		{name: "numeric string", body: `{"quantity": "3"}`, want: 3},
		{name: "float truncates", body: `{"quantity": 2.9}`, want: 2},
		{name: "zero clamps up", body: `{"quantity": 0}`, want: 1},
		{name: "negative clamps up", body: `{"quantity": -5}`, want: 1},
		{name: "over maximum clamps down", body: `{"quantity": 150}`, want: 99},
		{name: "junk text falls back to minimum", body: `{"quantity": "abc"}`, want: 1},
		{name: "null falls back to minimum", body: `{"quantity": null}`, want: 1},
		{name: "absent falls back to minimum", body: `{}`, want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var line model.CartLineRequest
			if err := json.Unmarshal([]byte(tt.body), &line); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := line.Quantity.Clamped(); got != tt.want {
				t.Fatalf("Clamped() = %d, want %d", got, tt.want)
			}
		})
	}
}
