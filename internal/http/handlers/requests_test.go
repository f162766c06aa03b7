package handlers

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{`{"amount":500}`, ptr(500), false},
		{`{"amount":"250.5"}`, ptr(250.5), false},
		{`{"amount":" 42 "}`, ptr(42), false},
		{`{"amount":""}`, nil, false},
		{`{"amount":null}`, nil, false},
		{`{}`, nil, false},
		{`{"amount":"ten"}`, nil, true},
		{`{"amount":true}`, nil, true},
	}
	for _, tc := range cases {
		var req createOrderRequest
		err := json.Unmarshal([]byte(tc.in), &req)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.in, err)
		}
		got := req.Amount.Value
		if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
			t.Fatalf("%s: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func ptr(v float64) *float64 { return &v }
