package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestLogRequestValidate(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		req     LogRequest
		wantErr bool
	}{
		{"empty", LogRequest{}, false},
		{"deposit type", LogRequest{Type: ptr(TransactionTypeDeposit)}, false},
		{"unknown type", LogRequest{Type: ptr(TransactionType("DEBIT"))}, true},
		{"dates ordered", LogRequest{From: ptr(now.Add(-time.Hour)), To: ptr(now)}, false},
		{"dates reversed", LogRequest{From: ptr(now), To: ptr(now.Add(-time.Hour))}, true},
		{"amounts ordered", LogRequest{MinAmount: ptr("0.1"), MaxAmount: ptr("1")}, false},
		{"amounts equal", LogRequest{MinAmount: ptr("1.0"), MaxAmount: ptr("1")}, false},
		{"amounts reversed", LogRequest{MinAmount: ptr("2"), MaxAmount: ptr("1")}, true},
		{"bad min", LogRequest{MinAmount: ptr("abc")}, true},
		{"bad max alone", LogRequest{MaxAmount: ptr("-1")}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
