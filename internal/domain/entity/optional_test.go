package entity

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Name   Optional[string]        `json:"name"`
	Price  Optional[float64]       `json:"price"`
	Status Optional[ServiceStatus] `json:"status"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantName   Optional[string]
		wantPrice  Optional[float64]
		wantStatus Optional[ServiceStatus]
	}{
		{
			name:      "only price present",
			body:      `{"price":50}`,
			wantPrice: Some(50.0),
		},
		{
			name: "null is absent",
			body: `{"name":null,"price":null}`,
		},
		{
			name:     "empty string is a value",
			body:     `{"name":""}`,
			wantName: Some(""),
		},
		{
			name:       "zero price is a value",
			body:       `{"price":0,"status":"Published"}`,
			wantPrice:  Some(0.0),
			wantStatus: Some(ServiceStatusPublished),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got optionalPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))

			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestOptional_UnmarshalJSON_TypeMismatch(t *testing.T) {
	var got optionalPayload

	assert.Error(t, json.Unmarshal([]byte(`{"price":"cheap"}`), &got))
}

func TestOptional_MarshalJSON(t *testing.T) {
	body, err := json.Marshal(optionalPayload{Price: Some(12.5)})

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null,"price":12.5,"status":null}`, string(body))
}

func TestOptional_UnmarshalParam(t *testing.T) {
	var price Optional[float64]
	require.NoError(t, price.UnmarshalParam(" 99.5 "))
	value, ok := price.Get()
	assert.True(t, ok)
	assert.Equal(t, 99.5, value)

	var status Optional[ServiceStatus]
	require.NoError(t, status.UnmarshalParam("Draft"))
	got, ok := status.Get()
	assert.True(t, ok)
	assert.Equal(t, ServiceStatusDraft, got)

	var bad Optional[float64]
	err := bad.UnmarshalParam("abc")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.ErrorContains(t, err, `invalid number "abc"`)
	assert.False(t, bad.IsSet())

	var unsupported Optional[[]string]
	assert.Error(t, unsupported.UnmarshalParam("x"))
}
