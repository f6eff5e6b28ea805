package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeIDTag(t *testing.T) {
	t.Parallel()

	type request struct {
		ID string `validate:"safeid"`
	}
	validate := New()

	tests := []struct {
		id    string
		valid bool
	}{
		{id: "4711", valid: true},
		{id: "01JAB8Q8T0Q6M4V3CJ4Y1X2Z9K", valid: true},
		{id: "run_1.v2-final", valid: true},
		{id: strings.Repeat("a", 128), valid: true},
		{id: strings.Repeat("a", 129), valid: false},
		{id: "", valid: false},
		{id: ".hidden", valid: false},
		{id: "../etc", valid: false},
		{id: "a/b", valid: false},
		{id: "a b", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := validate.Struct(request{ID: tt.id})
			assert.Equal(t, tt.valid, err == nil)
			assert.Equal(t, tt.valid, IsSafeID(tt.id))
		})
	}
}
