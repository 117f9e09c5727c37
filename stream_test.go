package formdata_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/formdata"
)

func TestEncoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   interface{}
		want    string
		wantErr bool
	}{
		"basic record": {
			input: formdata.Record{
				{Key: "name", Value: "john"},
				{Key: "age", Value: 20},
				{Key: "pronouns", Value: []string{"he", "him"}},
			},
			want: "name=john&age=20&pronouns[]=he&pronouns[]=him",
		},
		"empty record": {
			input: formdata.Record{},
			want:  "",
		},
		"invalid input": {
			input:   42,
			wantErr: true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var b bytes.Buffer
			encoder := formdata.NewEncoder(&b)
			err := encoder.Encode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if !tt.wantErr {
				if diff := cmp.Diff(tt.want, b.String()); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			}
		})
	}
}
