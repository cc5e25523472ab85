package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"10s"`, want: 10 * time.Second},
		{name: "compound", in: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", in: `3000000000`, want: 3 * time.Second},
		{name: "bad string", in: `"ten"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_YAML(t *testing.T) {
	var cfg struct {
		A Duration `yaml:"a"`
		B Duration `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 250ms\nb: 1000\n"), &cfg))
	assert.Equal(t, 250*time.Millisecond, cfg.A.Duration)
	assert.Equal(t, time.Microsecond, cfg.B.Duration)

	require.Error(t, yaml.Unmarshal([]byte("a: [1]\n"), &cfg))
}

func TestDuration_Marshal(t *testing.T) {
	b, err := json.Marshal(Duration{2 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))

	out, err := yaml.Marshal(map[string]Duration{"t": {time.Minute}})
	require.NoError(t, err)
	assert.Equal(t, "t: 1m0s\n", string(out))
}
