package settings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestMarshal_WireFormat(t *testing.T) {
	data, err := Marshal(Settings{RefreshPeriodMinutes: 30})
	require.NoError(t, err)

	// field 1, varint 30
	want := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 30)
	assert.Equal(t, want, data)
}

func TestUnmarshal(t *testing.T) {
	valid, err := Marshal(Settings{RefreshPeriodMinutes: 60})
	require.NoError(t, err)

	tests := []struct {
		name  string
		data  []byte
		want  int32
		valid bool
	}{
		{"Valid", valid, 60, true},
		{"Absent", nil, DefaultRefreshPeriodMinutes, false},
		{"Empty", []byte{}, DefaultRefreshPeriodMinutes, false},
		{"Corrupt", []byte{0xff, 0xff, 0xff}, DefaultRefreshPeriodMinutes, false},
		{"Zero", protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 0), DefaultRefreshPeriodMinutes, false},
		{"TooLong", protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), math.MaxInt32), DefaultRefreshPeriodMinutes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Unmarshal(tt.data)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got.RefreshPeriodMinutes)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Error(t, Settings{RefreshPeriodMinutes: 0}.Validate())
	assert.Error(t, Settings{RefreshPeriodMinutes: -5}.Validate())
	assert.NoError(t, Settings{RefreshPeriodMinutes: MaxRefreshPeriodMinutes}.Validate())
	assert.Error(t, Settings{RefreshPeriodMinutes: MaxRefreshPeriodMinutes + 1}.Validate())
}
