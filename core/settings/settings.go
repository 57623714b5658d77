package settings

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DefaultRefreshPeriodMinutes applies when no valid period is stored.
const DefaultRefreshPeriodMinutes int32 = 15

// MaxRefreshPeriodMinutes is the longest storable period, one year.
const MaxRefreshPeriodMinutes int32 = 365 * 24 * 60

// Settings is the decoded settings document.
type Settings struct {
	RefreshPeriodMinutes int32 `json:"refresh_period_minutes" yaml:"refresh_period_minutes"`
}

// Default returns the settings used when nothing valid is stored.
func Default() Settings {
	return Settings{RefreshPeriodMinutes: DefaultRefreshPeriodMinutes}
}

// Validate reports whether s can be stored.
func (s Settings) Validate() error {
	if s.RefreshPeriodMinutes <= 0 {
		return fmt.Errorf("refresh period must be positive, got %d", s.RefreshPeriodMinutes)
	}
	if s.RefreshPeriodMinutes > MaxRefreshPeriodMinutes {
		return fmt.Errorf("refresh period must be at most %d minutes, got %d", MaxRefreshPeriodMinutes, s.RefreshPeriodMinutes)
	}
	return nil
}

// Marshal encodes s in the protobuf wire format.
func Marshal(s Settings) ([]byte, error) {
	data, err := proto.Marshal(wrapperspb.Int32(s.RefreshPeriodMinutes))
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// Unmarshal decodes data. The second result is false when data was absent or
// corrupt and the defaults were returned instead.
func Unmarshal(data []byte) (Settings, bool) {
	if len(data) == 0 {
		return Default(), false
	}
	var msg wrapperspb.Int32Value
	if err := proto.Unmarshal(data, &msg); err != nil {
		return Default(), false
	}
	s := Settings{RefreshPeriodMinutes: msg.GetValue()}
	if s.Validate() != nil {
		return Default(), false
	}
	return s, true
}
