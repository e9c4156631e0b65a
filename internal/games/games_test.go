package games

import (
	"errors"
	"testing"
)

func TestCalculatePrice_TableDriven(t *testing.T) {
	t.Parallel()

	type tc struct {
		name string
		game func(t *testing.T) Game
		peak bool
		want int64
	}

	tests := []tc{
		{
			name: "cabinet_peak_full_price",
			game: func(t *testing.T) Game { return mustCabinet(t, "C123456789", 100, true) },
			peak: true,
			want: 100,
		},
		{
			name: "cabinet_offpeak_with_reward_payout",
			game: func(t *testing.T) Game { return mustCabinet(t, "C123456789", 100, true) },
			peak: false,
			want: 80,
		},
		{
			name: "cabinet_offpeak_without_reward_payout",
			game: func(t *testing.T) Game { return mustCabinet(t, "C123456789", 100, false) },
			peak: false,
			want: 50,
		},
		{
			name: "cabinet_offpeak_truncates_toward_zero",
			game: func(t *testing.T) Game { return mustCabinet(t, "C123456789", 125, false) },
			peak: false,
			want: 62, // 125 * 0.5 = 62.5
		},
		{
			name: "active_peak_full_price",
			game: func(t *testing.T) Game { return mustActive(t, "A123456789", 400, 18) },
			peak: true,
			want: 400,
		},
		{
			name: "active_offpeak_80_percent",
			game: func(t *testing.T) Game { return mustActive(t, "A123456789", 400, 18) },
			peak: false,
			want: 320,
		},
		{
			name: "active_offpeak_truncates",
			game: func(t *testing.T) Game { return mustActive(t, "A123456789", 999, 18) },
			peak: false,
			want: 799, // 999 * 0.8 = 799.2
		},
		{
			name: "vr_peak_full_price",
			game: func(t *testing.T) Game { return mustVR(t, "AV87654321", 465, 17, EquipmentHeadsetOnly) },
			peak: true,
			want: 465,
		},
		{
			name: "vr_offpeak_headset_only",
			game: func(t *testing.T) Game { return mustVR(t, "AV87654321", 465, 17, EquipmentHeadsetOnly) },
			peak: false,
			want: 418, // 465 * 0.9 = 418.5
		},
		{
			name: "vr_offpeak_headset_and_controllers",
			game: func(t *testing.T) Game { return mustVR(t, "AV87654321", 465, 17, EquipmentHeadsetAndControllers) },
			peak: false,
			want: 441, // 465 * 0.95 = 441.75
		},
		{
			name: "vr_offpeak_full_body_tracking_keeps_list_price",
			game: func(t *testing.T) Game { return mustVR(t, "AV87654321", 465, 17, EquipmentFullBodyTracking) },
			peak: false,
			want: 465,
		},
	}

	for _, tt := range tests {
		tt := tt // pin
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.game(t).CalculatePrice(tt.peak)
			if got != tt.want {
				t.Fatalf("CalculatePrice(%v): want %d, got %d", tt.peak, tt.want, got)
			}
		})
	}
}

func TestOffPeakNeverExceedsPeak(t *testing.T) {
	t.Parallel()

	prices := []int64{0, 1, 99, 100, 465, 10000}

	for _, price := range prices {
		all := []Game{
			mustCabinet(t, "C123456789", price, true),
			mustCabinet(t, "C123456789", price, false),
			mustActive(t, "A123456789", price, 18),
			mustVR(t, "AV87654321", price, 17, EquipmentHeadsetOnly),
			mustVR(t, "AV87654321", price, 17, EquipmentHeadsetAndControllers),
			mustVR(t, "AV87654321", price, 17, EquipmentFullBodyTracking),
		}

		for _, g := range all {
			peak := g.CalculatePrice(true)
			if peak != price {
				t.Fatalf("%s: peak price %d != list price %d", g.Kind(), peak, price)
			}

			offPeak := g.CalculatePrice(false)
			if offPeak > peak {
				t.Fatalf("%s: off-peak price %d exceeds peak %d (list %d)", g.Kind(), offPeak, peak, price)
			}
		}
	}
}

func TestIDValidation_TableDriven(t *testing.T) {
	t.Parallel()

	type tc struct {
		name    string
		build   func() error
		wantErr bool
	}

	cabinet := func(id string) func() error {
		return func() error { _, err := NewCabinet(id, "c", 100, false); return err }
	}
	active := func(id string) func() error {
		return func() error { _, err := NewActive(id, "a", 100, 12); return err }
	}
	vr := func(id string) func() error {
		return func() error { _, err := NewVirtualReality(id, "v", 100, 12, EquipmentHeadsetOnly); return err }
	}

	tests := []tc{
		{name: "cabinet_ok", build: cabinet("CBAcba1234"), wantErr: false},
		{name: "cabinet_too_short", build: cabinet("C12345678"), wantErr: true},
		{name: "cabinet_too_long", build: cabinet("C1234567890"), wantErr: true},
		{name: "cabinet_not_alphanumeric", build: cabinet("C12345-789"), wantErr: true},
		{name: "cabinet_wrong_prefix", build: cabinet("XBAcba1234"), wantErr: true},
		{name: "active_ok", build: active("A123456789"), wantErr: false},
		{name: "active_wrong_prefix", build: active("B123456789"), wantErr: true},
		{name: "vr_ok", build: vr("AV87654321"), wantErr: false},
		{name: "vr_passes_active_rule_but_not_av", build: vr("AX12345678"), wantErr: true},
		{name: "vr_fails_active_rule", build: vr("BV12345678"), wantErr: true},
		{name: "vr_too_short", build: vr("AV1234567"), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt // pin
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.build()

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGameID) {
					t.Fatalf("want ErrInvalidGameID, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseEquipmentType(t *testing.T) {
	t.Parallel()

	type tc struct {
		name    string
		token   string
		want    EquipmentType
		wantErr bool
	}

	tests := []tc{
		{name: "camel_case", token: "HeadsetOnly", want: EquipmentHeadsetOnly},
		{name: "canonical_passthrough", token: "HEADSET_ONLY", want: EquipmentHeadsetOnly},
		{name: "camel_case_three_words", token: "HeadsetAndControllers", want: EquipmentHeadsetAndControllers},
		{name: "full_body_camel", token: "FullBodyTracking", want: EquipmentFullBodyTracking},
		{name: "full_body_canonical", token: "FULL_BODY_TRACKING", want: EquipmentFullBodyTracking},
		{name: "surrounding_whitespace", token: " HeadsetOnly ", want: EquipmentHeadsetOnly},
		{name: "unknown_token", token: "Gloves", wantErr: true},
		{name: "all_lowercase_has_no_word_boundaries", token: "headsetonly", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt // pin
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEquipmentType(tt.token)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEquipmentType) {
					t.Fatalf("want ErrInvalidEquipmentType, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func mustCabinet(t *testing.T, id string, price int64, reward bool) *Cabinet {
	t.Helper()

	g, err := NewCabinet(id, "test cabinet", price, reward)
	if err != nil {
		t.Fatalf("NewCabinet: %v", err)
	}

	return g
}

func mustActive(t *testing.T, id string, price int64, minAge int) *Active {
	t.Helper()

	g, err := NewActive(id, "test active", price, minAge)
	if err != nil {
		t.Fatalf("NewActive: %v", err)
	}

	return g
}

func mustVR(t *testing.T, id string, price int64, minAge int, equipment EquipmentType) *VirtualReality {
	t.Helper()

	g, err := NewVirtualReality(id, "test vr", price, minAge, equipment)
	if err != nil {
		t.Fatalf("NewVirtualReality: %v", err)
	}

	return g
}
