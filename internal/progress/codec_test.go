package progress

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Progress
	}{
		{
			"round trip",
			`{"total_messages":12,"sessions_count":3,"last_session_date":"2026-08-21","first_session_date":"2026-08-01"}`,
			Progress{TotalMessages: 12, SessionsCount: 3, LastSessionDate: "2026-08-21", FirstSessionDate: "2026-08-01"},
		},
		{"empty string", "", Progress{}},
		{"not json", "oops{", Progress{}},
		{"wrong top-level type", `[1,2,3]`, Progress{}},
		{"missing fields default", `{"total_messages":5}`, Progress{TotalMessages: 5}},
		{
			"mistyped counter keeps other fields",
			`{"total_messages":"twelve","sessions_count":3}`,
			Progress{SessionsCount: 3},
		},
		{"negative counter clamps", `{"total_messages":-4,"sessions_count":2}`, Progress{SessionsCount: 2}},
		{
			"bad date becomes empty",
			`{"total_messages":1,"last_session_date":"yesterday","first_session_date":"2026-08-01"}`,
			Progress{TotalMessages: 1, FirstSessionDate: "2026-08-01"},
		},
		{"mistyped date", `{"last_session_date":20260821}`, Progress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.raw); got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	p := Progress{TotalMessages: 7, SessionsCount: 2, LastSessionDate: "2026-08-21", FirstSessionDate: "2026-08-19"}
	raw, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := Decode(raw); got != p {
		t.Errorf("Decode(Encode(p)) = %+v, want %+v", got, p)
	}
}
