package menu

import "testing"

func TestSuggest(t *testing.T) {
	candidates := []string{"Food", "Transport", "Café", "Rent"}
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"food", "Food", true},
		{"Fodo", "Food", true},
		{"Transprt", "Transport", true},
		{"cafe", "Café", true},
		{"Holidays", "", false},
		{"", "", false},
		{"!!!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := suggest(tt.name, candidates)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("suggest(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSuggestNoCandidates(t *testing.T) {
	if _, ok := suggest("Food", nil); ok {
		t.Error("expected no suggestion without candidates")
	}
}
