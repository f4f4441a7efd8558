package extract

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Matrix", "the matrix"},
		{"Léon: The Professional", "leon the professional"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"  Extra   Spaces  ", "extra spaces"},
		{"Okja!", "okja"},
		{"3%", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeTitle(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleWords(t *testing.T) {
	got := TitleWords("Love & Other Drugs")
	want := []string{"love", "other", "drugs"}
	if len(got) != len(want) {
		t.Fatalf("TitleWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TitleWords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
