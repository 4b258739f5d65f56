package lexical

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical texts",
			a:    "go engineer building distributed systems",
			b:    "go engineer building distributed systems",
			want: 1.0,
		},
		{
			name: "disjoint vocabularies",
			a:    "python pandas numpy",
			b:    "golang kubernetes docker",
			want: 0.0,
		},
		{
			name: "empty first text",
			a:    "",
			b:    "golang kubernetes docker",
			want: 0.0,
		},
		{
			name: "empty second text",
			a:    "golang kubernetes docker",
			b:    "   ",
			want: 0.0,
		},
		{
			name: "punctuation only",
			a:    "!!! ???",
			b:    "golang",
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Similarity(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarityPartialOverlap(t *testing.T) {
	got, err := Similarity(
		"go engineer with kubernetes experience",
		"go engineer with terraform experience",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got <= 0.0 || got >= 1.0 {
		t.Errorf("partial overlap should score strictly between 0 and 1, got %v", got)
	}
}

func TestSimilarityCaseInsensitive(t *testing.T) {
	got, err := Similarity("Golang Kubernetes", "golang kubernetes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("case differences should not affect similarity, got %v", got)
	}
}
