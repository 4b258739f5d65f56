package lexical

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		topN int
		want []string
	}{
		{
			name: "frequency ranking",
			text: "go go go python python java",
			topN: 10,
			want: []string{"go", "python", "java"},
		},
		{
			name: "ties broken by first occurrence",
			text: "docker terraform docker terraform ansible",
			topN: 10,
			want: []string{"docker", "terraform", "ansible"},
		},
		{
			name: "stopwords removed",
			text: "we are looking for a talented engineer with the right skills",
			topN: 10,
			want: []string{"looking", "talented", "engineer", "right", "skill"},
		},
		{
			name: "plurals folded together",
			text: "databases database microservices microservice",
			topN: 10,
			want: []string{"database", "microservice"},
		},
		{
			name: "topN caps the list",
			text: "one one one two two three",
			topN: 2,
			want: []string{"one", "two"},
		},
		{
			name: "empty text",
			text: "",
			topN: 10,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractKeywords(tt.text, tt.topN)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsDefaultCap(t *testing.T) {
	words := make([]string, 0, 40)
	for r := 'a'; r < 'z'; r++ {
		words = append(words, strings.Repeat(string(r), 4))
	}
	got, err := ExtractKeywords(strings.Join(words, " "), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultTopKeywords {
		t.Errorf("expected %d keywords, got %d", DefaultTopKeywords, len(got))
	}
}

func TestCountActionVerbs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "base and inflected forms",
			text: "Developed services, managed a team, led migrations, implementing pipelines",
			want: 4,
		},
		{
			name: "no action verbs",
			text: "responsible for stuff and things",
			want: 0,
		},
		{
			name: "repeated verbs each count",
			text: "built built built",
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountActionVerbs(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountActionVerbs(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
