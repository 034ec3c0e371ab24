package analytics

import (
	"context"
	"reflect"
	"testing"
)

func TestTopNWords(t *testing.T) {
	a := &Analyzer{}

	tests := []struct {
		name string
		text string
		n    int
		want []string
	}{
		{
			name: "stopwords dropped and order by first appearance",
			text: "The sky is blue.",
			n:    5,
			want: []string{"sky", "blue"},
		},
		{
			name: "frequency wins over position",
			text: "Bees make honey. Honey is sweet, and honey is sticky.",
			n:    2,
			want: []string{"honey", "bees"},
		},
		{
			name: "unicode letters survive trimming",
			text: "Café society in São Paulo.",
			n:    3,
			want: []string{"café", "society", "são"},
		},
		{
			name: "nothing left",
			text: "It is what it is.",
			n:    3,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.TopNWords(tt.text, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopNWords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWordFrequency(t *testing.T) {
	got := (&Analyzer{}).WordFrequency("Rain, rain, go away!")
	want := map[string]int{"rain": 2, "go": 1, "away": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want %v", got, want)
	}
}

func TestKeywords(t *testing.T) {
	a := &Analyzer{Limit: 1}
	got, err := a.Keywords(context.Background(), "Birds fly south in winter.")
	if err != nil {
		t.Fatalf("Keywords() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"birds"}) {
		t.Errorf("Keywords() = %v, want [birds]", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Keywords(ctx, "anything"); err == nil {
		t.Error("Keywords() with cancelled context expected error")
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error(`IsStopword("The") = false`)
	}
	if IsStopword("honey") {
		t.Error(`IsStopword("honey") = true`)
	}
}
