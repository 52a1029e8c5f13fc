package directory

import (
	"reflect"
	"testing"
)

func testDirectory() *Directory {
	doctors := []Doctor{
		{
			Name:            "Leila Cameron",
			Specialty:       "Pulmonologist",
			Specializations: []string{"Bronchitis", "Asthma"},
			Rating:          4.8,
			Experience:      12,
			Image:           "/assets/images/leila-cameron.png",
			Quote:           "Every breath matters.",
		},
		{
			Name:            "Evan Peter",
			Specialty:       "General Physician",
			Specializations: []string{"Common Cold", "Influenza"},
			Rating:          4.5,
			Experience:      8,
		},
		{
			Name:            "Jane Powell",
			Specialty:       "General Physician",
			Specializations: []string{"Common Cold"},
			Rating:          4.9,
			Experience:      20,
		},
	}
	fallback := []Doctor{
		{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
		{Name: "John Green", Image: "/assets/images/dr-green.png"},
	}
	return New(doctors, fallback)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Common Cold", "commoncold"},
		{" COMMON  COLD ", "commoncold"},
		{"commoncold", "commoncold"},
		{"Bron chi\ttis", "bronchitis"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchNormalizationVariants(t *testing.T) {
	d := testDirectory()

	variants := []string{"Common Cold", "commoncold", " COMMON  COLD "}
	for _, v := range variants {
		doc, ok := d.Match(v)
		if !ok {
			t.Fatalf("Match(%q) found no doctor", v)
		}
		// Evan Peter lists Common Cold first in directory order, so he wins
		// over Jane Powell regardless of her better rating.
		if doc.Name != "Evan Peter" {
			t.Errorf("Match(%q) = %q, want Evan Peter", v, doc.Name)
		}
	}
}

func TestMatchEmptyInput(t *testing.T) {
	d := testDirectory()
	if _, ok := d.Match(""); ok {
		t.Error("Match(\"\") should never find a doctor")
	}
	if _, ok := d.Match("   \t "); ok {
		t.Error("Match of whitespace-only input should never find a doctor")
	}
}

func TestMatchUnknownCondition(t *testing.T) {
	d := testDirectory()
	if doc, ok := d.Match("Unknown Disease XYZ"); ok {
		t.Errorf("expected no match, got %q", doc.Name)
	}
}

func TestMatchReturnsDoctorCarryingCondition(t *testing.T) {
	d := testDirectory()
	for _, condition := range []string{"Bronchitis", "Asthma", "Influenza", "common cold"} {
		doc, ok := d.Match(condition)
		if !ok {
			t.Fatalf("Match(%q) found no doctor", condition)
		}
		found := false
		for _, s := range doc.Specializations {
			if Normalize(s) == Normalize(condition) {
				found = true
			}
		}
		if !found {
			t.Errorf("Match(%q) returned %q who does not list that specialization", condition, doc.Name)
		}
	}
}

func TestResolveMergesJSONOverFallback(t *testing.T) {
	d := testDirectory()

	doc := d.Resolve("leila cameron")
	if doc.Specialty != "Pulmonologist" {
		t.Errorf("expected JSON specialty, got %q", doc.Specialty)
	}
	// JSON record defines its own image, so it overrides the fallback one.
	if doc.Image != "/assets/images/leila-cameron.png" {
		t.Errorf("expected JSON image to win, got %q", doc.Image)
	}
	if doc.Rating != 4.8 || doc.Experience != 12 {
		t.Errorf("expected JSON rating/experience, got %v/%v", doc.Rating, doc.Experience)
	}
}

func TestResolveFallbackOnly(t *testing.T) {
	d := testDirectory()

	doc := d.Resolve("John Green")
	if doc.Name != "John Green" {
		t.Errorf("got name %q", doc.Name)
	}
	if doc.Image != "/assets/images/dr-green.png" {
		t.Errorf("expected fallback image, got %q", doc.Image)
	}
}

func TestResolveJSONFieldFallsBackWhenEmpty(t *testing.T) {
	doctors := []Doctor{{Name: "Leila Cameron", Specialty: "Pulmonologist"}}
	fallback := []Doctor{{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"}}
	d := New(doctors, fallback)

	doc := d.Resolve("Leila Cameron")
	if doc.Image != "/assets/images/dr-cameron.png" {
		t.Errorf("empty JSON image should fall back to the static one, got %q", doc.Image)
	}
	if doc.Specialty != "Pulmonologist" {
		t.Errorf("got specialty %q", doc.Specialty)
	}
}

func TestResolveUnknownPhysicianDegrades(t *testing.T) {
	d := testDirectory()

	doc := d.Resolve("Dr. Smith")
	if doc.Name != "Dr. Smith" {
		t.Errorf("expected the raw name back, got %q", doc.Name)
	}
	if doc.Image != "" {
		t.Errorf("unknown physician must resolve without an image, got %q", doc.Image)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	d := testDirectory()

	first := d.Resolve("Leila Cameron")
	second := d.Resolve("Leila Cameron")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve is not deterministic: %+v vs %+v", first, second)
	}
}

func TestDuplicateNamesFirstInOrderWins(t *testing.T) {
	doctors := []Doctor{
		{Name: "Evan Peter", Specialty: "Cardiologist"},
		{Name: "Evan Peter", Specialty: "Dermatologist"},
	}
	d := New(doctors, nil)

	if doc := d.Resolve("evan peter"); doc.Specialty != "Cardiologist" {
		t.Errorf("duplicate name should resolve to the first entry, got %q", doc.Specialty)
	}
}
