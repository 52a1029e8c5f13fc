package directory

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"unicode"
)

// Dir holds the process-wide directory snapshot. It is set once by
// LoadDirectory during startup and never mutated afterwards, so concurrent
// readers need no locking.
var Dir *Directory

// Directory is an immutable snapshot of the two doctor lists with the
// lookup indexes built once up front.
type Directory struct {
	doctors  []Doctor
	fallback []Doctor

	// normalized specialization -> index of the first doctor carrying it
	bySpec map[string]int
	// lowercased name -> index, first occurrence wins on duplicate names
	byName         map[string]int
	fallbackByName map[string]int
}

// New builds a directory snapshot from the rich JSON-sourced list and the
// compiled-in fallback list.
func New(doctors, fallback []Doctor) *Directory {
	d := &Directory{
		doctors:        doctors,
		fallback:       fallback,
		bySpec:         make(map[string]int),
		byName:         make(map[string]int),
		fallbackByName: make(map[string]int),
	}

	for i, doc := range doctors {
		name := strings.ToLower(doc.Name)
		if _, ok := d.byName[name]; !ok {
			d.byName[name] = i
		}
		for _, spec := range doc.Specializations {
			key := Normalize(spec)
			if key == "" {
				continue
			}
			if _, ok := d.bySpec[key]; !ok {
				d.bySpec[key] = i
			}
		}
	}

	for i, doc := range fallback {
		name := strings.ToLower(doc.Name)
		if _, ok := d.fallbackByName[name]; !ok {
			d.fallbackByName[name] = i
		}
	}

	return d
}

// LoadDirectory reads the doctor directory JSON document and initializes the
// global snapshot. Called once from main before the router starts serving.
func LoadDirectory() {
	path := os.Getenv("DOCTOR_DIRECTORY")
	if path == "" {
		path = "data/doctors.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read doctor directory: ", err)
	}

	var doctors []Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		log.Fatal("Failed to parse doctor directory: ", err)
	}

	Dir = New(doctors, FallbackDoctors)
	log.Printf("Doctor directory loaded: %d doctors, %d fallback entries", len(doctors), len(FallbackDoctors))
}

// Normalize lower-cases s and strips every whitespace character. All
// specialization and condition comparisons go through this.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// Match finds the first doctor, in directory order, with a specialization
// exactly equal to the given condition after normalization. Empty input
// never matches. Ties between doctors sharing a specialization are broken
// by directory order, not rating or experience.
func (d *Directory) Match(condition string) (Doctor, bool) {
	key := Normalize(condition)
	if key == "" {
		return Doctor{}, false
	}
	i, ok := d.bySpec[key]
	if !ok {
		return Doctor{}, false
	}
	return d.doctors[i], true
}

// Resolve looks up a physician name case-insensitively in both lists and
// merges the records, the JSON-sourced one winning field by field. A name
// found in neither list still resolves to a displayable record carrying the
// raw name, so appointment rows never fail on an unknown physician.
func (d *Directory) Resolve(physician string) Doctor {
	key := strings.ToLower(physician)

	var base Doctor
	if i, ok := d.fallbackByName[key]; ok {
		base = d.fallback[i]
	}
	if i, ok := d.byName[key]; ok {
		return merge(base, d.doctors[i])
	}
	if base.Name != "" {
		return base
	}
	return Doctor{Name: physician}
}

// Doctors returns the rich list in directory order.
func (d *Directory) Doctors() []Doctor {
	return d.doctors
}

// merge overlays over on top of base, keeping base values wherever over has
// none. Precedence is explicit per field rather than wholesale replacement.
func merge(base, over Doctor) Doctor {
	out := base
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.Specialty != "" {
		out.Specialty = over.Specialty
	}
	if len(over.Specializations) > 0 {
		out.Specializations = over.Specializations
	}
	if over.Rating != 0 {
		out.Rating = over.Rating
	}
	if over.Experience != 0 {
		out.Experience = over.Experience
	}
	if over.Image != "" {
		out.Image = over.Image
	}
	if over.Quote != "" {
		out.Quote = over.Quote
	}
	if over.Details != "" {
		out.Details = over.Details
	}
	return out
}
