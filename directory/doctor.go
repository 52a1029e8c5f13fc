package directory

// Doctor is one entry of the static doctor directory. The same struct is
// used for the rich JSON-sourced records, the compiled-in fallback records
// (name and image only) and the merged record handed to the UI, so empty
// fields are allowed everywhere.
type Doctor struct {
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	Experience      int      `json:"experience,omitempty"`
	Image           string   `json:"image,omitempty"`
	Quote           string   `json:"quote,omitempty"`
	Details         string   `json:"details,omitempty"`
}
