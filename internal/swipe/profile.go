package swipe

// Attributes are the display fields rendered on a card.
type Attributes struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	City           string `json:"city"`
	Profession     string `json:"profession,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
	MatchScore     int    `json:"match_score"` // 0-100
	Premium        bool   `json:"premium,omitempty"`
	KundaliMatched bool   `json:"kundali_matched,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

// CandidateProfile is a profile awaiting a decision. It is treated as
// immutable for the lifetime of a swipe session.
type CandidateProfile struct {
	ID         string     `json:"id"`
	Attributes Attributes `json:"attributes"`
}
