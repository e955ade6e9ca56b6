package types

// ContactInfo holds contact fields extracted from a resume. Every field is
// optional; an empty string means the field was not found. Phone, when
// present, is normalized to "(XXX) XXX-XXXX"; LinkedIn and GitHub are
// rewritten to canonical https URLs.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Name     string `json:"name,omitempty"`
}
