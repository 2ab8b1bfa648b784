// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Resource path patterns the offline UI resolves relative to the public dir.
const (
	PhotoPlaceholder = "assets/clients/photos/placeholder.svg"
	DossierDir       = "assets/clients/dossiers"
	TranscriptDir    = "assets/clients/transcripts"
)

// Client is one normalized roster row as the offline UI consumes it from
// clients.json. Field order matches the JSON the UI was built against.
type Client struct {
	// ID is the prefix plus zero-padded counter (e.g. "c001").
	ID string `json:"id" yaml:"id"`

	FirstName  string `json:"firstName" yaml:"firstName"`
	LastName   string `json:"lastName" yaml:"lastName"`
	MiddleName string `json:"middleName" yaml:"middleName"`

	// DOB is "YYYY-MM-DD" when the input date parsed, otherwise the
	// trimmed input value.
	DOB string `json:"dob" yaml:"dob"`

	Phone       string `json:"phone" yaml:"phone"`
	Address     string `json:"address" yaml:"address"`
	Email       string `json:"email" yaml:"email"`
	Status      string `json:"status" yaml:"status"`
	Responsible string `json:"responsible" yaml:"responsible"`

	// Photo is always the shared placeholder image.
	Photo string `json:"photo" yaml:"photo"`

	// Dossier is the HTML fragment path for this client.
	Dossier string `json:"dossier" yaml:"dossier"`

	// Audio is left empty so the UI waveform falls back to demo mode.
	Audio string `json:"audio" yaml:"audio"`

	// Transcript is the plain-text call transcript path for this client.
	Transcript string `json:"transcript" yaml:"transcript"`
}

// FullName returns "last first middle", the order the UI displays names in.
func (c Client) FullName() string {
	return c.LastName + " " + c.FirstName + " " + c.MiddleName
}

// DossierPath returns the dossier resource path for a client id.
func DossierPath(id string) string {
	return DossierDir + "/" + id + ".html"
}

// TranscriptPath returns the transcript resource path for a client id.
func TranscriptPath(id string) string {
	return TranscriptDir + "/" + id + ".txt"
}
