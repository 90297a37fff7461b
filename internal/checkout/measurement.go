package checkout

import "github.com/alnubras/pos-api/internal/domain/enum"

// Measurement is a structured body-measurement record attached to a
// custom tailoring line. Values are kept verbatim as entered at the
// terminal; the locale selects which regional sheet was filled in.
type Measurement struct {
	Locale   enum.MeasurementLocale `json:"locale"`
	Length   string                 `json:"length,omitempty"`
	Shoulder string                 `json:"shoulder,omitempty"`
	Sleeve   string                 `json:"sleeve,omitempty"`
	Chest    string                 `json:"chest,omitempty"`
	Waist    string                 `json:"waist,omitempty"`
	Neck     string                 `json:"neck,omitempty"`
	Cuff     string                 `json:"cuff,omitempty"`
	Notes    string                 `json:"notes,omitempty"`
}
