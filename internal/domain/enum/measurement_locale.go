package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MeasurementLocale selects which regional measurement sheet a customer uses
type MeasurementLocale int

const (
	MeasurementLocaleArabic  MeasurementLocale = 0
	MeasurementLocaleKuwaiti MeasurementLocale = 1
)

func (l MeasurementLocale) String() string {
	if l == MeasurementLocaleKuwaiti {
		return "kuwaiti"
	}
	return "arabic"
}

func (l MeasurementLocale) IsValid() bool {
	return l == MeasurementLocaleArabic || l == MeasurementLocaleKuwaiti
}

// ParseMeasurementLocale parses the wire representation of a measurement locale
func ParseMeasurementLocale(s string) (MeasurementLocale, error) {
	switch s {
	case "arabic":
		return MeasurementLocaleArabic, nil
	case "kuwaiti":
		return MeasurementLocaleKuwaiti, nil
	}
	return 0, fmt.Errorf("unknown measurement locale %q", s)
}

func (l MeasurementLocale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *MeasurementLocale) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseMeasurementLocale(str)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l MeasurementLocale) Value() (driver.Value, error) {
	return int64(l), nil
}

func (l *MeasurementLocale) Scan(value interface{}) error {
	if value == nil {
		*l = MeasurementLocaleArabic
		return nil
	}
	switch v := value.(type) {
	case int64:
		*l = MeasurementLocale(v)
	case int:
		*l = MeasurementLocale(v)
	}
	return nil
}
