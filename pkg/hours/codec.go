package hours

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jdziat/working-hours/pkg/schedule"
)

// UnmarshalJSON decodes any raw schedule form accepted by schedule.Parse.
func (w *WorkingHours) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	week, err := schedule.Parse(raw)
	if err != nil {
		return err
	}
	w.week = week
	return nil
}

// MarshalJSON encodes the schedule as a seven element array.
// The value receiver lets config structs holding a WorkingHours field be
// marshaled by value; encoders skip pointer methods on non-addressable fields.
func (w WorkingHours) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.week.Values())
}

// UnmarshalYAML decodes any raw schedule form accepted by schedule.Parse.
func (w *WorkingHours) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	week, err := schedule.Parse(raw)
	if err != nil {
		return err
	}
	w.week = week
	return nil
}

// MarshalYAML encodes the schedule as a seven element sequence.
// Value receiver for the same reason as MarshalJSON: yaml.v3 only consults
// the field's own method set.
func (w WorkingHours) MarshalYAML() (any, error) {
	return w.week.Values(), nil
}
