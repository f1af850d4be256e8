package deck

import (
	"encoding/json"
	"fmt"
)

// Kinds and colours cross the wire by name, never by enum value.

var nameToKind = map[string]Kind{}
var nameToColor = map[string]Color{}

func init() {
	for i, name := range kindNames {
		nameToKind[name] = Kind(i)
	}
	for i, name := range colorNames {
		nameToColor[name] = Color(i)
	}
}

// ParseColor resolves a colour by name
func ParseColor(name string) (Color, bool) {
	c, ok := nameToColor[name]
	return c, ok
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := nameToKind[name]
	if !ok {
		return fmt.Errorf("unknown kind %q", name)
	}
	*k = kind
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	color, ok := nameToColor[name]
	if !ok {
		return fmt.Errorf("unknown colour %q", name)
	}
	*c = color
	return nil
}
