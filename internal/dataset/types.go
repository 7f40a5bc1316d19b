package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// City is one record of the largest-cities dataset.
type City struct {
	Country       string `json:"country"`
	City          string `json:"city"`
	Pronunciation string `json:"pronunciation"`
	IPA           string `json:"ipa"`
}

// River is one record of the longest-rivers dataset.
type River struct {
	Country       string `json:"country"`
	River         string `json:"river"`
	Pronunciation string `json:"pronunciation"`
	IPA           string `json:"ipa"`
	Length        int    `json:"length"` // kilometres
}

// Element is one record of the periodic table dataset.
type Element struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// Country is one record of the flag dataset. ShortName is the ISO 3166-1
// alpha-2 code used to look up the flag image.
type Country struct {
	ID        string  `json:"id"`
	LongName  string  `json:"long_name"`
	ShortName string  `json:"short_name"`
	CenterLat Coordinate `json:"center_lat"`
	CenterLng Coordinate `json:"center_lng"`
}

// Coordinate is a latitude or longitude in degrees. Fixtures carry it either
// as a JSON number or as a numeric string; an empty string means unknown and
// decodes to zero.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s == "" {
			*c = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", s, err)
		}
		*c = Coordinate(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Coordinate(f)
	return nil
}
