package dataset

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed data/*.json data/schema/*.json
var embedded embed.FS

// Kind names a quiz dataset.
type Kind string

const (
	KindCities   Kind = "cities"
	KindRivers   Kind = "rivers"
	KindElements Kind = "elements"
	KindFlags    Kind = "flags"
)

// ErrUnknownKind is returned by ParseKind for names that match no dataset.
var ErrUnknownKind = errors.New("unknown dataset")

// AllKinds returns all datasets in menu order.
func AllKinds() []Kind {
	return []Kind{KindCities, KindRivers, KindFlags, KindElements}
}

// ParseKind resolves a user-supplied dataset name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "cities", "city", "bigcities":
		return KindCities, nil
	case "rivers", "river", "bigrivers":
		return KindRivers, nil
	case "elements", "element", "periodic":
		return KindElements, nil
	case "flags", "flag", "countries":
		return KindFlags, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DisplayName returns a human-readable name for a dataset.
func (k Kind) DisplayName() string {
	switch k {
	case KindCities:
		return "Largest Cities"
	case KindRivers:
		return "Longest Rivers"
	case KindElements:
		return "Periodic Elements"
	case KindFlags:
		return "Country Flags"
	default:
		return string(k)
	}
}

// fileName returns the fixture file name for a dataset.
func (k Kind) fileName() string {
	return stemOf(k) + ".json"
}

// Source reads datasets from the embedded fixtures, optionally overridden by
// files of the same name in a directory.
type Source struct {
	override fs.FS
}

// Embedded returns a Source that only uses the built-in fixtures.
func Embedded() *Source {
	return &Source{}
}

// Dir returns a Source that prefers fixtures found in dir. An empty dir is
// the same as Embedded.
func Dir(dir string) *Source {
	if dir == "" {
		return Embedded()
	}
	return &Source{override: os.DirFS(dir)}
}

// FS returns a Source that prefers fixtures found in fsys.
func FS(fsys fs.FS) *Source {
	return &Source{override: fsys}
}

// raw returns the bytes of a fixture and where they came from.
func (s *Source) raw(k Kind) ([]byte, string, error) {
	name := k.fileName()
	if s.override != nil {
		data, err := fs.ReadFile(s.override, name)
		if err == nil {
			return data, name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, name, fmt.Errorf("read %s: %w", name, err)
		}
	}
	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, name, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, "embedded:" + name, nil
}

// decode validates a fixture against its schema and unmarshals it into v.
func (s *Source) decode(k Kind, v any) error {
	data, origin, err := s.raw(k)
	if err != nil {
		return err
	}
	if err := validate(k, data); err != nil {
		return &ValidationError{Dataset: origin, Err: err}
	}
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return &ValidationError{Dataset: origin, Err: err}
	}
	return nil
}

// Cities returns the largest-city dataset.
func (s *Source) Cities() ([]City, error) {
	var out []City
	if err := s.decode(KindCities, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rivers returns the longest-river dataset.
func (s *Source) Rivers() ([]River, error) {
	var out []River
	if err := s.decode(KindRivers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Elements returns the periodic element dataset.
func (s *Source) Elements() ([]Element, error) {
	var doc struct {
		Elements []Element `json:"elements"`
	}
	if err := s.decode(KindElements, &doc); err != nil {
		return nil, err
	}
	return doc.Elements, nil
}

// Countries returns the flag dataset.
func (s *Source) Countries() ([]Country, error) {
	var out []Country
	if err := s.decode(KindFlags, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of records in a dataset.
func (s *Source) Count(k Kind) (int, error) {
	switch k {
	case KindCities:
		v, err := s.Cities()
		return len(v), err
	case KindRivers:
		v, err := s.Rivers()
		return len(v), err
	case KindElements:
		v, err := s.Elements()
		return len(v), err
	case KindFlags:
		v, err := s.Countries()
		return len(v), err
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, k)
}
