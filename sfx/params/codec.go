package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Format is a serialization format for sound specs.
type Format int

const (
	JSON Format = iota
	YAML
)

// ErrUnknownFormat is returned for file extensions or format values that have
// no codec.
var ErrUnknownFormat = errors.New("params: unknown format")

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return JSON, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ParseFormat resolves a format name: json, yaml or yml.
func ParseFormat(name string) (Format, error) {
	return FormatFromPath("." + strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "."))
}

// Encode writes spec to w.
func Encode(w io.Writer, spec SoundSpec, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(spec); err != nil {
			return fmt.Errorf("params: encode json: %w", err)
		}
		return nil
	case YAML:
		data, err := yaml.Marshal(spec)
		if err != nil {
			return fmt.Errorf("params: encode yaml: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("params: write yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Decode reads a spec from r. Fields missing from the input keep their
// defaults: sine tone, duty 0.5, no filters.
func Decode(r io.Reader, format Format) (SoundSpec, error) {
	spec := New(0)
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&spec); err != nil {
			return SoundSpec{}, fmt.Errorf("params: decode json: %w", err)
		}
	case YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return SoundSpec{}, fmt.Errorf("params: read yaml: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &spec); err != nil {
			return SoundSpec{}, fmt.Errorf("params: decode yaml: %w", err)
		}
	default:
		return SoundSpec{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if !spec.Tone.Waveform.Valid() {
		return SoundSpec{}, fmt.Errorf("params: invalid waveform %d", int(spec.Tone.Waveform))
	}
	return spec, nil
}

// Load reads a spec file, choosing the codec from its extension.
func Load(path string) (SoundSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return SoundSpec{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SoundSpec{}, fmt.Errorf("params: %w", err)
	}
	return Decode(bytes.NewReader(data), format)
}

// Save writes spec to path, choosing the codec from its extension.
func Save(path string, spec SoundSpec) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, spec, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	return nil
}

// UnmarshalJSON decodes f starting from DefaultFilters, so omitted cutoffs
// and compression stay disengaged. Unknown fields are rejected.
func (f *Filters) UnmarshalJSON(data []byte) error {
	type plain Filters
	p := plain(DefaultFilters())
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return err
	}
	*f = Filters(p)
	return nil
}

// UnmarshalYAML decodes f starting from DefaultFilters.
func (f *Filters) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Filters
	p := plain(DefaultFilters())
	if err := unmarshal(&p); err != nil {
		return err
	}
	*f = Filters(p)
	return nil
}
