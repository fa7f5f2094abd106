package gridfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvgrid/matrix"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when a path has no recognised extension.
var ErrUnknownFormat = errors.New("gridfile: unknown document format")

// Format identifies a document encoding.
type Format int

const (
	// FormatYAML is the YAML encoding (.yaml, .yml).
	FormatYAML Format = iota
	// FormatTOML is the TOML encoding (.toml).
	FormatTOML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// document is the on-disk shape shared by every format. Cols is written
// only for a grid without rows, whose width cannot be read off a row.
type document[E any] struct {
	Cols int   `yaml:"cols,omitempty" toml:"cols,omitempty"`
	Rows [][]E `yaml:"rows,flow" toml:"rows"`
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// DecodeYAML reads one YAML grid document from r.
func DecodeYAML[E any](r io.Reader) (*matrix.Matrix[E], error) {
	var doc document[E]
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("gridfile: decode yaml: %w", err)
	}

	return fromDocument(doc)
}

// EncodeYAML writes m to w as a YAML grid document.
func EncodeYAML[E any](w io.Writer, m *matrix.Matrix[E]) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(toDocument(m)); err != nil {
		return fmt.Errorf("gridfile: encode yaml: %w", err)
	}

	return nil
}

// DecodeTOML reads one TOML grid document from r.
func DecodeTOML[E any](r io.Reader) (*matrix.Matrix[E], error) {
	var doc document[E]
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("gridfile: decode toml: %w", err)
	}

	return fromDocument(doc)
}

// EncodeTOML writes m to w as a TOML grid document.
func EncodeTOML[E any](w io.Writer, m *matrix.Matrix[E]) error {
	if err := toml.NewEncoder(w).Encode(toDocument(m)); err != nil {
		return fmt.Errorf("gridfile: encode toml: %w", err)
	}

	return nil
}

// Load reads the grid document at path, choosing the decoder from the
// file extension.
func Load[E any](path string, opts ...Option) (*matrix.Matrix[E], error) {
	o := applyOptions(opts)
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	defer f.Close()

	var m *matrix.Matrix[E]
	switch format {
	case FormatTOML:
		m, err = DecodeTOML[E](f)
	default:
		m, err = DecodeYAML[E](f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	o.Logger.Debug("gridfile: loaded", "path", path, "format", format, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

// Save writes m to path, choosing the encoder from the file extension.
// The file is created or truncated with mode 0o644.
func Save[E any](path string, m *matrix.Matrix[E], opts ...Option) error {
	o := applyOptions(opts)
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("gridfile: %w", err)
	}

	switch format {
	case FormatTOML:
		err = EncodeTOML(f, m)
	default:
		err = EncodeYAML(f, m)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("gridfile: %w", cerr)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	o.Logger.Debug("gridfile: saved", "path", path, "format", format, "rows", m.Rows(), "cols", m.Cols())

	return nil
}

func fromDocument[E any](doc document[E]) (*matrix.Matrix[E], error) {
	if len(doc.Rows) == 0 {
		if doc.Cols < 0 {
			return nil, fmt.Errorf("gridfile: cols %d: %w", doc.Cols, matrix.ErrWrongLength)
		}

		return matrix.NewEmpty[E](doc.Cols), nil
	}
	m, err := matrix.Of(doc.Rows...)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}

	return m, nil
}

func toDocument[E any](m *matrix.Matrix[E]) document[E] {
	doc := document[E]{Rows: make([][]E, 0, m.Rows())}
	if m.IsEmpty() {
		doc.Cols = m.Cols()
	}
	for _, row := range m.RowViews() {
		doc.Rows = append(doc.Rows, slices.Clone(row))
	}

	return doc
}

// Options configures Load and Save.
type Options struct {
	Logger *log.Logger // debug sink; log.Default() unless overridden
}

// Option configures Load and Save.
type Option func(*Options)

// WithLogger sets the logger used for debug records.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options logging to log.Default().
func DefaultOptions() Options {
	return Options{Logger: log.Default()}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
