package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"promodeck/internal/domain"
)

// ErrInvalidRecord wraps every per-record problem found while loading
var ErrInvalidRecord = errors.New("invalid catalog record")

// ErrUnsupportedFormat is returned for files that are not TOML, YAML or JSON
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// DefaultSource names the built-in catalog in logs and events
const DefaultSource = "builtin"

//go:embed default_catalog.toml
var defaultCatalog []byte

// now is replaced in tests
var now = time.Now

// timeLayouts are tried in order when parsing start and end times
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// record is the on-disk shape of one activity
type record struct {
	ID           string `toml:"id" yaml:"id" json:"id"`
	Title        string `toml:"title" yaml:"title" json:"title"`
	Description  string `toml:"description" yaml:"description" json:"description"`
	Type         string `toml:"type" yaml:"type" json:"type"`
	Status       string `toml:"status" yaml:"status" json:"status"`
	Category     string `toml:"category" yaml:"category" json:"category"`
	StartTime    string `toml:"start_time" yaml:"start_time" json:"startTime"`
	EndTime      string `toml:"end_time" yaml:"end_time" json:"endTime"`
	Location     string `toml:"location" yaml:"location" json:"location"`
	Participants int    `toml:"participants" yaml:"participants" json:"participateCount"`
	Views        int    `toml:"views" yaml:"views" json:"viewsCount"`
	Priority     int    `toml:"priority" yaml:"priority" json:"priority"`
	Featured     bool   `toml:"featured" yaml:"featured" json:"isFeatured"`
	Rules        string `toml:"rules" yaml:"rules" json:"rules"`
}

// catalogFile is the document root for every format
type catalogFile struct {
	Activities []record `toml:"activities" yaml:"activities" json:"activities"`
}

// Format is a catalog encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor returns the format matching a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadDefault returns the built-in catalog
func LoadDefault() ([]domain.Activity, error) {
	return Decode(defaultCatalog, FormatTOML)
}

// Load reads a catalog file or every catalog file below a directory.
// A non-nil error together with activities means some records were skipped;
// errors.Is(err, ErrInvalidRecord) reports that case.
func Load(path string) ([]domain.Activity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}
	if info.IsDir() {
		return loadDir(path)
	}
	return loadFile(path)
}

func loadFile(path string) ([]domain.Activity, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	activities, err := Decode(data, format)
	if err != nil && !errors.Is(err, ErrInvalidRecord) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return activities, err
}

// loadDir merges every supported file below root. Hidden directories are skipped.
func loadDir(root string) ([]domain.Activity, error) {
	var activities []domain.Activity
	var errs []error

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if _, err := FormatFor(path); err != nil {
			return nil
		}
		loaded, err := loadFile(path)
		activities = append(activities, loaded...)
		if err != nil {
			errs = append(errs, err)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan catalog directory: %w", walkErr)
	}
	return dedupe(activities, errs)
}

// Decode parses catalog data. Invalid records are skipped and reported
// through a joined error; the valid ones are still returned.
func Decode(data []byte, format Format) ([]domain.Activity, error) {
	var doc catalogFile
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = decodeJSON(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", format, err)
	}

	activities := make([]domain.Activity, 0, len(doc.Activities))
	var errs []error
	for i, r := range doc.Activities {
		a, err := r.toActivity(now())
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d (%q): %w", i+1, r.Title, err))
			continue
		}
		activities = append(activities, a)
	}
	return dedupe(activities, errs)
}

// decodeJSON accepts either {"activities": [...]} or a bare array
func decodeJSON(data []byte, doc *catalogFile) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &doc.Activities)
	}
	return json.Unmarshal(trimmed, doc)
}

// dedupe drops later activities whose ID was already seen
func dedupe(activities []domain.Activity, errs []error) ([]domain.Activity, error) {
	seen := make(map[string]bool, len(activities))
	out := activities[:0]
	for _, a := range activities {
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalidRecord, a.ID))
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out, errors.Join(errs...)
}

func (r record) toActivity(at time.Time) (domain.Activity, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return domain.Activity{}, fmt.Errorf("%w: missing title", ErrInvalidRecord)
	}
	start, err := parseTime(r.StartTime)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("%w: start_time: %v", ErrInvalidRecord, err)
	}
	var end time.Time
	if strings.TrimSpace(r.EndTime) != "" {
		end, err = parseTime(r.EndTime)
		if err != nil {
			return domain.Activity{}, fmt.Errorf("%w: end_time: %v", ErrInvalidRecord, err)
		}
		if end.Before(start) {
			return domain.Activity{}, fmt.Errorf("%w: end_time before start_time", ErrInvalidRecord)
		}
	}

	a := domain.Activity{
		ID:           strings.TrimSpace(r.ID),
		Title:        title,
		Description:  strings.TrimSpace(r.Description),
		Type:         domain.ActivityType(r.Type),
		Category:     strings.TrimSpace(r.Category),
		StartTime:    start,
		EndTime:      end,
		Location:     r.Location,
		Participants: r.Participants,
		Views:        r.Views,
		Priority:     r.Priority,
		Featured:     r.Featured,
		Rules:        strings.TrimRight(r.Rules, "\n"),
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	if strings.TrimSpace(r.Status) == "" {
		a.Status = a.StatusAt(at)
	} else {
		status, ok := domain.ParseStatus(r.Status)
		if !ok || status == domain.StatusAll {
			return domain.Activity{}, fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, r.Status)
		}
		a.Status = status
	}
	return a, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("missing")
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
