package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/visamarker/data"
	"github.com/pkordes/visamarker/internal/domain"
)

// visaTableFile is the on-disk shape of a YAML visa table.
// Values are pointers so that a null value reads as an absent field while
// an empty string stays present-but-blank.
type visaTableFile struct {
	Destinations map[string]map[domain.VisaField]*string `yaml:"destinations"`
}

// yamlVisaRepo is an immutable, in-memory VisaRepo loaded from YAML.
type yamlVisaRepo struct {
	records map[string]domain.VisaRecord
	order   []string
}

// NewYAMLVisaRepo parses a YAML visa table from r.
// Unknown field names are rejected so that a typo cannot silently drop data.
func NewYAMLVisaRepo(r io.Reader) (VisaRepo, error) {
	var file visaTableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("repo.NewYAMLVisaRepo: decode: %w", err)
	}

	repo := &yamlVisaRepo{records: make(map[string]domain.VisaRecord, len(file.Destinations))}
	var bad []string
	for dest, fields := range file.Destinations {
		rec := domain.VisaRecord{Destination: dest, Fields: make(map[domain.VisaField]string, len(fields))}
		for f, v := range fields {
			if !f.Valid() {
				bad = append(bad, dest+"."+string(f))
				continue
			}
			if v != nil {
				rec.Fields[f] = *v
			}
		}
		repo.records[dest] = rec
		repo.order = append(repo.order, dest)
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, fmt.Errorf("repo.NewYAMLVisaRepo: unknown fields: %s", strings.Join(bad, ", "))
	}
	sort.Strings(repo.order)
	return repo, nil
}

// LoadYAMLVisaRepo reads a YAML visa table from path, or the embedded
// default table when path is empty.
func LoadYAMLVisaRepo(path string) (VisaRepo, error) {
	if path == "" {
		return NewYAMLVisaRepo(bytes.NewReader(data.VisaTable))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("repo.LoadYAMLVisaRepo: %w", err)
	}
	defer f.Close()
	return NewYAMLVisaRepo(f)
}

// Get returns the record for destination, or domain.ErrNotFound.
func (r *yamlVisaRepo) Get(_ context.Context, destination string) (domain.VisaRecord, error) {
	rec, ok := r.records[destination]
	if !ok {
		return domain.VisaRecord{}, fmt.Errorf("repo.VisaRepo.Get: %q: %w", destination, domain.ErrNotFound)
	}
	return cloneRecord(rec), nil
}

// List returns all records ordered by destination.
func (r *yamlVisaRepo) List(_ context.Context) ([]domain.VisaRecord, error) {
	out := make([]domain.VisaRecord, 0, len(r.order))
	for _, dest := range r.order {
		out = append(out, cloneRecord(r.records[dest]))
	}
	return out, nil
}

// cloneRecord copies the field map so callers cannot mutate the table.
func cloneRecord(rec domain.VisaRecord) domain.VisaRecord {
	fields := make(map[domain.VisaField]string, len(rec.Fields))
	for k, v := range rec.Fields {
		fields[k] = v
	}
	rec.Fields = fields
	return rec
}
