package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"triptalk/internal/models/trip_models"
	"triptalk/pkg/logger"
)

type tripDocument struct {
	Data []trip_models.TripPlan `json:"data"`
}

// rawTripDocument defers decoding of each record so one bad entry cannot sink
// the rest.
type rawTripDocument struct {
	Data []json.RawMessage `json:"data"`
}

// jsonFilePersistence keeps the store as a single {"data": [...]} document.
type jsonFilePersistence struct {
	path string
	log  *logger.Logger
}

func NewJSONFilePersistence(path string, log *logger.Logger) Persistence {
	return &jsonFilePersistence{path: path, log: log}
}

// Load returns an empty list when the file does not exist yet. Records that
// no longer decode are logged and skipped; only an unreadable document is an
// error.
func (p *jsonFilePersistence) Load(ctx context.Context) ([]trip_models.TripPlan, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var doc rawTripDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	trips := make([]trip_models.TripPlan, 0, len(doc.Data))
	for i, entry := range doc.Data {
		var plan trip_models.TripPlan
		if err := json.Unmarshal(entry, &plan); err != nil {
			p.log.Warn("skipping malformed trip record", "path", p.path, "index", i, "id", recordID(entry), "error", err)
			continue
		}
		trips = append(trips, plan)
	}
	return trips, nil
}

// recordID pulls the id out of a record that failed full decoding.
func recordID(entry json.RawMessage) string {
	var head struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(entry, &head)
	return head.ID
}

// Save rewrites the whole document through a temp file in the same directory.
func (p *jsonFilePersistence) Save(ctx context.Context, trips []trip_models.TripPlan) error {
	if trips == nil {
		trips = []trip_models.TripPlan{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tripDocument{Data: trips}); err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p.path)
}

func (p *jsonFilePersistence) Close() error {
	return nil
}
