package site

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

// LocationEntry is one record of locations.json, the index the exported
// locations page filters against.
type LocationEntry struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	ShortName string              `json:"short_name"`
	Status    catalog.StateStatus `json:"status"`
	Path      string              `json:"path"`
	Summary   string              `json:"summary"`
}

// BuildLocationIndex lists every state in catalog order.
func BuildLocationIndex(cat *catalog.Catalog) []LocationEntry {
	states := cat.States()
	entries := make([]LocationEntry, 0, len(states))
	for _, s := range states {
		entries = append(entries, LocationEntry{
			ID:        s.ID,
			Name:      s.Name,
			ShortName: s.ShortName,
			Status:    s.Status,
			Path:      "/locations/" + s.ID,
			Summary:   s.Description,
		})
	}
	return entries
}

// EncodeLocationIndex writes the index as indented JSON.
func EncodeLocationIndex(w io.Writer, entries []LocationEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteLocationIndex writes the index to outputPath.
func WriteLocationIndex(entries []LocationEntry, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeLocationIndex(f, entries); err != nil {
		return fmt.Errorf("encoding location index: %w", err)
	}
	return f.Close()
}
