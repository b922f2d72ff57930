package store

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Name     string      `json:"name"`
	Boundary string      `json:"boundary"`
	Dim      int         `json:"dim"`
	Samples  int         `json:"samples"`
	Norms    []float64   `json:"norms"`
	Args     []float64   `json:"args"`
	Values   [][]float64 `json:"values"`
}

// ExportJSON writes a run's samples and metadata as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	args, values, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Name:     meta.Name,
		Boundary: meta.Boundary,
		Dim:      meta.Dim,
		Samples:  len(args),
		Norms:    meta.Norms,
		Args:     args,
		Values:   values,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONFile writes the export to a file path.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(file, runID)
}
