package fixtures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load construye un Store desde un documento JSON (mismo formato que Dump).
// Rechaza campos desconocidos para detectar errores de autoría.
func Load(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}
	return New(snap), nil
}

// LoadFile lee el fixture desde un archivo JSON.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir fixture: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Dump escribe el documento JSON canónico (indentado a dos espacios, terminado en salto de línea).
// Dump(Load(Dump(s))) produce exactamente los mismos bytes que Dump(s).
func (s *Store) Dump(w io.Writer) error {
	raw, err := s.MarshalIndent()
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

// MarshalIndent devuelve el documento JSON canónico.
func (s *Store) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.Snapshot()); err != nil {
		return nil, fmt.Errorf("codificar fixture: %w", err)
	}
	return buf.Bytes(), nil
}
