package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Spec par clave/valor de una especificación técnica.
type Spec struct {
	Key   string
	Value string
}

// Specifications mapeo ordenado string → string (ej. "procesador" → "Intel Core i5").
// Conserva el orden de autoría en JSON, a diferencia de map[string]string.
type Specifications []Spec

// Specs construye Specifications a partir de pares clave, valor.
// Panic si el número de argumentos es impar (solo se usa con literales).
func Specs(kv ...string) Specifications {
	if len(kv)%2 != 0 {
		panic("entity.Specs: número impar de argumentos")
	}
	out := make(Specifications, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, Spec{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

// Get devuelve el valor de la clave y si existe.
func (s Specifications) Get(key string) (string, bool) {
	for _, sp := range s {
		if sp.Key == key {
			return sp.Value, true
		}
	}
	return "", false
}

// Clone devuelve una copia independiente.
func (s Specifications) Clone() Specifications {
	if s == nil {
		return nil
	}
	out := make(Specifications, len(s))
	copy(out, s)
	return out
}

// MarshalJSON serializa como objeto JSON respetando el orden.
func (s Specifications) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sp := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sp.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(sp.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON lee un objeto JSON conservando el orden de las claves.
func (s *Specifications) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specifications: se esperaba un objeto JSON")
	}
	out := Specifications{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := kt.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("specifications[%s]: %w", key, err)
		}
		out = append(out, Spec{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
