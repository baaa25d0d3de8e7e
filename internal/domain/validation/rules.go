package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// collector agrupa violaciones por colección y posición de registro para
// reportarlas en orden de autoría.
type collector struct {
	buckets []*bucket
}

type bucket struct {
	collection Collection
	ids        []string
	records    [][]Violation
}

func (c *collector) bucket(col Collection, ids []string) *bucket {
	b := &bucket{collection: col, ids: ids, records: make([][]Violation, len(ids))}
	c.buckets = append(c.buckets, b)
	return b
}

func (b *bucket) add(i int, rule Rule, field, format string, args ...interface{}) {
	b.records[i] = append(b.records[i], Violation{
		Collection: b.collection,
		RecordID:   b.ids[i],
		Rule:       rule,
		Field:      field,
		Message:    fmt.Sprintf(format, args...),
	})
}

func (c *collector) flatten() []Violation {
	out := []Violation{}
	for _, b := range c.buckets {
		for _, rec := range b.records {
			sort.SliceStable(rec, func(i, j int) bool {
				return ruleRank[rec[i].Rule] < ruleRank[rec[j].Rule]
			})
			out = append(out, rec...)
		}
	}
	return out
}

// checkFields aplica las reglas declaradas en los tags `validate` de la entidad.
func (v *Validator) checkFields(b *bucket, i int, record interface{}) {
	err := v.fields.Struct(record)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		b.add(i, RuleFormat, "", "registro no validable: %v", err)
		return
	}
	for _, fe := range fieldErrs {
		rule, msg := v.describe(fe)
		b.records[i] = append(b.records[i], Violation{
			Collection: b.collection,
			RecordID:   b.ids[i],
			Rule:       rule,
			Field:      fe.Field(),
			Message:    msg,
		})
	}
}

func (v *Validator) describe(fe validator.FieldError) (Rule, string) {
	field := fe.Field()
	value := formatValue(fe.Value())
	switch fe.Tag() {
	case "required":
		return RuleRequired, fmt.Sprintf("%s es obligatorio", field)
	case "email":
		return RuleFormat, fmt.Sprintf("%s=%s no es un email válido", field, value)
	case "allowed":
		return RuleEnum, fmt.Sprintf("%s=%s no está entre los valores permitidos [%s]",
			field, value, strings.Join(v.Allowed(fe.Param()), ", "))
	}

	rule := RuleRange
	if fe.Type() == reflect.TypeOf(time.Time{}) {
		rule = RuleTemporal
	}
	switch fe.Tag() {
	case "gt":
		return rule, fmt.Sprintf("%s=%s debe ser mayor que %s", field, value, fe.Param())
	case "gte":
		return rule, fmt.Sprintf("%s=%s debe ser mayor o igual que %s", field, value, fe.Param())
	case "gtefield":
		return rule, fmt.Sprintf("%s=%s debe ser mayor o igual que %s", field, value, lowerFirst(fe.Param()))
	case "ltefield":
		return rule, fmt.Sprintf("%s=%s debe ser menor o igual que %s", field, value, lowerFirst(fe.Param()))
	}
	return rule, fmt.Sprintf("%s=%s no cumple la regla %s", field, value, fe.Tag())
}

// checkUnique marca cada aparición repetida de una clave (a partir de la segunda).
// Las claves vacías se ignoran: las cubre la regla required.
func checkUnique(b *bucket, rule Rule, field string, keys []string) {
	first := make(map[string]int, len(keys))
	for i, raw := range keys {
		k := raw
		if rule == RuleUniqueKey {
			k = normalizeKey(raw)
		}
		if k == "" {
			continue
		}
		if j, dup := first[k]; dup {
			b.add(i, rule, field,
				"%s %q duplicado (ya usado por el registro en la posición %d)", field, raw, j)
			continue
		}
		first[k] = i
	}
}

// normalizeKey compara claves tras normalización NFC y plegado de mayúsculas.
func normalizeKey(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339)
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
