package postgres

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
)

// WriteSeedScript escribe un script SQL equivalente a Seeder.Seed: esquema y upserts
// en una transacción. La salida es determinista para el mismo fixture.
func WriteSeedScript(w io.Writer, src repository.FixtureReader) error {
	tabs, err := tables(src)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	out.WriteString("-- Datos de prueba del inventario de equipos de oficina\n")
	out.WriteString("-- Generado por cmd/seed; se puede ejecutar varias veces (upsert por id)\n\n")
	out.WriteString("BEGIN;\n\n")

	for _, stmt := range schema {
		out.WriteString(stmt)
		out.WriteString(";\n\n")
	}

	for n, t := range tabs {
		if len(t.rows) == 0 {
			continue
		}
		fmt.Fprintf(out, "-- %d. %s\n", n+1, t.name)
		fmt.Fprintf(out, "INSERT INTO %s (%s) VALUES\n", t.name, strings.Join(t.columns, ", "))
		for i, row := range t.rows {
			lits := make([]string, len(row))
			for j, v := range row {
				lit, err := sqlLiteral(v)
				if err != nil {
					return fmt.Errorf("%s.%s: %w", t.name, t.columns[j], err)
				}
				lits[j] = lit
			}
			sep := ","
			if i == len(t.rows)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  (%s)%s\n", strings.Join(lits, ", "), sep)
		}
		fmt.Fprintf(out, "ON CONFLICT (id) DO UPDATE SET %s;\n\n", t.updateSet())
	}

	out.WriteString("COMMIT;\n")
	return out.Flush()
}

// sqlLiteral formatea los tipos que produce tables().
func sqlLiteral(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return "'" + escapeSQL(x) + "'", nil
	case *string:
		if x == nil {
			return "NULL", nil
		}
		return "'" + escapeSQL(*x) + "'", nil
	case int:
		return strconv.Itoa(x), nil
	case bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case time.Time:
		return "'" + x.UTC().Format(time.RFC3339Nano) + "'", nil
	case decimal.Decimal:
		return x.String(), nil
	default:
		return "", fmt.Errorf("tipo no soportado %T", v)
	}
}
