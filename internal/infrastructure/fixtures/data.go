package fixtures

import "time"

// builtin arma el Snapshot con los datos de autoría. Cada llamada devuelve valores nuevos.
func builtin() Snapshot {
	return Snapshot{
		Users:      users(),
		Areas:      areas(),
		Categories: categories(),
		Equipment:  equipment(),
		Products:   products(),
		Movements:  movements(),
	}
}

// ts fecha y hora en UTC.
func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// day fecha sin hora en UTC.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func str(s string) *string { return &s }
