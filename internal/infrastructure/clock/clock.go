package clock

import "time"

// Resolution é a precisão dos timestamps gravados (igual à do PostgreSQL)
const Resolution = time.Microsecond

// System é o relógio de parede em UTC truncado para Resolution
type System struct{}

// Now retorna o instante atual
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(Resolution)
}

// After retorna now, ou prev+Resolution quando now não é estritamente posterior a prev.
// Garante que UpdatedAt cresça a cada mutação do mesmo registro.
func After(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(Resolution)
}
