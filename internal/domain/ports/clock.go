package ports

import "time"

// Clock fornece o instante atual; permite testes determinísticos
type Clock interface {
	Now() time.Time
}
