package entities

import "time"

// User representa a identidade emitida pelo provedor de autenticação.
// O ID é opaco (claim "sub") e nunca é gerado por este sistema.
type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpsertUser contém os campos gravados a cada login bem-sucedido
type UpsertUser struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// DisplayName retorna o nome completo, ou o email quando não há nome
func (u *User) DisplayName() string {
	name := ""
	if u.FirstName != nil {
		name = *u.FirstName
	}
	if u.LastName != nil && *u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *u.LastName
	}
	if name == "" && u.Email != nil {
		return *u.Email
	}
	return name
}
