package entities

import "encoding/json"

// Optional representa um campo anulável em uma atualização parcial.
// Set=false: campo ausente (mantém o valor atual).
// Set=true e Value=nil: campo enviado como null (limpa o valor).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some cria um Optional preenchido
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null cria um Optional explicitamente nulo
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// apply copia o valor para dst quando o campo foi enviado
func (o Optional[T]) apply(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

// UnmarshalJSON distingue null de valor; um campo ausente nunca chama este método
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// AcceptsNull marca o tipo como anulável para o decodificador de requisições
func (Optional[T]) AcceptsNull() bool { return true }
