package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/leadfunnel-backend/internal/domain/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator retorna a instância compartilhada do validator, com nomes de campo do JSON
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// nullable é implementado por campos que aceitam null explicitamente
type nullable interface {
	AcceptsNull() bool
}

// decodeRequest decodifica body em dst (ponteiro para struct) campo a campo,
// produzindo uma entrada por campo inválido:
//   - chave desconhecida
//   - null em campo não anulável
//   - tipo JSON incompatível
//   - regras do validator (required, min, ...)
func decodeRequest(body []byte, dst any) error {
	verr := &domainerrors.ValidationError{}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		verr.Add("body", "json", "must be a JSON object")
		return verr
	}

	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonFieldName(t.Field(i)); name != "" {
			fields[name] = i
		}
	}

	failed := make(map[string]bool)
	for key, value := range raw {
		idx, ok := fields[key]
		if !ok {
			verr.Add(key, "unknown", "unknown field")
			failed[key] = true
			continue
		}

		target := v.Field(idx).Addr().Interface()
		if string(value) == "null" {
			if _, ok := target.(nullable); !ok {
				verr.Add(key, "nonnull", "must not be null")
				failed[key] = true
				continue
			}
		}

		if err := json.Unmarshal(value, target); err != nil || hasNullElement(value) {
			verr.Add(key, "type", "expected "+describeType(t.Field(idx).Type))
			failed[key] = true
		}
	}

	if err := Validator().Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			if failed[fe.Field()] {
				continue
			}
			verr.Add(fe.Field(), fe.Tag(), ruleMessage(fe))
			failed[fe.Field()] = true
		}
	}

	sort.SliceStable(verr.Fields, func(i, j int) bool {
		return verr.Fields[i].Field < verr.Fields[j].Field
	})

	return verr.OrNil()
}

// hasNullElement indica um array JSON com algum elemento null;
// o decoder ignora null em elementos não ponteiro
func hasNullElement(value json.RawMessage) bool {
	var elems []json.RawMessage
	if err := json.Unmarshal(value, &elems); err != nil {
		return false
	}
	for _, e := range elems {
		if string(bytes.TrimSpace(e)) == "null" {
			return true
		}
	}
	return false
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// describeType nomeia o tipo JSON esperado para um campo
func describeType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		// Optional[T]: o tipo esperado é o de Value
		if f, ok := t.FieldByName("Value"); ok {
			return describeType(f.Type)
		}
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice:
		return "array of " + describeType(t.Elem()) + "s"
	default:
		return t.Kind().String()
	}
}
