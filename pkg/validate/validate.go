// Package validate wires Spanish validation messages into gin's binding engine.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	once       sync.Once
	translator ut.Translator
)

// Init configures gin's default validator once: JSON tag names in messages,
// Spanish translations and rejection of unknown body fields.
func Init() {
	once.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		spanish := es.New()
		translator, _ = ut.New(spanish, spanish).GetTranslator("es")

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = es_translations.RegisterDefaultTranslations(v, translator)
	})
}

// Message turns a binding error into a human readable Spanish message.
func Message(err error) string {
	Init()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		translated := verrs.Translate(translator)
		msgs := make([]string, 0, len(translated))
		for _, m := range translated {
			msgs = append(msgs, m)
		}
		sort.Strings(msgs)
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("El campo %s tiene un tipo inválido.", typeErr.Field)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "El cuerpo de la solicitud no es JSON válido."
	}

	if errors.Is(err, io.EOF) {
		return "El cuerpo de la solicitud está vacío."
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return fmt.Sprintf("El campo %s no está permitido.", field)
	}

	return "Solicitud inválida."
}
