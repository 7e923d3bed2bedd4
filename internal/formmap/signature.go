package formmap

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"

	"directorybolt/pkg/domain"

	"github.com/go-faster/jx"
)

// FormSignature hashes the canonical JSON of forms: object keys sorted,
// every key present. Captures of an unchanged form set share a signature.
func FormSignature(forms []domain.Form) string {
	sum := sha256.Sum256(CanonicalForms(forms))

	return hex.EncodeToString(sum[:])
}

// CanonicalForms encodes forms with sorted object keys.
func CanonicalForms(forms []domain.Form) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, f := range forms {
		encodeForm(e, f)
	}
	e.ArrEnd()

	return slices.Clone(e.Bytes())
}

func encodeForm(e *jx.Encoder, f domain.Form) {
	e.ObjStart()
	e.FieldStart("action")
	e.Str(f.Action)

	e.FieldStart("dataset")
	e.ObjStart()
	keys := make([]string, 0, len(f.Dataset))
	for k := range f.Dataset {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		e.FieldStart(k)
		e.Str(f.Dataset[k])
	}
	e.ObjEnd()

	e.FieldStart("fields")
	e.ArrStart()
	for _, field := range f.Fields {
		encodeField(e, field)
	}
	e.ArrEnd()

	e.FieldStart("index")
	e.Int(f.Index)
	e.FieldStart("method")
	e.Str(f.Method)

	e.FieldStart("submitters")
	e.ArrStart()
	for _, s := range f.Submitters {
		e.ObjStart()
		e.FieldStart("selector")
		e.Str(s.Selector)
		e.FieldStart("text")
		e.Str(s.Text)
		e.FieldStart("type")
		e.Str(s.Type)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeField(e *jx.Encoder, f domain.FormField) {
	e.ObjStart()
	e.FieldStart("ariaRequired")
	e.Str(f.AriaRequired)
	e.FieldStart("autocomplete")
	e.Str(f.Autocomplete)
	e.FieldStart("id")
	e.Str(f.ID)
	e.FieldStart("labels")
	e.ArrStart()
	for _, l := range f.Labels {
		e.Str(l)
	}
	e.ArrEnd()
	e.FieldStart("name")
	e.Str(f.Name)
	e.FieldStart("placeholder")
	e.Str(f.Placeholder)
	e.FieldStart("required")
	e.Bool(f.Required)
	e.FieldStart("tag")
	e.Str(f.Tag)
	e.FieldStart("type")
	e.Str(f.Type)
	e.ObjEnd()
}
