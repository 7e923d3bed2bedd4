package formmap_test

import (
	"testing"

	"directorybolt/internal/formmap"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
)

func sampleForms() []domain.Form {
	return []domain.Form{{
		Index:   0,
		Action:  "/a",
		Method:  "post",
		Dataset: map[string]string{"b": "2", "a": "1"},
		Fields: []domain.FormField{
			{Name: "x", Tag: "input", Type: "text", Required: true, Labels: []string{"X"}},
		},
		Submitters: []domain.FormSubmitter{{Selector: "button", Text: "Go", Type: "submit"}},
	}}
}

func TestCanonicalForms(t *testing.T) {
	require.Equal(t,
		`[{"action":"/a","dataset":{"a":"1","b":"2"},"fields":[{"ariaRequired":"","autocomplete":"","id":"",`+
			`"labels":["X"],"name":"x","placeholder":"","required":true,"tag":"input","type":"text"}],`+
			`"index":0,"method":"post","submitters":[{"selector":"button","text":"Go","type":"submit"}]}]`,
		string(formmap.CanonicalForms(sampleForms())))

	require.Equal(t, "[]", string(formmap.CanonicalForms(nil)))
}

func TestFormSignature(t *testing.T) {
	sig := formmap.FormSignature(sampleForms())
	require.Len(t, sig, 64)
	require.Equal(t, sig, formmap.FormSignature(sampleForms()))

	changed := sampleForms()
	changed[0].Fields[0].Placeholder = "Your name"
	require.NotEqual(t, sig, formmap.FormSignature(changed))

	reordered := sampleForms()
	reordered[0].Dataset = map[string]string{"a": "1", "b": "2"}
	require.Equal(t, sig, formmap.FormSignature(reordered))
}
