package formmap_test

import (
	"testing"

	"directorybolt/internal/formmap"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
)

const signupPage = `<html><head><title>Add listing</title></head><body>
<div class="wrap">
<form id="signup" action="/submit" method="POST" data-step="1" data-form-kind="listing">
  <label for="biz">Business   name</label>
  <input id="biz" name="business_name" required placeholder="Acme">
  <label>Email <input type="EMAIL" name="email" autocomplete="email"></label>
  <span id="help">We never share it</span>
  <input name="phone" type="tel" aria-describedby="help" aria-label="Phone" aria-required="true">
  <select name="category"><option>A</option></select>
  <textarea name="description"></textarea>
  <button type="submit">Next
     step</button>
</form>
<form><input type="hidden" name="token"><a role="button" class="btn primary">Go</a></form>
</div>
<div class="g-recaptcha"></div>
</body></html>`

func TestPage_Forms(t *testing.T) {
	p, err := formmap.ParsePage(signupPage)
	require.NoError(t, err)

	forms := p.Forms()
	require.Len(t, forms, 2)

	first := forms[0]
	require.Equal(t, 0, first.Index)
	require.Equal(t, "/submit", first.Action)
	require.Equal(t, "post", first.Method)
	require.Equal(t, map[string]string{"step": "1", "formKind": "listing"}, first.Dataset)
	require.Len(t, first.Fields, 6)

	require.Equal(t, domain.FormField{
		Name:        "business_name",
		ID:          "biz",
		Tag:         "input",
		Type:        "text",
		Required:    true,
		Placeholder: "Acme",
		Labels:      []string{"Business name"},
	}, first.Fields[0])

	require.Equal(t, "email", first.Fields[1].Type)
	require.Equal(t, "email", first.Fields[1].Autocomplete)
	require.Equal(t, []string{"Email"}, first.Fields[1].Labels)

	require.Equal(t, []string{"We never share it", "Phone"}, first.Fields[2].Labels)
	require.Equal(t, "true", first.Fields[2].AriaRequired)
	require.False(t, first.Fields[2].Required)

	require.Equal(t, "select", first.Fields[3].Tag)
	require.Empty(t, first.Fields[3].Type)
	require.Equal(t, "textarea", first.Fields[4].Tag)
	require.Equal(t, "button", first.Fields[5].Tag)

	require.Equal(t, []domain.FormSubmitter{{
		Selector: "html > body > div.wrap:nth-of-type(1) > form:nth-of-type(1) > button",
		Text:     "Next step",
		Type:     "submit",
	}}, first.Submitters)

	second := forms[1]
	require.Equal(t, "get", second.Method)
	require.Nil(t, second.Dataset)
	require.Len(t, second.Fields, 1)
	require.Equal(t, "hidden", second.Fields[0].Type)
	require.Equal(t, []domain.FormSubmitter{{
		Selector: "html > body > div.wrap:nth-of-type(1) > form:nth-of-type(2) > a.btn.primary",
		Text:     "Go",
		Type:     "a",
	}}, second.Submitters)
}

func TestPage_SubmitterWithID(t *testing.T) {
	p, err := formmap.ParsePage(`<form><input id="go" type="submit" value=" Send  it "></form>`)
	require.NoError(t, err)

	forms := p.Forms()
	require.Len(t, forms, 1)
	require.Equal(t, []domain.FormSubmitter{{Selector: "input#go", Text: "Send it", Type: "submit"}}, forms[0].Submitters)
}

func TestPage_HasCaptcha(t *testing.T) {
	for name, tc := range map[string]struct {
		html string
		want bool
	}{
		"widget class": {html: `<div class="g-recaptcha"></div>`, want: true},
		"keyword":      {html: `<script src="https://js.hcaptcha.com/1/api.js"></script>`, want: true},
		"arkose":       {html: `<iframe src="https://client-api.arkoselabs.com/fc"></iframe>`, want: true},
		"plain form":   {html: `<form><input name="q"></form>`},
	} {
		t.Run(name, func(t *testing.T) {
			p, err := formmap.ParsePage(tc.html)
			require.NoError(t, err)
			require.Equal(t, tc.want, p.HasCaptcha())
		})
	}
}

func TestStepSignals(t *testing.T) {
	p, err := formmap.ParsePage(signupPage)
	require.NoError(t, err)

	require.Equal(t, []string{
		"dom:data-step",
		"form-dataset:step=1",
		"multiple-forms-on-page",
		"submit-text:next step",
	}, formmap.StepSignals(p.Forms(), signupPage))

	html := `<div class="wizard" role="progressbar"><form><button>Continue</button><button>Continue</button></form></div>`
	p, err = formmap.ParsePage(html)
	require.NoError(t, err)
	require.Equal(t, []string{
		"dom:progressbar",
		"dom:wizard-keyword",
		"submit-text:continue",
	}, formmap.StepSignals(p.Forms(), html))

	require.Empty(t, formmap.StepSignals(nil, `<form><button>Send</button></form>`))
}

func TestDOMChecksum(t *testing.T) {
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		formmap.DOMChecksum(""))
	require.NotEqual(t, formmap.DOMChecksum("<p>a</p>"), formmap.DOMChecksum("<p>b</p>"))
}
