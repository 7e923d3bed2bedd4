package formmap

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"directorybolt/pkg/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-faster/errors"
)

const (
	fieldSelector     = "button, fieldset, input, object, output, select, textarea"
	submitterSelector = `button, input[type="submit"], input[type="button"], a[role="button"]`
)

var captchaKeywords = []string{"captcha", "recaptcha", "hcaptcha", "arkose"} //nolint: gochecknoglobals

var captchaSelectors = strings.Join([]string{ //nolint: gochecknoglobals
	"iframe[src*='recaptcha']",
	".g-recaptcha",
	".grecaptcha-badge",
	"iframe[src*='hcaptcha']",
	".h-captcha",
	"div[id*='captcha']",
	"iframe[src*='arkoselabs']",
}, ", ")

var stepTerms = []string{"next", "continue", "step", "proceed", "save & next"} //nolint: gochecknoglobals

// Page is an analyzed HTML document.
type Page struct {
	doc  *goquery.Document
	html string
}

// ParsePage parses a rendered DOM.
func ParsePage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	return &Page{doc: doc, html: html}, nil
}

// Forms lists the forms of the page in document order.
func (p *Page) Forms() []domain.Form {
	var forms []domain.Form
	p.doc.Find("form").Each(func(i int, s *goquery.Selection) {
		method := strings.ToLower(strings.TrimSpace(s.AttrOr("method", "")))
		if method == "" {
			method = "get"
		}

		form := domain.Form{
			Index:   i,
			Action:  s.AttrOr("action", ""),
			Method:  method,
			Dataset: dataset(s),
			Fields:  []domain.FormField{},
		}
		s.Find(fieldSelector).Each(func(_ int, el *goquery.Selection) {
			form.Fields = append(form.Fields, p.field(el))
		})
		s.Find(submitterSelector).Each(func(_ int, el *goquery.Selection) {
			form.Submitters = append(form.Submitters, submitter(el))
		})
		forms = append(forms, form)
	})

	return forms
}

func (p *Page) field(el *goquery.Selection) domain.FormField {
	tag := goquery.NodeName(el)
	typ := strings.ToLower(el.AttrOr("type", ""))
	if typ == "" && tag == "input" {
		typ = "text"
	}
	_, required := el.Attr("required")

	return domain.FormField{
		Name:         el.AttrOr("name", ""),
		ID:           el.AttrOr("id", ""),
		Tag:          tag,
		Type:         typ,
		Required:     required,
		Placeholder:  el.AttrOr("placeholder", ""),
		Labels:       p.labels(el),
		AriaRequired: el.AttrOr("aria-required", ""),
		Autocomplete: el.AttrOr("autocomplete", ""),
	}
}

// labels collects <label for>, a wrapping label, aria-describedby targets
// and aria-label, in that order.
func (p *Page) labels(el *goquery.Selection) []string {
	var out []string
	add := func(text string) {
		if text = normalizeText(text); text != "" {
			out = append(out, text)
		}
	}

	if id := el.AttrOr("id", ""); id != "" {
		p.doc.Find("label").Each(func(_ int, l *goquery.Selection) {
			if l.AttrOr("for", "") == id {
				add(l.Text())
			}
		})
	}
	if wrapping := el.Closest("label"); wrapping.Length() > 0 {
		add(wrapping.Text())
	}
	for _, id := range strings.Fields(el.AttrOr("aria-describedby", "")) {
		p.doc.Find("[id]").EachWithBreak(func(_ int, d *goquery.Selection) bool {
			if d.AttrOr("id", "") == id {
				add(d.Text())

				return false
			}

			return true
		})
	}
	add(el.AttrOr("aria-label", ""))

	return out
}

func submitter(el *goquery.Selection) domain.FormSubmitter {
	text := normalizeText(el.Text())
	if text == "" {
		text = normalizeText(el.AttrOr("value", ""))
	}
	typ := strings.ToLower(el.AttrOr("type", ""))
	if typ == "" {
		typ = goquery.NodeName(el)
	}

	return domain.FormSubmitter{Selector: cssPath(el), Text: text, Type: typ}
}

// cssPath builds a selector for el: tag#id when it has an id, otherwise the
// chain of tag.class parts from the root with nth-of-type on ambiguous
// ancestors.
func cssPath(el *goquery.Selection) string {
	tag := goquery.NodeName(el)
	if id := el.AttrOr("id", ""); id != "" {
		return tag + "#" + id
	}

	var parts []string
	for cur := el; cur.Length() > 0; cur = cur.Parent() {
		name := goquery.NodeName(cur)
		part := name
		if classes := strings.Fields(cur.AttrOr("class", "")); len(classes) > 0 {
			part += "." + strings.Join(classes, ".")
		}
		if cur != el {
			if siblings := cur.Parent().ChildrenFiltered(name); siblings.Length() > 1 {
				part += ":nth-of-type(" + strconv.Itoa(siblings.IndexOfSelection(cur)+1) + ")"
			}
		}
		parts = append(parts, part)
	}
	slices.Reverse(parts)

	return strings.Join(parts, " > ")
}

// dataset returns the data-* attributes keyed like HTMLElement.dataset.
func dataset(s *goquery.Selection) map[string]string {
	if s.Length() == 0 {
		return nil
	}

	var out map[string]string
	for _, a := range s.Get(0).Attr {
		key, ok := strings.CutPrefix(a.Key, "data-")
		if !ok || key == "" {
			continue
		}
		if out == nil {
			out = map[string]string{}
		}
		out[camelCase(key)] = a.Val
	}

	return out
}

func camelCase(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if p := parts[i]; p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}

	return strings.Join(parts, "")
}

// HasCaptcha reports whether the page mentions or embeds a captcha widget.
func (p *Page) HasCaptcha() bool {
	lower := strings.ToLower(p.html)
	for _, kw := range captchaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return p.doc.Find(captchaSelectors).Length() > 0
}

// StepSignals lists hints that the submission spans several steps, sorted
// and without duplicates.
func StepSignals(forms []domain.Form, html string) []string {
	lower := strings.ToLower(html)
	var signals []string

	for _, s := range []struct{ needle, signal string }{
		{"data-step", "dom:data-step"},
		{"form-step", "dom:form-step"},
		{"wizard", "dom:wizard-keyword"},
		{"progressbar", "dom:progressbar"},
	} {
		if strings.Contains(lower, s.needle) {
			signals = append(signals, s.signal)
		}
	}

	for _, f := range forms {
		for k, v := range f.Dataset {
			if strings.Contains(strings.ToLower(k), "step") || strings.Contains(strings.ToLower(v), "step") {
				signals = append(signals, "form-dataset:"+k+"="+v)
			}
		}
		for _, sub := range f.Submitters {
			text := strings.ToLower(sub.Text)
			if text == "" {
				continue
			}
			for _, term := range stepTerms {
				if strings.Contains(text, term) {
					signals = append(signals, "submit-text:"+text)

					break
				}
			}
		}
	}
	if len(forms) > 1 {
		signals = append(signals, "multiple-forms-on-page")
	}

	slices.Sort(signals)

	return slices.Compact(signals)
}

// DOMChecksum is the hex sha256 of the rendered DOM.
func DOMChecksum(html string) string {
	sum := sha256.Sum256([]byte(html))

	return hex.EncodeToString(sum[:])
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
