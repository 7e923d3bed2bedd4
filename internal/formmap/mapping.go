// Package formmap describes, captures and watches the submission forms of
// directory websites.
//
// A Mapping tells the submission worker which selectors to fill for a
// directory. A capture renders the submission page in headless Chrome and
// records the forms it finds; the Monitor diffs consecutive captures and
// announces changes.
package formmap

import (
	"strings"

	"directorybolt/pkg/domain"
)

// Field names used in mappings.
const (
	FieldBusinessName = "businessName"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZip          = "zip"
	FieldPhone        = "phone"
	FieldWebsite      = "website"
	FieldEmail        = "email"
	FieldDescription  = "description"
	FieldCategory     = "category"
)

// standardFields is the order fields are listed in.
var standardFields = []string{ //nolint: gochecknoglobals
	FieldBusinessName, FieldAddress, FieldCity, FieldState, FieldZip,
	FieldPhone, FieldWebsite, FieldEmail, FieldDescription, FieldCategory,
}

var standardSelectors = map[string][]string{ //nolint: gochecknoglobals
	FieldBusinessName: {
		"input[name='business_name']", "input[name='company_name']", "input[name='name']",
		"input[id='businessName']", "input[id='companyName']", "#business-name", ".business-name input",
	},
	FieldAddress: {
		"input[name='address']", "input[name='street']", "input[name='address1']",
		"input[id='address']", "textarea[name='address']", "#address", ".address input",
	},
	FieldCity: {
		"input[name='city']", "input[id='city']", "#city", ".city input",
	},
	FieldState: {
		"select[name='state']", "select[name='province']", "select[name='region']",
		"input[name='state']", "select[id='state']", "#state", ".state select",
	},
	FieldZip: {
		"input[name='zip']", "input[name='zipcode']", "input[name='postal_code']",
		"input[name='postcode']", "input[id='zip']", "#zip", ".zip input",
	},
	FieldPhone: {
		"input[name='phone']", "input[name='telephone']", "input[name='tel']",
		"input[type='tel']", "input[id='phone']", "#phone", ".phone input",
	},
	FieldWebsite: {
		"input[name='website']", "input[name='url']", "input[name='web']",
		"input[type='url']", "input[id='website']", "#website", ".website input",
	},
	FieldEmail: {
		"input[name='email']", "input[type='email']", "input[id='email']", "#email", ".email input",
	},
	FieldDescription: {
		"textarea[name='description']", "textarea[name='about']", "textarea[name='bio']",
		"textarea[name='summary']", "textarea[id='description']", "#description", ".description textarea",
	},
	FieldCategory: {
		"select[name='category']", "select[name='business_category']", "select[name='industry']",
		"select[name='type']", "select[id='category']", "#category", ".category select",
	},
}

// StandardSelectors returns the fallback selectors per field, most specific
// first.
func StandardSelectors() map[string][]string {
	out := make(map[string][]string, len(standardSelectors))
	for field, sels := range standardSelectors {
		out[field] = append([]string(nil), sels...)
	}

	return out
}

// Special form kinds.
const (
	FormGoogleBusiness   = "google_business_profile"
	FormHealthcare       = "healthcare_provider"
	FormReviewPlatform   = "review_platform"
	FormSocialMedia      = "social_media_business"
	FormStandardBusiness = "standard_business_directory"
)

// CaptchaHint estimates whether a captcha guards the form.
type CaptchaHint struct {
	Present bool   `json:"present"`
	Type    string `json:"type"`
}

// Mapping describes how to fill the submission form of one directory.
type Mapping struct {
	// Fields maps a field name to the selector of its input.
	Fields      map[string]string `json:"fields"`
	SpecialForm string            `json:"specialForm"`
	FormType    string            `json:"formType"`

	RequiredFields    []string    `json:"requiredFields"`
	OptionalFields    []string    `json:"optionalFields"`
	SubmissionMethod  string      `json:"submissionMethod"`
	SuccessIndicators []string    `json:"successIndicators"`
	ErrorIndicators   []string    `json:"errorIndicators"`
	Captcha           CaptchaHint `json:"captcha"`

	AutomationComplexity    string `json:"automationComplexity"`
	EstimatedSubmissionTime string `json:"estimatedSubmissionTime"`
}

// MappingFor picks the selectors for a directory. Google, healthcare, review
// and social directories get their own layouts; everything else uses the
// first standard selector of each field.
func MappingFor(d domain.Directory) Mapping {
	name := strings.ToLower(d.Name)
	category := d.Category
	if category == "" {
		category = "general-directory"
	}

	var (
		fields  map[string]string
		special string
	)
	switch {
	case strings.Contains(name, "google"):
		special = FormGoogleBusiness
		fields = map[string]string{
			FieldBusinessName: "input[aria-label='Business name']",
			FieldAddress:      "input[aria-label='Address']",
			FieldCity:         "input[aria-label='City']",
			FieldState:        "input[aria-label='State']",
			FieldZip:          "input[aria-label='ZIP code']",
			FieldPhone:        "input[aria-label='Phone number']",
			FieldWebsite:      "input[aria-label='Website']",
			FieldCategory:     "input[aria-label='Business category']",
			"hours":           "input[aria-label='Business hours']",
		}
	case category == "healthcare":
		special = FormHealthcare
		fields = map[string]string{
			FieldBusinessName: "input[name='practice_name']",
			"doctorName":      "input[name='doctor_name']",
			"specialty":       "select[name='specialty']",
			FieldAddress:      "input[name='address']",
			FieldCity:         "input[name='city']",
			FieldState:        "select[name='state']",
			FieldZip:          "input[name='zip']",
			FieldPhone:        "input[name='phone']",
			FieldWebsite:      "input[name='website']",
			FieldEmail:        "input[name='email']",
			"insurance":       "input[name='insurance_accepted']",
		}
	case strings.Contains(name, "yelp") || category == "review-platform":
		special = FormReviewPlatform
		fields = map[string]string{
			FieldBusinessName: "input[name='name']",
			FieldAddress:      "input[name='address']",
			FieldCity:         "input[name='city']",
			FieldState:        "select[name='state']",
			FieldZip:          "input[name='zip_code']",
			FieldPhone:        "input[name='phone']",
			FieldWebsite:      "input[name='website']",
			FieldCategory:     "select[name='primary_category']",
			"hours":           "input[name='hours']",
			"photos":          "input[type='file'][name='photos']",
		}
	case strings.Contains(name, "facebook") || strings.Contains(category, "social"):
		special = FormSocialMedia
		fields = map[string]string{
			FieldBusinessName: "input[name='name']",
			FieldDescription:  "textarea[name='description']",
			FieldCategory:     "input[name='category']",
			FieldWebsite:      "input[name='website']",
			FieldPhone:        "input[name='phone']",
			FieldAddress:      "input[name='street']",
			FieldCity:         "input[name='city']",
			FieldState:        "input[name='state']",
			FieldZip:          "input[name='zip']",
			FieldEmail:        "input[name='email']",
		}
	default:
		special = FormStandardBusiness
		fields = make(map[string]string, len(standardFields))
		for _, f := range standardFields {
			fields[f] = standardSelectors[f][0]
		}
	}

	m := Mapping{
		Fields:           fields,
		SpecialForm:      special,
		FormType:         category,
		RequiredFields:   []string{FieldBusinessName, FieldAddress, FieldCity, FieldPhone},
		OptionalFields:   []string{FieldWebsite, FieldEmail, FieldDescription},
		SubmissionMethod: "POST",
		SuccessIndicators: []string{
			".success-message", ".confirmation", "text*=success", "text*=submitted", "text*=thank you",
		},
		ErrorIndicators: []string{
			".error-message", ".alert-danger", "text*=error", "text*=failed", "text*=required",
		},
		Captcha:                 CaptchaHint{Present: d.DomainAuthority > 70, Type: "simple"},
		AutomationComplexity:    "medium",
		EstimatedSubmissionTime: "30-60 seconds",
	}
	if d.DomainAuthority > 80 {
		m.Captcha.Type = "recaptcha"
	}
	if d.DomainAuthority > 70 {
		m.AutomationComplexity = "high"
	}

	return m
}
