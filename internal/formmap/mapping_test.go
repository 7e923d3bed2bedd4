package formmap_test

import (
	"testing"

	"directorybolt/internal/formmap"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestMappingFor(t *testing.T) {
	for name, tc := range map[string]struct {
		dir        domain.Directory
		special    string
		field      string
		selector   string
		captcha    formmap.CaptchaHint
		complexity string
	}{
		"google": {
			dir:        domain.Directory{Name: "Google Business Profile", Category: "search-engines", DomainAuthority: 100},
			special:    formmap.FormGoogleBusiness,
			field:      formmap.FieldBusinessName,
			selector:   "input[aria-label='Business name']",
			captcha:    formmap.CaptchaHint{Present: true, Type: "recaptcha"},
			complexity: "high",
		},
		"healthcare": {
			dir:        domain.Directory{Name: "Healthgrades", Category: "healthcare", DomainAuthority: 75},
			special:    formmap.FormHealthcare,
			field:      "specialty",
			selector:   "select[name='specialty']",
			captcha:    formmap.CaptchaHint{Present: true, Type: "simple"},
			complexity: "high",
		},
		"yelp": {
			dir:        domain.Directory{Name: "Yelp", Category: "local", DomainAuthority: 93},
			special:    formmap.FormReviewPlatform,
			field:      formmap.FieldZip,
			selector:   "input[name='zip_code']",
			captcha:    formmap.CaptchaHint{Present: true, Type: "recaptcha"},
			complexity: "high",
		},
		"social category": {
			dir:        domain.Directory{Name: "Nextdoor", Category: "social-media", DomainAuthority: 50},
			special:    formmap.FormSocialMedia,
			field:      formmap.FieldAddress,
			selector:   "input[name='street']",
			captcha:    formmap.CaptchaHint{Type: "simple"},
			complexity: "medium",
		},
		"standard": {
			dir:        domain.Directory{Name: "Hotfrog", DomainAuthority: 45},
			special:    formmap.FormStandardBusiness,
			field:      formmap.FieldState,
			selector:   "select[name='state']",
			captcha:    formmap.CaptchaHint{Type: "simple"},
			complexity: "medium",
		},
	} {
		t.Run(name, func(t *testing.T) {
			m := formmap.MappingFor(tc.dir)
			require.Equal(t, tc.special, m.SpecialForm)
			require.Equal(t, tc.selector, m.Fields[tc.field])
			require.Equal(t, tc.captcha, m.Captcha)
			require.Equal(t, tc.complexity, m.AutomationComplexity)
			require.Equal(t, "POST", m.SubmissionMethod)
			require.Equal(t, []string{"businessName", "address", "city", "phone"}, m.RequiredFields)
		})
	}

	require.Equal(t, "general-directory", formmap.MappingFor(domain.Directory{Name: "x"}).FormType)
	require.Len(t, formmap.MappingFor(domain.Directory{Name: "x"}).Fields, 10)
}

func TestStandardSelectors(t *testing.T) {
	sels := formmap.StandardSelectors()
	require.Len(t, sels, 10)
	require.Equal(t, "input[name='email']", sels[formmap.FieldEmail][0])

	sels[formmap.FieldEmail][0] = "changed"
	require.Equal(t, "input[name='email']", formmap.StandardSelectors()[formmap.FieldEmail][0])
}
