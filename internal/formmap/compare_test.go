package formmap_test

import (
	"testing"

	"directorybolt/internal/formmap"
	"directorybolt/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	base := domain.FormSnapshot{
		DOMChecksum:     "dom1",
		FormSignature:   "sig1",
		ResolvedURL:     "https://example.com/add",
		HasCaptcha:      false,
		LikelyMultiStep: false,
	}

	same := base
	require.Empty(t, formmap.Compare(&base, &same))

	all := domain.FormSnapshot{
		DOMChecksum:     "dom2",
		FormSignature:   "sig2",
		ResolvedURL:     "https://example.com/login",
		HasCaptcha:      true,
		LikelyMultiStep: true,
	}
	require.Equal(t, []domain.FormChangeType{
		domain.FormChangeDOM,
		domain.FormChangeForms,
		domain.FormChangeCaptcha,
		domain.FormChangeStepHint,
		domain.FormChangeURL,
	}, formmap.Compare(&base, &all))

	dom := base
	dom.DOMChecksum = "dom3"
	require.Equal(t, []domain.FormChangeType{domain.FormChangeDOM}, formmap.Compare(&base, &dom))

	require.Nil(t, formmap.Compare(nil, &base))
}

func TestSanitizeSiteID(t *testing.T) {
	for in, want := range map[string]string{
		"yelp-com":            "yelp-com",
		"Yelp.com":            "yelp-com",
		"  Google Business! ": "google-business",
		"__a//b__":            "a-b",
		"--":                  "site",
		"":                    "site",
		"Crème_Brûlée":        "crème_brûlée",
	} {
		require.Equal(t, want, formmap.SanitizeSiteID(in), in)
	}
}
