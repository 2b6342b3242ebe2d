// internal/registry/tables.go
//
// Default production tables: one global market plus the Thailand and
// Malaysia markets.  Every fallback chain ends in eng-GB so any request
// can always be served.

package registry

// Default returns the Registry built from the shipped tables.  Call once
// at startup and inject the result; never rebuild per request.
func Default() *Registry {
	return New(Tables{
		Locales: []Locale{
			{Code: "eng-GB", DisplayName: "English (Global)"},
			{Code: "eng-MY", DisplayName: "English (Malaysia)"},
			{Code: "eng-TH", DisplayName: "English (Thailand)"},
			{Code: "tha-TH", DisplayName: "ภาษาไทย (Thai)"},
		},
		Markets: []Market{
			{Code: "global", Locales: []string{"eng-GB"}, URLPrefix: "/global-en"},
			{Code: "my", Locales: []string{"eng-MY", "eng-GB"}, URLPrefix: "/my-en"},
			{Code: "th", Locales: []string{"eng-TH", "tha-TH", "eng-GB"}, URLPrefix: "/th-en"},
		},
		Siteaccesses: []Siteaccess{
			{Name: "global-en", URLPrefix: "/global-en", Locale: "eng-GB", Market: "global"},
			{Name: "my-en", URLPrefix: "/my-en", Locale: "eng-MY", Market: "my"},
			{Name: "th-en", URLPrefix: "/th-en", Locale: "eng-TH", Market: "th"},
			{Name: "th-th", URLPrefix: "/th-th", Locale: "tha-TH", Market: "th"},
		},
	})
}
