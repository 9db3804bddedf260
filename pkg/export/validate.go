package export

import (
	"strings"
)

// emailRule flags rendered email HTML that some clients will show badly.
type emailRule struct {
	issue string
	bad   func(lower string) bool
}

var emailRules = []emailRule{
	{"Missing DOCTYPE declaration", func(s string) bool {
		return !strings.Contains(s, "doctype html")
	}},
	{"Missing VML namespace for Outlook compatibility", func(s string) bool {
		return !strings.Contains(s, `xmlns:v="urn:schemas-microsoft-com:vml"`)
	}},
	{"Missing Outlook conditional comments", func(s string) bool {
		return !strings.Contains(s, "<!--[if mso")
	}},
	{"No font-weight declarations, bold runs will not show", func(s string) bool {
		return !strings.Contains(s, "font-weight:")
	}},
	{"WARNING: CSS flexbox not supported in many email clients", func(s string) bool {
		return strings.Contains(s, "display: flex") || strings.Contains(s, "display:flex")
	}},
	{"WARNING: numeric font weights other than 400 and 700 may fall back in Outlook", func(s string) bool {
		for _, w := range []string{"100", "200", "300", "500", "600", "800", "900"} {
			if strings.Contains(s, "font-weight: "+w+";") {
				return true
			}
		}
		return false
	}},
}

// ValidateEmail checks rendered email HTML for client compatibility and
// returns the issues found, nil when there are none.
func ValidateEmail(html string) []string {
	lower := strings.ToLower(html)

	var issues []string
	for _, rule := range emailRules {
		if rule.bad(lower) {
			issues = append(issues, rule.issue)
		}
	}
	return issues
}
