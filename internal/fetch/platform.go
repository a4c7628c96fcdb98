package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	default:
		return PlatformUnknown
	}
}

// contentSelectors returns description selectors for the platform, most
// specific first.
func (p Platform) contentSelectors() []string {
	switch p {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
		}
	case PlatformLever:
		return []string{
			".posting-description",
			".posting-page",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".job-description",
		}
	default:
		return []string{
			".job-description",
			"#job-description",
			".job-content",
			".posting-content",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// noiseSelectors returns elements to strip before content selection:
// application forms, legal disclosures, and share widgets contribute
// tokens that pollute skill extraction.
func (p Platform) noiseSelectors() []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
	}

	switch p {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".voluntary-self-id", ".post-apply")
	case PlatformLever:
		return append(common, ".apply-section", ".posting-apply")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']", ".application-section")
	default:
		return common
	}
}
