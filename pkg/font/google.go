package font

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/joeblew999/plat-bionic/pkg/log"
)

// GoogleFontsResponse represents the Google Fonts Web API response
type GoogleFontsResponse struct {
	Items []GoogleFontItem `json:"items"`
}

type GoogleFontItem struct {
	Family   string            `json:"family"`
	Variants []string          `json:"variants"`
	Files    map[string]string `json:"files"`
}

// GoogleSource lists font families and their styles from the Google Fonts Web API
type GoogleSource struct {
	APIURL string
	APIKey string
	Client *http.Client
}

// NewGoogleSource creates a source for the public Google Fonts Web API
func NewGoogleSource(apiKey string) *GoogleSource {
	return &GoogleSource{
		APIURL: GoogleFontsAPI,
		APIKey: apiKey,
		Client: http.DefaultClient,
	}
}

// Fetch returns every upright style of every family the API lists.
// Italic variants are skipped; bionic emphasis only varies weight.
func (s *GoogleSource) Fetch(ctx context.Context) ([]FontName, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google Fonts list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Fonts API returned status: %s", resp.Status)
	}

	var fontsResponse GoogleFontsResponse
	if err := json.NewDecoder(resp.Body).Decode(&fontsResponse); err != nil {
		return nil, fmt.Errorf("failed to parse Google Fonts response: %w", err)
	}

	var fonts []FontName
	for _, item := range fontsResponse.Items {
		for _, variant := range item.variants() {
			if style, ok := variantStyle(variant); ok {
				fonts = append(fonts, FontName{Family: item.Family, Style: style})
			}
		}
	}
	return fonts, nil
}

// Sync fetches the API listing and adds the given families (all families when
// none are given) to the catalog. It returns the number of fonts offered to
// the catalog.
func (s *GoogleSource) Sync(ctx context.Context, c *Catalog, families ...string) (int, error) {
	fonts, err := s.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	if len(families) > 0 {
		var selected []FontName
		for _, family := range families {
			matched := matchFamily(fonts, family)
			if len(matched) == 0 {
				log.Warn("Family not found in Google Fonts", "family", family)
			}
			selected = append(selected, matched...)
		}
		fonts = selected
	}

	if err := c.Add(fonts...); err != nil {
		return 0, fmt.Errorf("failed to update catalog: %w", err)
	}

	log.Info("Font catalog synced", "fonts", len(fonts), "catalog", c.Path())
	return len(fonts), nil
}

// matchFamily returns the fonts of family, exact case first, then ignoring case
func matchFamily(fonts []FontName, family string) []FontName {
	var matched []FontName
	for _, f := range fonts {
		if f.Family == family {
			matched = append(matched, f)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	for _, f := range fonts {
		if strings.EqualFold(f.Family, family) {
			matched = append(matched, f)
		}
	}
	return matched
}

func (s *GoogleSource) requestURL() string {
	if s.APIKey == "" {
		return s.APIURL
	}
	return s.APIURL + "?key=" + url.QueryEscape(s.APIKey)
}

// variants prefers the explicit variant list and falls back to the file keys
func (item GoogleFontItem) variants() []string {
	if len(item.Variants) > 0 {
		return item.Variants
	}
	variants := make([]string, 0, len(item.Files))
	for variant := range item.Files {
		variants = append(variants, variant)
	}
	slices.Sort(variants)
	return variants
}

// variantStyle converts a Google Fonts variant key ("regular", "700",
// "300italic") to a style name. Italic variants report false.
func variantStyle(variant string) (string, bool) {
	switch {
	case variant == "regular":
		return "Regular", true
	case strings.HasSuffix(variant, "italic"):
		return "", false
	default:
		return variant, true
	}
}

// ListGoogleFonts returns the families seeded into new catalogs
func ListGoogleFonts() []string {
	return DefaultFonts
}
