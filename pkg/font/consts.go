package font

const (
	// GoogleFontsAPI is the Google Fonts developer API listing every family and its variants
	GoogleFontsAPI = "https://www.googleapis.com/webfonts/v1/webfonts"

	// CatalogFilename is the name of the font catalog file
	CatalogFilename = "catalog.json"

	// MinWeight and MaxWeight bound the canonical weight scale
	MinWeight = 100
	MaxWeight = 900

	// DefaultFontWeight is returned for style names that carry no recognisable weight
	DefaultFontWeight = 400

	// MinStylesForContrast is the number of distinct styles a family needs before
	// a heavier weight can be picked for emphasis
	MinStylesForContrast = 2
)

// DefaultContrastSteps are offered when no selection shows more than three weights (low, medium, high).
var DefaultContrastSteps = []int{300, 600, 900}

// forcedContrastSteps are always offered once a finer grid is generated.
var forcedContrastSteps = []int{100, 450, 900}

// DefaultFonts contains the families seeded into an empty catalog
var DefaultFonts = []string{
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Source Sans Pro",
	"Oswald",
	"Raleway",
	"Poppins",
	"Inter",
	"Ubuntu",
}
