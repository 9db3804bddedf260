package font

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// weightAlias maps a lowercase token found in a style name to a canonical weight.
type weightAlias struct {
	token  string
	weight int
}

// weightAliases is matched in declaration order and the first hit wins.
// The order is part of the behaviour: "extralight" must be seen before
// "light", "semibold" before "bold". Because "bold" precedes "extrabold",
// names such as "ExtraBold" resolve to 700.
var weightAliases = []weightAlias{
	{"thin", 100},
	{"hairline", 100},
	{"extralight", 200},
	{"extra light", 200},
	{"ultralight", 200},
	{"ultra light", 200},
	{"light", 300},
	{"regular", 400},
	{"normal", 400},
	{"book", 400},
	{"roman", 400},
	{"text", 400},
	{"medium", 500},
	{"semibold", 600},
	{"semi bold", 600},
	{"demibold", 600},
	{"demi bold", 600},
	{"bold", 700},
	{"extrabold", 800},
	{"extra bold", 800},
	{"ultrabold", 800},
	{"ultra bold", 800},
	{"black", 900},
	{"heavy", 900},
}

var numeralPattern = regexp.MustCompile(`\d+`)

// WeightToNumber maps a style name such as "Semi Bold" or "650" to a weight on
// the 100-900 scale. An embedded numeral is returned as written, clamped to the
// scale. Names with no recognised token map to DefaultFontWeight.
func WeightToNumber(name string) int {
	lower := strings.ToLower(name)

	if numeral := numeralPattern.FindString(lower); numeral != "" {
		n, err := strconv.Atoi(numeral)
		switch {
		case err == nil:
			return clampWeight(n)
		case errors.Is(err, strconv.ErrRange):
			return MaxWeight
		}
	}

	for _, alias := range weightAliases {
		if strings.Contains(lower, alias.token) {
			return alias.weight
		}
	}

	return DefaultFontWeight
}

func clampWeight(w int) int {
	return max(MinWeight, min(MaxWeight, w))
}
