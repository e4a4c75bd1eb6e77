package appstore

import (
	"fmt"
	"strings"
)

// storefronts maps two-letter country codes to the numeric storefront ids
// the MZStore endpoints expect in the X-Apple-Store-Front header and the
// feed's "s" parameter.
var storefronts = map[string]int{
	"ae": 143481,
	"ar": 143505,
	"at": 143445,
	"au": 143460,
	"be": 143446,
	"bg": 143526,
	"br": 143503,
	"ca": 143455,
	"ch": 143459,
	"cl": 143483,
	"cn": 143465,
	"co": 143501,
	"cy": 143557,
	"cz": 143489,
	"de": 143443,
	"dk": 143458,
	"ee": 143518,
	"eg": 143516,
	"es": 143454,
	"fi": 143447,
	"fr": 143442,
	"gb": 143444,
	"gr": 143448,
	"hk": 143463,
	"hr": 143494,
	"hu": 143482,
	"id": 143476,
	"ie": 143449,
	"il": 143491,
	"in": 143467,
	"is": 143558,
	"it": 143450,
	"jp": 143462,
	"kr": 143466,
	"lt": 143520,
	"lu": 143451,
	"lv": 143519,
	"mt": 143521,
	"mx": 143468,
	"my": 143473,
	"ng": 143561,
	"nl": 143452,
	"no": 143457,
	"nz": 143461,
	"ph": 143474,
	"pk": 143477,
	"pl": 143478,
	"pt": 143453,
	"qa": 143498,
	"ro": 143487,
	"ru": 143469,
	"sa": 143479,
	"se": 143456,
	"sg": 143464,
	"si": 143499,
	"sk": 143496,
	"th": 143475,
	"tr": 143480,
	"tw": 143470,
	"ua": 143492,
	"us": 143441,
	"vn": 143471,
	"za": 143472,
}

// StorefrontID resolves a two-letter country code (case insensitive) to its
// numeric storefront id.
func StorefrontID(country string) (int, error) {
	id, ok := storefronts[strings.ToLower(country)]
	if !ok {
		return 0, fmt.Errorf("country code not found for %q", country)
	}
	return id, nil
}

// Countries lists every country code with a known storefront id.
func Countries() []string {
	out := make([]string, 0, len(storefronts))
	for code := range storefronts {
		out = append(out, code)
	}
	return out
}
