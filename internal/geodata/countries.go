// Package geodata holds the static reference table of country land areas.
// The table is read-only after package init and safe for concurrent lookups.
package geodata

import (
	"sort"
	"strings"
)

// countryAreasKm2 maps country name to land area in square kilometers.
var countryAreasKm2 = map[string]float64{
	"Russia": 17098242, "Canada": 9984670,
	"China": 9706961, "United States": 9372610,
	"Brazil": 8515767, "Australia": 7692024,
	"India": 3287590, "Argentina": 2780400,
	"Kazakhstan": 2724900, "Algeria": 2381741,
	"DR Congo": 2344858, "Greenland": 2166086,
	"Saudi Arabia": 2149690, "Mexico": 1964375,
	"Indonesia": 1904569, "Sudan": 1886068,
	"Libya": 1759540, "Iran": 1648195,
	"Mongolia": 1564110, "Peru": 1285216,
	"Chad": 1284000, "Niger": 1267000,
	"Angola": 1246700, "Mali": 1240192,
	"South Africa": 1221037, "Colombia": 1141748,
	"Ethiopia": 1104300, "Bolivia": 1098581,
	"Mauritania": 1030700, "Egypt": 1002450,
	"Tanzania": 945087, "Nigeria": 923768,
	"Venezuela": 916445, "Pakistan": 881912,
	"Namibia": 825615, "Mozambique": 801590,
	"Turkey": 783562, "Chile": 756102,
	"Zambia": 752612, "Myanmar": 676578,
	"Afghanistan": 652230, "Somalia": 637657,
	"Central African Republic": 622984, "South Sudan": 619745,
	"Ukraine": 603500, "Madagascar": 587041,
	"Botswana": 582000, "Kenya": 580367,
	"France": 551695, "Yemen": 527968,
	"Thailand": 513120, "Spain": 505992,
	"Turkmenistan": 488100, "Cameroon": 475442,
	"Papua New Guinea": 462840, "Sweden": 450295,
	"Uzbekistan": 447400, "Morocco": 446550,
	"Iraq": 438317, "Paraguay": 406752,
	"Zimbabwe": 390757, "Japan": 377930,
	"Germany": 357114, "Philippines": 342353,
	"Congo": 342000, "Finland": 338424,
	"Vietnam": 331212, "Malaysia": 330803,
	"Norway": 323802, "Cote d'Ivoire": 322463,
	"Poland": 312679, "Oman": 309500,
	"Italy": 301336, "Ecuador": 276841,
	"Burkina Faso": 272967, "New Zealand": 270467,
	"Gabon": 267668, "Western Sahara": 266000,
	"Guinea": 245857, "United Kingdom": 242900,
	"Uganda": 241550, "Ghana": 238533,
	"Romania": 238391, "Laos": 236800,
	"Guyana": 214969, "Belarus": 207600,
	"Kyrgyzstan": 199951, "Senegal": 196722,
	"Syria": 185180, "Cambodia": 181035,
	"Uruguay": 181034, "Suriname": 163820,
	"Tunisia": 163610, "Bangladesh": 147570,
	"Nepal": 147181, "Tajikistan": 143100,
	"Greece": 131990, "Nicaragua": 130373,
	"North Korea": 120538, "Malawi": 118484,
	"Eritrea": 117600, "Benin": 112622,
	"Honduras": 112492, "Liberia": 111369,
	"Bulgaria": 110879, "Cuba": 109884,
	"Guatemala": 108889, "Iceland": 103000,
	"South Korea": 100210, "Hungary": 93028,
	"Portugal": 92090, "Jordan": 89342,
	"Serbia": 88361, "Azerbaijan": 86600,
	"Austria": 83871, "United Arab Emirates": 83600,
	"French Guiana": 83534, "Czechia": 78865,
	"Panama": 75417, "Sierra Leone": 71740,
	"Ireland": 70273, "Georgia": 69700,
	"Sri Lanka": 65610, "Lithuania": 65300,
	"Latvia": 64559, "Togo": 56785,
	"Croatia": 56594, "Bosnia and Herzegovina": 51209,
	"Costa Rica": 51100, "Slovakia": 49037,
	"Dominican Republic": 48671, "Estonia": 45227,
	"Denmark": 43094, "Netherlands": 41850,
	"Switzerland": 41284, "Bhutan": 38394,
	"Taiwan": 36193, "Guinea-Bissau": 36125,
	"Moldova": 33846, "Belgium": 30528,
	"Lesotho": 30355, "Armenia": 29743,
	"Solomon Islands": 28896, "Albania": 28748,
	"Equatorial Guinea": 28051, "Burundi": 27834,
	"Haiti": 27750, "Rwanda": 26338,
	"Republic of North Macedonia": 25713, "Djibouti": 23200,
	"Belize": 22966, "El Salvador": 21041,
	"Israel": 20770, "Slovenia": 20273,
	"New Caledonia": 18575, "Fiji": 18272,
	"Kuwait": 17818, "Eswatini": 17364,
	"Timor-Leste": 14874, "Bahamas": 13943,
	"Montenegro": 13812, "Vanuatu": 12189,
	"Falkland Islands": 12173, "Qatar": 11586,
	"Jamaica": 10991, "Gambia": 10689,
	"Lebanon": 10452, "Cyprus": 9251,
	"Puerto Rico": 8870, "State of Palestine": 6220,
	"Brunei Darussalam": 5765, "Trinidad and Tobago": 5130,
	"French Polynesia": 4167, "Cabo Verde": 4033,
	"Samoa": 2842, "Luxembourg": 2586,
	"Reunion": 2511, "Mauritius": 2040,
	"Comoros": 1862, "Guadeloupe": 1628,
	"Faeroe Islands": 1393, "Martinique": 1128,
	"Sao Tome and Principe": 964, "Turks and Caicos Islands": 948,
	"Kiribati": 811, "Bahrain": 765,
	"Dominica": 751, "Tonga": 747,
	"Singapore": 710, "Micronesia": 702,
	"Saint Lucia": 616, "Isle of Man": 572,
	"Guam": 549, "Andorra": 468,
	"Northern Mariana Islands": 464, "Palau": 459,
	"Seychelles": 452, "Curacao": 444,
	"Antigua and Barbuda": 442, "Barbados": 430,
	"Saint Helena": 394, "Saint Vincent and the Grenadines": 389,
	"Mayotte": 374, "United States Virgin Islands": 347,
	"Grenada": 344, "Caribbean Netherlands": 328,
	"Malta": 316, "Maldives": 300,
	"Cayman Islands": 264, "Saint Kitts and Nevis": 261,
	"Niue": 260, "Saint Pierre and Miquelon": 242,
	"Cook Islands": 236, "American Samoa": 199,
	"Marshall Islands": 181, "Aruba": 180,
	"Liechtenstein": 160, "British Virgin Islands": 151,
	"Wallis and Futuna Islands": 142, "Montserrat": 102,
	"Anguilla": 91, "San Marino": 61,
	"Bermuda": 54, "Saint Martin": 53,
	"Sint Maarten": 34, "Tuvalu": 26,
	"Nauru": 21, "Saint Barthelemy": 21,
	"Tokelau": 12, "Gibraltar": 6,
	"Monaco": 2,
}

// sortedNames is built once at init and never mutated.
var sortedNames = func() []string {
	names := make([]string, 0, len(countryAreasKm2))
	for name := range countryAreasKm2 {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Area returns a country's land area in square kilometers.
// The second return is false when the name is not in the table.
func Area(name string) (float64, bool) {
	area, ok := countryAreasKm2[name]
	return area, ok
}

// Names returns every country name in the table, sorted. The returned slice
// is shared; callers must not modify it.
func Names() []string {
	return sortedNames
}

// FilterPrefix returns the sorted country names beginning with prefix,
// compared case-insensitively. An empty prefix returns every name.
func FilterPrefix(prefix string) []string {
	if prefix == "" {
		return sortedNames
	}
	lower := strings.ToLower(prefix)
	var matches []string
	for _, name := range sortedNames {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			matches = append(matches, name)
		}
	}
	return matches
}
