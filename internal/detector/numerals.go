package detector

// numeralWords maps the Arabic spellings of the integers 1-10 (spec §4.1)
// to their value. Arabic numerals inflect for gender against the counted
// noun, so both the masculine and feminine spelling are listed for most
// values; entries are deliberately redundant rather than normalized away,
// since the detector never needs to know which form goes with which noun.
var numeralWords = map[string]int{
	"واحد": 1, "واحدة": 1,
	"اثنان": 2, "اثنين": 2, "اثنتان": 2, "اثنتين": 2,
	"ثلاثة": 3, "ثلاث": 3,
	"أربعة": 4, "أربع": 4,
	"خمسة": 5, "خمس": 5,
	"ستة": 6, "ست": 6,
	"سبعة": 7, "سبع": 7,
	"ثمانية": 8, "ثمان": 8,
	"تسعة": 9, "تسع": 9,
	"عشرة": 10, "عشر": 10,
}

// numeralValue looks up an Arabic numeral word, reporting whether it was
// recognized at all so callers can distinguish "zero" from "not a number".
func numeralValue(word string) (int, bool) {
	v, ok := numeralWords[word]
	return v, ok
}
