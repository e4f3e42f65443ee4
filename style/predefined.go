package style

// Predefined baseline styles. This is a representative subset of the
// CSS Counter Styles predefined set, enough to exercise every system;
// the long tail of locale-specific styles ships as styleconf documents
// rather than code.

func str(s string) *string { return &s }

func rangePtr(r Range) *Range { return &r }

// builtinDecimal is the terminal style of every fallback chain: numeric
// base ten over all integers, so it represents every magnitude. It also
// answers lookups on a registry that somehow lacks a "decimal" entry.
var builtinDecimal = MustNew(Config{
	Name:    "decimal",
	System:  Numeric,
	Symbols: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
})

var lowerRomanTable = []AdditiveSymbol{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

var upperRomanTable = []AdditiveSymbol{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var predefined = []*Definition{
	builtinDecimal,

	MustNew(Config{
		Name:      "decimal-leading-zero",
		System:    Numeric,
		Symbols:   []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
		PadLength: 2,
		PadSymbol: "0",
	}),

	MustNew(Config{
		Name:    "binary",
		System:  Numeric,
		Symbols: []string{"0", "1"},
	}),

	MustNew(Config{
		Name:    "lower-hexadecimal",
		System:  Numeric,
		Symbols: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f"},
	}),

	MustNew(Config{
		Name:    "upper-hexadecimal",
		System:  Numeric,
		Symbols: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "A", "B", "C", "D", "E", "F"},
	}),

	MustNew(Config{
		Name:   "lower-alpha",
		System: Alphabetic,
		Symbols: []string{
			"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
			"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
		},
	}),

	MustNew(Config{
		Name:   "upper-alpha",
		System: Alphabetic,
		Symbols: []string{
			"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
			"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
		},
	}),

	MustNew(Config{
		Name:            "lower-roman",
		System:          Additive,
		AdditiveSymbols: lowerRomanTable,
		Range:           rangePtr(Bounded(1, 3999)),
	}),

	MustNew(Config{
		Name:            "upper-roman",
		System:          Additive,
		AdditiveSymbols: upperRomanTable,
		Range:           rangePtr(Bounded(1, 3999)),
	}),

	MustNew(Config{
		Name:    "disc",
		System:  Cyclic,
		Symbols: []string{"•"},
		Suffix:  str(" "),
	}),

	MustNew(Config{
		Name:    "circle",
		System:  Cyclic,
		Symbols: []string{"◦"},
		Suffix:  str(" "),
	}),

	MustNew(Config{
		Name:    "square",
		System:  Cyclic,
		Symbols: []string{"▪"},
		Suffix:  str(" "),
	}),

	MustNew(Config{
		Name:    "cjk-decimal",
		System:  Numeric,
		Symbols: []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		Range:   rangePtr(AtLeast(0)),
		Suffix:  str("、"),
	}),

	MustNew(Config{
		Name:    "cjk-heavenly-stem",
		System:  Fixed,
		Symbols: []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"},
		Suffix:  str("、"),
	}),

	MustNew(Config{
		Name:   "hiragana",
		System: Alphabetic,
		Symbols: []string{
			"あ", "い", "う", "え", "お", "か", "き", "く", "け", "こ",
			"さ", "し", "す", "せ", "そ", "た", "ち", "つ", "て", "と",
			"な", "に", "ぬ", "ね", "の", "は", "ひ", "ふ", "へ", "ほ",
			"ま", "み", "む", "め", "も", "や", "ゆ", "よ",
			"ら", "り", "る", "れ", "ろ", "わ", "ゐ", "ゑ", "を", "ん",
		},
		Suffix: str("、"),
	}),
}

// PredefinedNames lists the baseline styles a fresh registry is seeded
// with, in registration order.
func PredefinedNames() []string {
	names := make([]string, len(predefined))
	for i, d := range predefined {
		names[i] = d.name
	}
	return names
}
