package domain

type TextStats struct {
	Characters         int
	CharactersNoSpaces int
	Words              int
	Lines              int
	Paragraphs         int
	Sentences          int
}

type JSONStats struct {
	Characters int
	Size       int
	Keys       int
	Values     int
	Objects    int
	Arrays     int
}

type UUIDInput struct {
	Version string // "v4", "v1"
	Count   int
}

type RGB struct {
	R, G, B int
}

// HSL holds hue in degrees and saturation/lightness in percent.
type HSL struct {
	H, S, L int
}

type ColorResult struct {
	Hex string
	RGB RGB
	HSL HSL
}

type CalculatorInput struct {
	Expression string
}

type CalculatorResult struct {
	Expression string
	Value      float64
}
