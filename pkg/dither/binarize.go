package dither

// Binary levels.
const (
	Black uint8 = 0
	White uint8 = 255
)

// DefaultCut is the cut used by Threshold and FloydSteinberg.
// It is 255/2 with integer truncation.
const DefaultCut uint8 = 127

// Binarize returns White when intensity is strictly above cut and Black
// otherwise.
func Binarize(intensity, cut uint8) uint8 {
	if intensity > cut {
		return White
	}
	return Black
}

// BinarizeDefault is Binarize with DefaultCut.
func BinarizeDefault(intensity uint8) uint8 {
	return Binarize(intensity, DefaultCut)
}

// Binarizer is implemented by grayscale samples that can be reduced
// to a binary level.
type Binarizer interface {
	Threshold() uint8
	ThresholdBy(cut uint8) uint8
}

// Sample is a single grayscale intensity.
type Sample uint8

// Threshold binarizes the sample with DefaultCut.
func (s Sample) Threshold() uint8 {
	return BinarizeDefault(uint8(s))
}

// ThresholdBy binarizes the sample with the given cut.
func (s Sample) ThresholdBy(cut uint8) uint8 {
	return Binarize(uint8(s), cut)
}

var _ Binarizer = Sample(0)
