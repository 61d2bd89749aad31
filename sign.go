package roots

// Sign classifies a real number by its relation to zero.
type Sign int

// The three sign classes. Negative < Zero < Positive, so Sign values
// order the same way the numbers they classify do.
const (
	Negative Sign = iota - 1
	Zero
	Positive
)

// CheckSign classifies x as Negative (x < 0), Positive (x > 0) or Zero.
//
// Total over all finite and infinite inputs. NaN compares false against
// everything and therefore classifies as Zero; callers must not rely on
// any particular classification for NaN.
//
// Complexity: O(1).
func CheckSign(x float64) Sign {
	switch {
	case x < 0:
		return Negative
	case x > 0:
		return Positive
	default:
		return Zero
	}
}

// String returns the class name: "Negative", "Zero" or "Positive".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Zero"
	}
}
