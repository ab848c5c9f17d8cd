package mines

const DefaultThreshold = 23

// DigitSum returns the sum of the decimal digits of |v|.
func DigitSum(v int) (sum int) {
	/*
	 * Digits are taken from v directly rather than from -v so that
	 * math.MinInt does not overflow.
	 */
	for v != 0 {
		d := v % 10
		if d < 0 {
			d = -d
		}
		sum += d
		v /= 10
	}
	return
}

// Field is the infinite grid. A cell is a mine when the digit sums of
// its coordinates add up to more than Threshold.
type Field struct {
	Threshold int
}

func NewField(threshold int) Field {
	return Field{Threshold: threshold}
}

func (f Field) MineAt(x, y int) bool {
	return DigitSum(x)+DigitSum(y) > f.Threshold
}

func (f Field) SafeAt(x, y int) bool {
	return !f.MineAt(x, y)
}
