package core

// Fill sets every value in buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// Zero sets every value in buf to 0.
func Zero(buf []float64) {
	Fill(buf, 0)
}
