package lzw

// Stats describes one compress or expand run.
type Stats struct {
	// CodeWidth is the fixed code width W in bits.
	CodeWidth int `json:"code_width"`
	// InputBytes is the size of the data fed to the run.
	InputBytes int `json:"input_bytes"`
	// OutputBytes is the size of the data produced by the run.
	OutputBytes int `json:"output_bytes"`
	// CodesEmitted counts data codes written or read, excluding EOS.
	CodesEmitted int `json:"codes_emitted"`
	// CodesAssigned counts sequences learned beyond the 256 single bytes.
	CodesAssigned int `json:"codes_assigned"`
	// Frozen reports whether the code space was exhausted during the run.
	Frozen bool `json:"frozen"`
}

// Ratio returns compressed size divided by original size for a compress run,
// or the inverse for an expand run. Zero when the denominator is zero.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0.0
	}

	return float64(s.OutputBytes) / float64(s.InputBytes)
}
