package noise

// Fractal sums octaves of s, each scaled in frequency by lacunarity and in
// amplitude by persistence, and divides by the total amplitude so the result
// stays in the range of a single sample. One octave (or fewer) is a plain
// Sample.
func Fractal(s Sampler, octaves int, lacunarity, persistence float64, coords ...float64) float64 {
	if octaves <= 1 {
		return s.Sample(coords...)
	}

	var buf [maxStackDims]float64
	scaled := buf[:]
	if len(coords) > maxStackDims {
		scaled = make([]float64, len(coords))
	}
	scaled = scaled[:len(coords)]

	var total, maxAmp float64
	amp, freq := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		for k, c := range coords {
			scaled[k] = c * freq
		}
		total += s.Sample(scaled...) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}
	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
