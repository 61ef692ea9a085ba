package segment

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// TissueStats summarizes how much of the slice one tissue class covers
// and the intensity distribution inside it.
type TissueStats struct {
	Tissue        Tissue  `json:"tissue"`
	Pixels        int     `json:"pixels"`
	Fraction      float64 `json:"fraction"`
	MeanIntensity float64 `json:"mean_intensity"`
	StdDev        float64 `json:"std_dev"`
}

// ComputeStats classifies every pixel of src and reports per-class pixel
// counts, area fractions and intensity moments. Classes are reported in
// order Background, CSF, GM, WM, including classes with zero pixels.
//
// For classes with fewer than two pixels the standard deviation is
// reported as zero.
func ComputeStats(src *image.Gray, bands []Band) []TissueStats {
	samples := map[Tissue][]float64{}

	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := src.GrayAt(x, y).Y
			t := Classify(v, bands)
			samples[t] = append(samples[t], float64(v))
		}
	}

	out := make([]TissueStats, 0, 4)
	for _, t := range []Tissue{Background, CSF, GM, WM} {
		vals := samples[t]
		s := TissueStats{Tissue: t, Pixels: len(vals)}
		if total > 0 {
			s.Fraction = float64(len(vals)) / float64(total)
		}
		switch {
		case len(vals) == 1:
			s.MeanIntensity = vals[0]
		case len(vals) > 1:
			s.MeanIntensity, s.StdDev = stat.MeanStdDev(vals, nil)
		}
		out = append(out, s)
	}
	return out
}
