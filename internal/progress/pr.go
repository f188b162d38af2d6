package progress

// EstimateOneRepMax estimates the one-rep max from a submaximal set using
// the Epley formula: weight x (1 + reps/30). A single rep returns the weight
// directly; non-positive reps or weight return 0.
func EstimateOneRepMax(weightKg float64, reps int) float64 {
	if reps <= 0 || weightKg <= 0 {
		return 0
	}
	if reps == 1 {
		return weightKg
	}
	return weightKg * (1 + float64(reps)/30)
}

// SetVolume is the training volume of one set: weight x reps.
func SetVolume(weightKg float64, reps int) float64 {
	if reps <= 0 || weightKg <= 0 {
		return 0
	}
	return weightKg * float64(reps)
}
