package services

// ComputePoints awards points for a prediction once the actual review score
// is known: exact match is worth 6, within two points 3, within three points
// 1, anything further 0. The bands overlap, so the check order matters — a
// difference of exactly 2 lands in the 3-point band, not the 1-point one.
func ComputePoints(predictionScore, actualScore int) int {
	diff := predictionScore - actualScore
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return 6
	case diff <= 2:
		return 3
	case diff <= 3:
		return 1
	default:
		return 0
	}
}
