package route

// FullChargeHours is the endurance assumed for a fully charged battery.
const FullChargeHours = 10.0

// TravelTime returns the hours needed to cover distance nautical miles at
// speed knots. speed is not guarded: zero gives +Inf (or NaN for a zero
// distance) and negative values give a negative duration.
func TravelTime(distance, speed float64) float64 {
	return distance / speed
}

// Endurance returns the hours left on a battery at batteryPct percent,
// scaling FullChargeHours linearly.
func Endurance(batteryPct float64) float64 {
	return batteryPct / 100 * FullChargeHours
}

// RemainingRange returns how many nautical miles are left at speed knots.
//
// powerDraw is accepted for API stability but the linear model ignores it:
// the result depends only on battery and speed.
func RemainingRange(batteryPct, powerDraw, speed float64) float64 {
	return Endurance(batteryPct) * speed
}
