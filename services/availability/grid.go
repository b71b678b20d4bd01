package availability

import "salonbook/models"

// DefaultGranularity is the spacing between candidate start times, in minutes.
const DefaultGranularity = 30

// GenerateGrid returns every candidate start time t of the day with
// openTime <= t < closeTime, stepping by granularity from openTime.
// A closed day, or a close time at or before the open time, has no slots.
// Whether a slot's appointment fits before closing is not checked here.
func GenerateGrid(wh models.WorkingHours, granularity int) []models.ClockTime {
	if wh.IsClosed || granularity <= 0 {
		return nil
	}
	if wh.CloseTime <= wh.OpenTime {
		return nil
	}

	grid := make([]models.ClockTime, 0, (int(wh.CloseTime-wh.OpenTime)+granularity-1)/granularity)
	for t := wh.OpenTime; t < wh.CloseTime; t += models.ClockTime(granularity) {
		grid = append(grid, t)
	}
	return grid
}
