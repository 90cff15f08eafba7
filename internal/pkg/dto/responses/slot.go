package responses

type Slot struct {
	SlotID    string `json:"slot_id,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Display   string `json:"display"`
}

type DecodedSlotID struct {
	SlotID    string `json:"slot_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Display   string `json:"display"`
}

type WeekRange struct {
	Week      int    `json:"week"`
	Year      int    `json:"year"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
}
