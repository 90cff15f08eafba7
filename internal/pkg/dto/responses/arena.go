package responses

type Arena struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	IntervalMinutes int    `json:"interval_minutes"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	IsDefault       bool   `json:"is_default"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
	IsDefault bool   `json:"is_default"`
}

type ArenaSlots struct {
	ArenaID         int64  `json:"arena_id"`
	Date            string `json:"date"`
	IntervalMinutes int    `json:"interval_minutes"`
	Slots           []Slot `json:"slots"`
}
