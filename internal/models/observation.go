package models

// Observation is one parsed line of the observations log. Date is nil when
// the line carried no leading YYYY-MM-DD stamp.
type Observation struct {
	ID      int     `json:"id"`
	Date    *string `json:"date"`
	Content string  `json:"content"`
}
