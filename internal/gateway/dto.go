package gateway

type Sheet struct {
	ID         string     `json:"id"`
	Month      string     `json:"month"`
	Year       int        `json:"year"`
	Grid       [][]string `json:"grid"`
	BreakTotal string     `json:"break_total"`
	WorkTotal  string     `json:"work_total"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

type Totals struct {
	BreakHours       string `json:"break_hours"`
	WorkHours        string `json:"work_hours"`
	SkippedBreakRows []int  `json:"skipped_break_rows"`
	SkippedWorkRows  []int  `json:"skipped_work_rows"`
}
