package entity

// Project is a real-estate development tracked for costs and unit sales.
type Project struct {
	ID        string
	Name      string
	Location  string
	Floors    int
	Units     int    // total sellable units; sales are not capped against it
	CreatedAt string // YYYY-MM-DD
}
