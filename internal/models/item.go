package models

// Item is a single entry on the board.
// Its identity is its Title; ID only addresses the stored row.
type Item struct {
	ID       int
	Title    string
	Stage    Stage
	Position int // 0-based order within the stage
}

// Titles returns the titles of items in order
func Titles(items []*Item) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}
