package app

import "lifecounter/internal/domain"

// PlayerView is the render model for one seat.
type PlayerView struct {
	Index       int
	Name        string // stored name, possibly empty
	DisplayName string
	Life        int
	Poison      int
	Placement   domain.Placement
	Bounds      domain.Rect
}

// View is the read model handed to presentation layers: the roster snapshot
// joined with the seating layout for its player count.
type View struct {
	TableID      string
	PlayerCount  int
	StartingLife int
	Players      []PlayerView
}

// BuildView derives the read model for a roster.
func BuildView(tableID string, roster domain.Roster) View {
	players := roster.Players()
	count := len(players)

	view := View{
		TableID:      tableID,
		PlayerCount:  count,
		StartingLife: roster.StartingLife(),
		Players:      make([]PlayerView, 0, count),
	}
	for i, p := range players {
		placement := domain.Resolve(count, i)
		view.Players = append(view.Players, PlayerView{
			Index:       i,
			Name:        p.Name,
			DisplayName: p.DisplayName(i),
			Life:        p.Life,
			Poison:      p.Poison,
			Placement:   placement,
			Bounds:      placement.Region.Bounds(),
		})
	}
	return view
}
