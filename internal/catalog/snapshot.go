package catalog

import "github.com/adamtorokhu/BriefBeer/internal/domain"

// Snapshot is the published view of one catalog session. It is always
// replaced wholesale, never mutated in place, so watchers see atomic
// states.
type Snapshot struct {
	AllBreweries []domain.ListItem
	Filtered     []domain.ListItem
	Favorites    []domain.FavoriteBrewery
	Selected     *domain.Brewery
	Query        string
	TypeFilter   string
	IsLoading    bool
	Notice       *Notice
}

// Notice is a transient, dismissible user-facing message. At most one
// is pending; a new notice replaces the previous one.
type Notice struct {
	ID     string
	Text   string
	Action *NoticeAction
}

// NoticeAction is an optional single suggested action attached to a
// notice, such as adding a scanned product as a new record.
type NoticeAction struct {
	Label  string
	Record *domain.Brewery
}
