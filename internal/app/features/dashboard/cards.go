// internal/app/features/dashboard/cards.go
package dashboard

// statCard is one metric tile.
type statCard struct {
	Title    string
	Value    int64
	Subtitle string
	Icon     string
	Color    string
	BgColor  string
}

// quickAction is a shortcut button. Href is empty for actions that have
// no page yet; those render disabled.
type quickAction struct {
	Label string
	Icon  string
	Href  string
}
