package notify

import "encoding/gob"

func init() {
	// Session cookies are gob-encoded; flashes carry Notice values.
	gob.Register(Notice{})
}
