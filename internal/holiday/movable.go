package holiday

// Movable feast keys.
const (
	Nineveh       = "nineveh"
	AbiyTsome     = "abiyTsome"
	DebreZeit     = "debreZeit"
	Hosanna       = "hosanna"
	Siklet        = "siklet"
	Fasika        = "fasika"
	RikbeKahnat   = "rikbeKahnat"
	Erget         = "erget"
	Paraclete     = "paraclete"
	TsomeHawaryat = "tsomeHawaryat"
	TsomeDihnet   = "tsomeDihnet"
)

// movableOffsets lists each movable feast with its distance in days from
// the Fast of Nineveh, in calendar order.
var movableOffsets = []struct {
	key    string
	offset int
}{
	{Nineveh, 0},
	{AbiyTsome, 14},
	{DebreZeit, 41},
	{Hosanna, 62},
	{Siklet, 67},
	{Fasika, 69},
	{RikbeKahnat, 93},
	{Erget, 108},
	{Paraclete, 118},
	{TsomeHawaryat, 119},
	{TsomeDihnet, 121},
}

// MovableOffset returns the number of days between Nineveh and the feast.
func MovableOffset(key string) (int, bool) {
	for _, m := range movableOffsets {
		if m.key == key {
			return m.offset, true
		}
	}
	return 0, false
}

// MovableKeys returns the movable feast keys in calendar order.
func MovableKeys() []string {
	keys := make([]string, len(movableOffsets))
	for i, m := range movableOffsets {
		keys[i] = m.key
	}
	return keys
}
