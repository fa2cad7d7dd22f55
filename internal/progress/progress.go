package progress

import "time"

// XPPerLevel is the number of coach replies that advance one level.
const XPPerLevel = 10

// DateLayout is the calendar-date form used for session tracking.
const DateLayout = "2006-01-02"

// Progress is the persisted coaching record. Level and XP within the
// level are derived from TotalMessages and never stored. Dates are
// local calendar dates in DateLayout form; empty means never.
type Progress struct {
	TotalMessages    int    `json:"total_messages"`
	SessionsCount    int    `json:"sessions_count"`
	LastSessionDate  string `json:"last_session_date"`
	FirstSessionDate string `json:"first_session_date"`
}

// Level returns the level derived from a total reply count.
func Level(totalMessages int) int {
	return totalMessages/XPPerLevel + 1
}

// LevelXP returns how far into the current level a total reply count sits.
func LevelXP(totalMessages int) int {
	return totalMessages % XPPerLevel
}

// DateOf formats a moment as its calendar date in the machine's local
// timezone. All session boundaries use this basis.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// TrackSession counts today as an active session at most once. Calling
// it again with the same date returns the record unchanged.
// FirstSessionDate is set only the first time any session is counted.
func TrackSession(p Progress, today string) Progress {
	if p.LastSessionDate == today {
		return p
	}
	p.SessionsCount++
	p.LastSessionDate = today
	if p.FirstSessionDate == "" {
		p.FirstSessionDate = today
	}
	return p
}

// ApplyReply records one completed exchange and reports whether the
// extra message crossed a level boundary.
func ApplyReply(p Progress) (updated Progress, leveledUp bool, newLevel int) {
	prevLevel := Level(p.TotalMessages)
	p.TotalMessages++
	newLevel = Level(p.TotalMessages)
	return p, newLevel > prevLevel, newLevel
}
