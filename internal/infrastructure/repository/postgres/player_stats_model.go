package postgres

import "github.com/riskibarqy/hockey-stats/internal/domain/playerstats"

type skaterStatTableModel struct {
	ID            int64 `db:"id,readonly"`
	GameID        int64 `db:"game_id"`
	PlayerID      int64 `db:"player_id"`
	Goals         int   `db:"goals"`
	Assists       int   `db:"assists"`
	Shots         int   `db:"shots"`
	PPG           int   `db:"ppg"`
	PPA           int   `db:"ppa"`
	SHG           int   `db:"shg"`
	SHA           int   `db:"sha"`
	GWG           int   `db:"gwg"`
	OTG           int   `db:"otg"`
	PlusMinus     int   `db:"plus_minus"`
	Hits          int   `db:"hits"`
	Blocked       int   `db:"blocked"`
	Giveaways     int   `db:"giveaways"`
	Takeaways     int   `db:"takeaways"`
	FaceoffWins   int   `db:"fow"`
	FaceoffLosses int   `db:"fol"`
	TOISeconds    int   `db:"toi_seconds"`
	PPTOISeconds  int   `db:"pp_toi_seconds"`
	PKTOISeconds  int   `db:"pk_toi_seconds"`
	PIM           int   `db:"pim"`
	Majors        int   `db:"majors"`
	Misconducts   int   `db:"misconducts"`
}

type goalieStatTableModel struct {
	ID           int64 `db:"id,readonly"`
	GameID       int64 `db:"game_id"`
	PlayerID     int64 `db:"player_id"`
	GP           int   `db:"gp"`
	Wins         int   `db:"w"`
	Losses       int   `db:"l"`
	OT           int   `db:"ot"`
	ShotsAgainst int   `db:"sa"`
	Saves        int   `db:"saves"`
	GoalsAgainst int   `db:"ga"`
	Shutout      int   `db:"so"`
	TOISeconds   int   `db:"toi_seconds"`
}

// The stat rows map one to one, so plain struct conversion keeps the
// column list and the domain type in lock step.
func skaterStatToRow(item playerstats.SkaterStat) skaterStatTableModel {
	return skaterStatTableModel(item)
}

func (row skaterStatTableModel) toDomain() playerstats.SkaterStat {
	return playerstats.SkaterStat(row)
}

func goalieStatToRow(item playerstats.GoalieStat) goalieStatTableModel {
	return goalieStatTableModel(item)
}

func (row goalieStatTableModel) toDomain() playerstats.GoalieStat {
	return playerstats.GoalieStat(row)
}
