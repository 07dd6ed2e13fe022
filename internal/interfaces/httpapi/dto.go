package httpapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hockey-stats/internal/domain/game"
	"github.com/riskibarqy/hockey-stats/internal/domain/player"
	"github.com/riskibarqy/hockey-stats/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-stats/internal/domain/season"
	"github.com/riskibarqy/hockey-stats/internal/domain/team"
	"github.com/riskibarqy/hockey-stats/internal/domain/teamstats"
	"github.com/riskibarqy/hockey-stats/internal/usecase"
)

// gameDateLayout is how game times are rendered: ISO local time in UTC.
const gameDateLayout = "2006-01-02T15:04:05"

// Accepted game date inputs, most specific first. Inputs without an offset
// are read as UTC.
var gameDateInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseGameDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range gameDateInputLayouts {
		if v, err := time.Parse(layout, raw); err == nil {
			return v.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date must be an ISO 8601 date or datetime", usecase.ErrInvalidInput)
}

type createTeamRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Short string `json:"short" validate:"required,max=10"`
}

type createPlayerRequest struct {
	Handle   string `json:"handle" validate:"required,max=100"`
	Position string `json:"position" validate:"required,max=20"`
	Number   *int   `json:"number" validate:"omitempty,min=0,max=99"`
	TeamID   *int64 `json:"team_id" validate:"omitempty,gt=0"`
}

type createGameRequest struct {
	Date       string `json:"date" validate:"required,max=40"`
	HomeTeamID int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64  `json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	Round      string `json:"round" validate:"omitempty,max=50"`
}

type recordScoreRequest struct {
	HomeScore *int `json:"home_score" validate:"required,min=0"`
	AwayScore *int `json:"away_score" validate:"required,min=0"`
}

// Stat line requests only check shape; numbers are stored as submitted.
type skaterStatRequest struct {
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	Shots         int `json:"shots"`
	PPG           int `json:"ppg"`
	PPA           int `json:"ppa"`
	SHG           int `json:"shg"`
	SHA           int `json:"sha"`
	GWG           int `json:"gwg"`
	OTG           int `json:"otg"`
	PlusMinus     int `json:"plus_minus"`
	Hits          int `json:"hits"`
	Blocked       int `json:"blocked"`
	Giveaways     int `json:"giveaways"`
	Takeaways     int `json:"takeaways"`
	FaceoffWins   int `json:"faceoff_wins"`
	FaceoffLosses int `json:"faceoff_losses"`
	TOISeconds    int `json:"toi_seconds"`
	PPTOISeconds  int `json:"pp_toi_seconds"`
	PKTOISeconds  int `json:"pk_toi_seconds"`
	PIM           int `json:"pim"`
	Majors        int `json:"majors"`
	Misconducts   int `json:"misconducts"`
}

func (r skaterStatRequest) toStat() playerstats.SkaterStat {
	return playerstats.SkaterStat{
		Goals:         r.Goals,
		Assists:       r.Assists,
		Shots:         r.Shots,
		PPG:           r.PPG,
		PPA:           r.PPA,
		SHG:           r.SHG,
		SHA:           r.SHA,
		GWG:           r.GWG,
		OTG:           r.OTG,
		PlusMinus:     r.PlusMinus,
		Hits:          r.Hits,
		Blocked:       r.Blocked,
		Giveaways:     r.Giveaways,
		Takeaways:     r.Takeaways,
		FaceoffWins:   r.FaceoffWins,
		FaceoffLosses: r.FaceoffLosses,
		TOISeconds:    r.TOISeconds,
		PPTOISeconds:  r.PPTOISeconds,
		PKTOISeconds:  r.PKTOISeconds,
		PIM:           r.PIM,
		Majors:        r.Majors,
		Misconducts:   r.Misconducts,
	}
}

type goalieStatRequest struct {
	GP           *int `json:"gp"`
	Wins         int  `json:"wins"`
	Losses       int  `json:"losses"`
	OT           int  `json:"ot"`
	ShotsAgainst int  `json:"shots_against"`
	Saves        int  `json:"saves"`
	GoalsAgainst int  `json:"goals_against"`
	Shutout      int  `json:"shutout"`
	TOISeconds   int  `json:"toi_seconds"`
}

func (r goalieStatRequest) toLine() usecase.GoalieLine {
	return usecase.GoalieLine{
		GP:           r.GP,
		Wins:         r.Wins,
		Losses:       r.Losses,
		OT:           r.OT,
		ShotsAgainst: r.ShotsAgainst,
		Saves:        r.Saves,
		GoalsAgainst: r.GoalsAgainst,
		Shutout:      r.Shutout,
		TOISeconds:   r.TOISeconds,
	}
}

type teamStatRequest struct {
	Goals             int `json:"goals"`
	Shots             int `json:"shots"`
	PPGoals           int `json:"pp_goals"`
	PPAttempts        int `json:"pp_attempts"`
	PKGoalsAgainst    int `json:"pk_goals_against"`
	PKAttemptsAgainst int `json:"pk_attempts_against"`
	FaceoffWins       int `json:"faceoff_wins"`
	FaceoffLosses     int `json:"faceoff_losses"`
	Saves             int `json:"saves"`
	ShotsAgainst      int `json:"shots_against"`
}

func (r teamStatRequest) toStat() teamstats.TeamStat {
	return teamstats.TeamStat{
		Goals:             r.Goals,
		Shots:             r.Shots,
		PPGoals:           r.PPGoals,
		PPAttempts:        r.PPAttempts,
		PKGoalsAgainst:    r.PKGoalsAgainst,
		PKAttemptsAgainst: r.PKAttemptsAgainst,
		FaceoffWins:       r.FaceoffWins,
		FaceoffLosses:     r.FaceoffLosses,
		Saves:             r.Saves,
		ShotsAgainst:      r.ShotsAgainst,
	}
}

type boxscoreSkaterRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	skaterStatRequest
}

type boxscoreGoalieRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	goalieStatRequest
}

type boxscoreTeamRequest struct {
	TeamID int64 `json:"team_id" validate:"required,gt=0"`
	teamStatRequest
}

type ingestBoxscoreRequest struct {
	Skaters []boxscoreSkaterRequest `json:"skaters" validate:"dive"`
	Goalies []boxscoreGoalieRequest `json:"goalies" validate:"dive"`
	Teams   []boxscoreTeamRequest   `json:"teams" validate:"dive"`
}

func (r ingestBoxscoreRequest) toInput() usecase.IngestBoxscoreInput {
	input := usecase.IngestBoxscoreInput{
		Skaters: make([]usecase.BoxscoreSkater, 0, len(r.Skaters)),
		Goalies: make([]usecase.BoxscoreGoalie, 0, len(r.Goalies)),
		Teams:   make([]usecase.BoxscoreTeam, 0, len(r.Teams)),
	}
	for _, s := range r.Skaters {
		input.Skaters = append(input.Skaters, usecase.BoxscoreSkater{PlayerID: s.PlayerID, Line: s.toStat()})
	}
	for _, g := range r.Goalies {
		input.Goalies = append(input.Goalies, usecase.BoxscoreGoalie{PlayerID: g.PlayerID, Line: g.toLine()})
	}
	for _, t := range r.Teams {
		input.Teams = append(input.Teams, usecase.BoxscoreTeam{TeamID: t.TeamID, Line: t.toStat()})
	}
	return input
}

type teamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
}

type playerDTO struct {
	ID       int64  `json:"id"`
	Handle   string `json:"handle"`
	Position string `json:"position"`
	Number   *int   `json:"number"`
	TeamID   *int64 `json:"team_id"`
}

type gameDTO struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	HomeTeamID     int64  `json:"home_team_id"`
	AwayTeamID     int64  `json:"away_team_id"`
	HomeScore      int    `json:"home_score"`
	AwayScore      int    `json:"away_score"`
	Round          string `json:"round,omitempty"`
	ScreenshotPath string `json:"screenshot_path,omitempty"`
	Status         string `json:"status"`
}

type skaterStatDTO struct {
	ID       int64 `json:"id"`
	GameID   int64 `json:"game_id"`
	PlayerID int64 `json:"player_id"`
	skaterStatRequest
}

type goalieStatDTO struct {
	ID           int64 `json:"id"`
	GameID       int64 `json:"game_id"`
	PlayerID     int64 `json:"player_id"`
	GP           int   `json:"gp"`
	Wins         int   `json:"wins"`
	Losses       int   `json:"losses"`
	OT           int   `json:"ot"`
	ShotsAgainst int   `json:"shots_against"`
	Saves        int   `json:"saves"`
	GoalsAgainst int   `json:"goals_against"`
	Shutout      int   `json:"shutout"`
	TOISeconds   int   `json:"toi_seconds"`
}

type teamStatDTO struct {
	ID     int64 `json:"id"`
	GameID int64 `json:"game_id"`
	TeamID int64 `json:"team_id"`
	teamStatRequest
}

type boxscoreDTO struct {
	Game    gameDTO         `json:"game"`
	Skaters []skaterStatDTO `json:"skaters"`
	Goalies []goalieStatDTO `json:"goalies"`
}

type ingestBoxscoreDTO struct {
	Skaters []skaterStatDTO `json:"skaters"`
	Goalies []goalieStatDTO `json:"goalies"`
	Teams   []teamStatDTO   `json:"teams"`
}

type screenshotDTO struct {
	Path string  `json:"path"`
	Game gameDTO `json:"game"`
}

type goalieTotalsDTO struct {
	GP           int `json:"gp"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	OT           int `json:"ot"`
	ShotsAgainst int `json:"shots_against"`
	Saves        int `json:"saves"`
	GoalsAgainst int `json:"goals_against"`
	Shutouts     int `json:"shutouts"`
	TOISeconds   int `json:"toi_seconds"`
}

type playerTotalsDTO struct {
	PlayerID   int64           `json:"player_id"`
	Player     string          `json:"player"`
	Position   string          `json:"position"`
	TeamID     *int64          `json:"team_id"`
	Games      int             `json:"games"`
	Goals      int             `json:"goals"`
	Assists    int             `json:"assists"`
	Points     int             `json:"points"`
	Shots      int             `json:"shots"`
	PlusMinus  int             `json:"plus_minus"`
	PPG        int             `json:"ppg"`
	SHG        int             `json:"shg"`
	GWG        int             `json:"gwg"`
	Hits       int             `json:"hits"`
	Blocked    int             `json:"blocked"`
	PIM        int             `json:"pim"`
	TOISeconds int             `json:"toi_seconds"`
	Goalie     goalieTotalsDTO `json:"goalie"`
}

type leaderDTO struct {
	playerTotalsDTO
	SavePct *float64 `json:"savepct,omitempty"`
}

type standingDTO struct {
	TeamID int64  `json:"team_id"`
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	OT     int    `json:"ot"`
	GF     int    `json:"gf"`
	GA     int    `json:"ga"`
	Points int    `json:"points"`
}

type vezinaDTO struct {
	PlayerID int64   `json:"player_id"`
	Player   string  `json:"player"`
	TeamID   *int64  `json:"team_id"`
	SavePct  float64 `json:"savepct"`
	Wins     int     `json:"wins"`
}

// emptyAward is rendered when an award has no candidate.
type emptyAward struct{}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{ID: v.ID, Name: v.Name, Short: v.Short}
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:       v.ID,
		Handle:   v.Handle,
		Position: string(v.Position),
		Number:   v.Number,
		TeamID:   v.TeamID,
	}
}

func gameToDTO(ctx context.Context, v game.Game) gameDTO {
	ctx, span := startSpan(ctx, "httpapi.gameToDTO")
	defer span.End()

	return gameDTO{
		ID:             v.ID,
		Date:           v.Date.UTC().Format(gameDateLayout),
		HomeTeamID:     v.HomeTeamID,
		AwayTeamID:     v.AwayTeamID,
		HomeScore:      v.HomeScore,
		AwayScore:      v.AwayScore,
		Round:          v.Round,
		ScreenshotPath: v.ScreenshotPath,
		Status:         v.Status,
	}
}

func skaterStatToDTO(v playerstats.SkaterStat) skaterStatDTO {
	return skaterStatDTO{
		ID:       v.ID,
		GameID:   v.GameID,
		PlayerID: v.PlayerID,
		skaterStatRequest: skaterStatRequest{
			Goals:         v.Goals,
			Assists:       v.Assists,
			Shots:         v.Shots,
			PPG:           v.PPG,
			PPA:           v.PPA,
			SHG:           v.SHG,
			SHA:           v.SHA,
			GWG:           v.GWG,
			OTG:           v.OTG,
			PlusMinus:     v.PlusMinus,
			Hits:          v.Hits,
			Blocked:       v.Blocked,
			Giveaways:     v.Giveaways,
			Takeaways:     v.Takeaways,
			FaceoffWins:   v.FaceoffWins,
			FaceoffLosses: v.FaceoffLosses,
			TOISeconds:    v.TOISeconds,
			PPTOISeconds:  v.PPTOISeconds,
			PKTOISeconds:  v.PKTOISeconds,
			PIM:           v.PIM,
			Majors:        v.Majors,
			Misconducts:   v.Misconducts,
		},
	}
}

func goalieStatToDTO(v playerstats.GoalieStat) goalieStatDTO {
	return goalieStatDTO{
		ID:           v.ID,
		GameID:       v.GameID,
		PlayerID:     v.PlayerID,
		GP:           v.GP,
		Wins:         v.Wins,
		Losses:       v.Losses,
		OT:           v.OT,
		ShotsAgainst: v.ShotsAgainst,
		Saves:        v.Saves,
		GoalsAgainst: v.GoalsAgainst,
		Shutout:      v.Shutout,
		TOISeconds:   v.TOISeconds,
	}
}

func teamStatToDTO(v teamstats.TeamStat) teamStatDTO {
	return teamStatDTO{
		ID:     v.ID,
		GameID: v.GameID,
		TeamID: v.TeamID,
		teamStatRequest: teamStatRequest{
			Goals:             v.Goals,
			Shots:             v.Shots,
			PPGoals:           v.PPGoals,
			PPAttempts:        v.PPAttempts,
			PKGoalsAgainst:    v.PKGoalsAgainst,
			PKAttemptsAgainst: v.PKAttemptsAgainst,
			FaceoffWins:       v.FaceoffWins,
			FaceoffLosses:     v.FaceoffLosses,
			Saves:             v.Saves,
			ShotsAgainst:      v.ShotsAgainst,
		},
	}
}

func playerTotalsToDTO(v season.PlayerTotals) playerTotalsDTO {
	return playerTotalsDTO{
		PlayerID:   v.PlayerID,
		Player:     v.Handle,
		Position:   string(v.Position),
		TeamID:     v.TeamID,
		Games:      v.Skater.Games,
		Goals:      v.Skater.Goals,
		Assists:    v.Skater.Assists,
		Points:     v.Skater.Points,
		Shots:      v.Skater.Shots,
		PlusMinus:  v.Skater.PlusMinus,
		PPG:        v.Skater.PPG,
		SHG:        v.Skater.SHG,
		GWG:        v.Skater.GWG,
		Hits:       v.Skater.Hits,
		Blocked:    v.Skater.Blocked,
		PIM:        v.Skater.PIM,
		TOISeconds: v.Skater.TOISeconds,
		Goalie: goalieTotalsDTO{
			GP:           v.Goalie.GP,
			Wins:         v.Goalie.Wins,
			Losses:       v.Goalie.Losses,
			OT:           v.Goalie.OT,
			ShotsAgainst: v.Goalie.ShotsAgainst,
			Saves:        v.Goalie.Saves,
			GoalsAgainst: v.Goalie.GoalsAgainst,
			Shutouts:     v.Goalie.Shutouts,
			TOISeconds:   v.Goalie.TOISeconds,
		},
	}
}

// playerTotalsByID keys totals by player id, the shape consumers of the
// season totals endpoint read.
func playerTotalsByID(totals []season.PlayerTotals) map[string]playerTotalsDTO {
	out := make(map[string]playerTotalsDTO, len(totals))
	for _, t := range totals {
		out[strconv.FormatInt(t.PlayerID, 10)] = playerTotalsToDTO(t)
	}
	return out
}

func leaderToDTO(v season.Leader) leaderDTO {
	return leaderDTO{
		playerTotalsDTO: playerTotalsToDTO(v.PlayerTotals),
		SavePct:         v.SavePct,
	}
}

func standingToDTO(v season.Standing) standingDTO {
	return standingDTO{
		TeamID: v.TeamID,
		Team:   v.Team,
		Wins:   v.Wins,
		Losses: v.Losses,
		OT:     v.OT,
		GF:     v.GF,
		GA:     v.GA,
		Points: v.Points(),
	}
}

func vezinaToDTO(v season.VezinaCandidate) vezinaDTO {
	return vezinaDTO{
		PlayerID: v.PlayerID,
		Player:   v.Handle,
		TeamID:   v.TeamID,
		SavePct:  v.SavePct,
		Wins:     v.Wins,
	}
}
