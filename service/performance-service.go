package service

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"archery/logger"
	"archery/repository"
	"archery/scoring"
	"archery/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var eventScoreTypes = []repository.ScoreType{repository.ScoreCompetition, repository.ScoreChampionship}

type Leaderboard struct {
	Entries     []*scoring.Ranked `json:"entries"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type ClubStanding struct {
	ClubId  int     `json:"club_id"`
	Average float64 `json:"average"`
	Archers int     `json:"archers"`
	Rounds  int     `json:"rounds"`
	Rank    int     `json:"rank"`
}

type RoundPercentile struct {
	CompetitionId int     `json:"competition_id"`
	RoundId       int     `json:"round_id"`
	Total         int     `json:"total"`
	Percentile    float64 `json:"percentile"`
}

type ArcherPerformance struct {
	ArcherId      int                   `json:"archer_id"`
	Ends          int                   `json:"ends"`
	Arrows        int                   `json:"arrows"`
	AverageEnd    float64               `json:"average_end"`
	AverageArrow  float64               `json:"average_arrow"`
	PersonalBests map[int]int           `json:"personal_bests"`
	History       []*scoring.RoundTotal `json:"history"`
	Percentiles   []*RoundPercentile    `json:"percentiles"`
}

type PerformanceService struct {
	db          *gorm.DB
	performance *repository.PerformanceRepository
	cache       *repository.CachedDataRepository
	// SnapshotTTL bounds how old a stored leaderboard may be before it is recomputed.
	SnapshotTTL time.Duration
	now         func() time.Time
	log         *zap.SugaredLogger
}

func NewPerformanceService(db *gorm.DB, snapshotTTL time.Duration) *PerformanceService {
	return &PerformanceService{
		db:          db,
		performance: repository.NewPerformanceRepository(db),
		cache:       repository.NewCachedDataRepository(db),
		SnapshotTTL: snapshotTTL,
		now:         time.Now,
		log:         logger.Named("performance"),
	}
}

func (s *PerformanceService) leaderboard(totals []*scoring.Total) *Leaderboard {
	return &Leaderboard{Entries: scoring.Rank(totals), GeneratedAt: s.now()}
}

func (s *PerformanceService) RoundLeaderboard(competitionId int, roundId int) (*Leaderboard, error) {
	rows, err := s.performance.EligibleEnds(repository.EndFilter{
		CompetitionId: &competitionId,
		RoundId:       &roundId,
		Types:         eventScoreTypes,
	})
	if err != nil {
		return nil, err
	}
	return s.leaderboard(scoring.ByArcher(rows)), nil
}

func (s *PerformanceService) computeCompetitionLeaderboard(competitionId int, categoryId *int) (*Leaderboard, error) {
	rows, err := s.performance.EligibleEnds(repository.EndFilter{
		CompetitionId: &competitionId,
		CategoryId:    categoryId,
		Types:         eventScoreTypes,
	})
	if err != nil {
		return nil, err
	}
	return s.leaderboard(scoring.ByArcher(rows)), nil
}

// CompetitionLeaderboard serves the stored snapshot for unfiltered requests while it is fresh.
func (s *PerformanceService) CompetitionLeaderboard(competitionId int, categoryId *int) (*Leaderboard, error) {
	if categoryId == nil {
		if board := s.freshSnapshot(repository.CompetitionLeaderboard, competitionId); board != nil {
			return board, nil
		}
	}
	return s.computeCompetitionLeaderboard(competitionId, categoryId)
}

func (s *PerformanceService) ChampionshipStandings(championshipId int) (*Leaderboard, error) {
	if board := s.freshSnapshot(repository.ChampionshipStandings, championshipId); board != nil {
		return board, nil
	}
	return s.computeChampionshipStandings(championshipId)
}

func (s *PerformanceService) computeChampionshipStandings(championshipId int) (*Leaderboard, error) {
	rows, err := s.performance.EligibleEnds(repository.EndFilter{
		ChampionshipId: &championshipId,
		Types:          eventScoreTypes,
	})
	if err != nil {
		return nil, err
	}
	return s.leaderboard(scoring.ByArcher(rows)), nil
}

// ClubLeaderboard ranks clubs by the average round total their archers shot in competitions.
func (s *PerformanceService) ClubLeaderboard() ([]*ClubStanding, error) {
	rows, err := s.performance.EligibleEnds(repository.EndFilter{Types: eventScoreTypes})
	if err != nil {
		return nil, err
	}
	return ClubStandings(scoring.ByRound(rows)), nil
}

func ClubStandings(rounds []*scoring.RoundTotal) []*ClubStanding {
	withClub := utils.Filter(rounds, func(r *scoring.RoundTotal) bool { return r.ClubId != nil })
	byClub := utils.GroupBy(withClub, func(r *scoring.RoundTotal) int { return *r.ClubId })
	standings := make([]*ClubStanding, 0, len(byClub))
	for clubId, clubRounds := range byClub {
		archers := utils.Uniques(utils.Map(clubRounds, func(r *scoring.RoundTotal) int { return r.Total.ArcherId }))
		standings = append(standings, &ClubStanding{
			ClubId:  clubId,
			Average: scoring.Average(utils.Map(clubRounds, func(r *scoring.RoundTotal) int { return r.Total.Total })),
			Archers: len(archers),
			Rounds:  len(clubRounds),
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Average != standings[j].Average {
			return standings[i].Average > standings[j].Average
		}
		return standings[i].ClubId < standings[j].ClubId
	})
	for i, standing := range standings {
		standing.Rank = i + 1
		if i > 0 && standings[i-1].Average == standing.Average {
			standing.Rank = standings[i-1].Rank
		}
	}
	return standings
}

func (s *PerformanceService) ArcherPerformance(archerId int) (*ArcherPerformance, error) {
	rows, err := s.performance.EligibleEnds(repository.EndFilter{ArcherIds: []int{archerId}})
	if err != nil {
		return nil, err
	}
	performance := summarizeArcher(archerId, rows)

	for _, round := range performance.History {
		if round.CompetitionId == 0 {
			continue
		}
		competitionId, roundId := round.CompetitionId, round.RoundId
		field, err := s.performance.EligibleEnds(repository.EndFilter{
			CompetitionId: &competitionId,
			RoundId:       &roundId,
			Types:         eventScoreTypes,
		})
		if err != nil {
			return nil, err
		}
		totals := utils.Map(scoring.ByArcher(field), func(t *scoring.Total) int { return t.Total })
		performance.Percentiles = append(performance.Percentiles, &RoundPercentile{
			CompetitionId: competitionId,
			RoundId:       roundId,
			Total:         round.Total.Total,
			Percentile:    scoring.PercentileRank(round.Total.Total, totals),
		})
	}
	return performance, nil
}

func summarizeArcher(archerId int, rows []*repository.EndRow) *ArcherPerformance {
	performance := &ArcherPerformance{
		ArcherId:      archerId,
		PersonalBests: make(map[int]int),
		History:       scoring.ByRound(rows),
		Percentiles:   make([]*RoundPercentile, 0),
	}
	for _, total := range scoring.ByArcher(rows) {
		performance.Ends = total.Ends
		performance.Arrows = total.Arrows
		if total.Ends > 0 {
			performance.AverageEnd = float64(total.Total) / float64(total.Ends)
		}
		if total.Arrows > 0 {
			performance.AverageArrow = float64(total.Total) / float64(total.Arrows)
		}
	}
	byRound := utils.GroupBy(performance.History, func(r *scoring.RoundTotal) int { return r.RoundId })
	for roundId, rounds := range byRound {
		performance.PersonalBests[roundId] = utils.Max(utils.Map(rounds, func(r *scoring.RoundTotal) int { return r.Total.Total }))
	}
	return performance
}

// FriendsLeaderboard ranks the archer and their friends by best round total.
func (s *PerformanceService) FriendsLeaderboard(archerId int) (*Leaderboard, error) {
	friendIds, err := repository.NewFriendshipRepository(s.db).ListFriendIds(archerId)
	if err != nil {
		return nil, err
	}
	rows, err := s.performance.EligibleEnds(repository.EndFilter{ArcherIds: append(friendIds, archerId)})
	if err != nil {
		return nil, err
	}
	return s.leaderboard(scoring.BestPerArcher(scoring.ByRound(rows))), nil
}

func (s *PerformanceService) freshSnapshot(key repository.CacheKey, scopeId int) *Leaderboard {
	data, err := s.cache.Get(key, scopeId)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnw("failed to read snapshot", "key", key, "scope", scopeId, "error", err)
		}
		return nil
	}
	if s.now().Sub(data.Timestamp) > s.SnapshotTTL {
		return nil
	}
	board := &Leaderboard{}
	if err := json.Unmarshal(data.Data, board); err != nil {
		s.log.Warnw("corrupt snapshot", "key", key, "scope", scopeId, "error", err)
		return nil
	}
	return board
}

// RefreshSnapshots stores the leaderboards of every open competition and every championship of the current year.
func (s *PerformanceService) RefreshSnapshots() error {
	events := repository.NewEventRepository(s.db)
	competitions, err := events.ListCompetitions(repository.CompetitionFilter{OpenOnly: true})
	if err != nil {
		return err
	}
	for _, competition := range competitions {
		board, err := s.computeCompetitionLeaderboard(competition.Id, nil)
		if err != nil {
			return err
		}
		if err := s.store(repository.CompetitionLeaderboard, competition.Id, board); err != nil {
			return err
		}
	}
	year := s.now().Year()
	championships, err := events.ListChampionships(&year)
	if err != nil {
		return err
	}
	for _, championship := range championships {
		board, err := s.computeChampionshipStandings(championship.Id)
		if err != nil {
			return err
		}
		if err := s.store(repository.ChampionshipStandings, championship.Id, board); err != nil {
			return err
		}
	}
	s.log.Debugw("snapshots refreshed", "competitions", len(competitions), "championships", len(championships))
	return nil
}

func (s *PerformanceService) store(key repository.CacheKey, scopeId int, board *Leaderboard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return s.cache.Save(key, scopeId, data)
}
