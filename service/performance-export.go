package service

import (
	"bytes"
	"fmt"
	"time"

	"archery/repository"
	"archery/scoring"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xuri/excelize/v2"
)

const leaderboardSheet = "Leaderboard"

// LeaderboardWorkbook writes one row per ranked archer. Names are looked up in accounts.
func LeaderboardWorkbook(title string, board *Leaderboard, accounts map[int]*repository.Account) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leaderboardSheet); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(leaderboardSheet, "A1", title)
	headers := []string{"Rank", "Archer", "Total", "Tens", "Nines", "Ends", "Percentile"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(leaderboardSheet, cell, header)
	}
	for i, entry := range board.Entries {
		row := i + 4
		name := fmt.Sprintf("#%d", entry.ArcherId)
		if account, ok := accounts[entry.ArcherId]; ok {
			name = account.FirstName + " " + account.LastName
		}
		values := []any{entry.Rank, name, entry.Total.Total, entry.Tens, entry.Nines, entry.Ends, entry.Percentile}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(leaderboardSheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HistoryChart renders the archer's round totals over time as a PNG.
func HistoryChart(history []*scoring.RoundTotal) ([]byte, error) {
	if len(history) < 2 {
		return emptyChart("Not enough rounds to draw a chart")
	}
	xValues := make([]time.Time, len(history))
	yValues := make([]float64, len(history))
	for i, round := range history {
		xValues[i] = round.UpdatedAt
		yValues[i] = float64(round.Total.Total)
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
		YAxis: chart.YAxis{
			Name: "Round total",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Round totals",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("1f6f43"),
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    drawing.ColorFromHex("d4a017"),
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func emptyChart(msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:  400,
		Height: 200,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, _ chart.Style) {
				r.SetFontColor(drawing.ColorBlack)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				r.Text(msg, (cb.Width()-tb.Width())/2, (cb.Height()+tb.Height())/2)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (s *PerformanceService) ExportCompetitionLeaderboard(competitionId int, categoryId *int) ([]byte, error) {
	competition, err := repository.NewEventRepository(s.db).GetCompetition(competitionId)
	if err != nil {
		return nil, err
	}
	board, err := s.CompetitionLeaderboard(competitionId, categoryId)
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(board.Entries))
	for i, entry := range board.Entries {
		ids[i] = entry.ArcherId
	}
	accounts, err := repository.NewAccountRepository(s.db).GetByIds(ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[int]*repository.Account, len(accounts))
	for _, account := range accounts {
		byId[account.Id] = account
	}
	return LeaderboardWorkbook(competition.Name, board, byId)
}

func (s *PerformanceService) ExportArcherChart(archerId int) ([]byte, error) {
	rows, err := s.performance.EligibleEnds(repository.EndFilter{ArcherIds: []int{archerId}})
	if err != nil {
		return nil, err
	}
	return HistoryChart(scoring.ByRound(rows))
}
