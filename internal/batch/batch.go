// Package batch ranks many resumes against one job description.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/document"
)

// DefaultWorkers is used when no worker limit is given.
const DefaultWorkers = 4

// Document is a resume to rank. Text may be a failure sentinel from
// document.Extract.
type Document struct {
	Name string
	Text string
}

// Row is the ranking of one resume. Failed resumes have zero scores and the
// failure text in Error.
type Row struct {
	Name        string  `json:"resume"`
	ATS         float64 `json:"ats_score"`
	Match       float64 `json:"job_match_pct"`
	Quality     float64 `json:"quality_pct"`
	Matched     int     `json:"matched_skills"`
	TotalSkills int     `json:"total_skills"`
	Error       string  `json:"error,omitempty"`
}

// Rank analyzes every document against the job description with at most
// workers documents in flight and returns one row per document, best ATS
// score first. Ties keep the input order. Experience counts only the years a
// resume states. Only a cancelled context fails the ranking.
func Rank(ctx context.Context, a *analysis.Analyzer, docs []Document, jobText string, workers int) ([]Row, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	job := a.AnalyzeJob(jobText)
	rows := make([]Row, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rows[i] = score(a, job, doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking resumes: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ATS > rows[j].ATS
	})
	return rows, nil
}

func score(a *analysis.Analyzer, job *analysis.JobResult, doc Document) Row {
	row := Row{Name: doc.Name}

	r, err := a.AnalyzeAgainst(analysis.Input{
		Name:             doc.Name,
		ResumeText:       doc.Text,
		StatedExperience: true,
	}, job)
	if err != nil {
		if errors.Is(err, document.ErrExtraction) {
			row.Error = doc.Text
		} else {
			row.Error = err.Error()
		}
		return row
	}

	row.ATS = r.ATS.Score
	row.Match = r.Match.Percentage
	row.Quality = r.Quality.Score
	row.Matched = len(r.Match.Matched)
	row.TotalSkills = len(r.Skills)
	return row
}

// Summary aggregates the ATS scores of a ranking.
type Summary struct {
	Total int     `json:"total"`
	Top   float64 `json:"top_ats"`
	Avg   float64 `json:"avg_ats"`
	Range float64 `json:"ats_range"`
}

// Summarize returns the aggregate of rows, zero for no rows.
func Summarize(rows []Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}

	top, low, sum := rows[0].ATS, rows[0].ATS, 0.0
	for _, r := range rows {
		top = max(top, r.ATS)
		low = min(low, r.ATS)
		sum += r.ATS
	}
	return Summary{
		Total: len(rows),
		Top:   top,
		Avg:   sum / float64(len(rows)),
		Range: top - low,
	}
}

var csvHeader = []string{"Resume", "ATS Score", "Job Match %", "Quality %", "Matched Skills", "Total Skills", "Error"}

// WriteCSV writes the rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Name,
			formatScore(r.ATS),
			formatScore(r.Match),
			formatScore(r.Quality),
			strconv.Itoa(r.Matched),
			strconv.Itoa(r.TotalSkills),
			r.Error,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %q: %w", r.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
