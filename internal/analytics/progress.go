package analytics

import (
	"sort"
	"strings"

	"github.com/guttosm/trainpulse/internal/domain/models"
)

// ExamProgress averages the grades of each exam and compares every exam
// against the grand average of all grades in scope.
//
// Grades pointing at an exam missing from exams are ignored. Points are
// ordered by exam date (then exam id) ascending.
func ExamProgress(grades []models.Grade, exams []models.Exam) []models.ProgressPoint {
	byID := make(map[string]models.Exam, len(exams))
	for _, e := range exams {
		byID[e.ID] = e
	}

	groups := make(map[string]*meanAcc)
	var overall meanAcc
	for _, g := range grades {
		if _, ok := byID[g.ExamID]; !ok {
			continue
		}
		acc, ok := groups[g.ExamID]
		if !ok {
			acc = &meanAcc{}
			groups[g.ExamID] = acc
		}
		acc.add(g.Score)
		overall.add(g.Score)
	}

	ordered := make([]models.Exam, 0, len(groups))
	for id := range groups {
		ordered = append(ordered, byID[id])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		di, erri := DecomposeDate(ordered[i].ExamDate)
		dj, errj := DecomposeDate(ordered[j].ExamDate)
		switch {
		case erri != nil && errj != nil:
		case erri != nil:
			return false
		case errj != nil:
			return true
		case di != dj:
			return di.Before(dj)
		}
		return ordered[i].ID < ordered[j].ID
	})

	baseline := Round1(overall.mean())
	out := make([]models.ProgressPoint, 0, len(ordered))
	for _, e := range ordered {
		acc := groups[e.ID]
		out = append(out, models.ProgressPoint{
			Name:  e.Name,
			Atual: Round1(acc.mean()),
			Meta:  baseline,
			Total: acc.n,
		})
	}
	return out
}

// CompetitorSummary averages every competitor's grades and compares each one
// against the configured score target. Names are shortened to the given name.
// Competitors without grades get Atual 0 and Total 0.
func CompetitorSummary(competitors []models.Competitor, grades []models.Grade, target float64) []models.ProgressPoint {
	groups := make(map[string]*meanAcc, len(competitors))
	for _, c := range competitors {
		groups[c.ID] = &meanAcc{}
	}
	for _, g := range grades {
		if acc, ok := groups[g.CompetitorID]; ok {
			acc.add(g.Score)
		}
	}

	meta := Round1(target)
	out := make([]models.ProgressPoint, 0, len(competitors))
	for _, c := range competitors {
		acc := groups[c.ID]
		out = append(out, models.ProgressPoint{
			Name:  GivenName(c.Name),
			Atual: Round1(acc.mean()),
			Meta:  meta,
			Total: acc.n,
		})
	}
	return out
}

// GivenName returns the first whitespace-separated token of name.
func GivenName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v float64) {
	a.sum += v
	a.n++
}

// mean is 0 for an empty group.
func (a *meanAcc) mean() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}
