package exam

import (
	"math"
	"math/rand"

	"github.com/taktix-app/tryout-engine/internal/model"
)

// ScoreSummary is the result of scoring one attempt: the overall score and
// one score per fixed subtest, each an integer in [0, 1000].
type ScoreSummary struct {
	OverallScore   int
	CategoryScores map[string]int
}

// ResolveDifficulties returns the item difficulty for every question,
// substituting a uniform draw from [-2, 2) where the question carries none.
// The result is cached for the lifetime of a session so repeated scoring of
// the same attempt stays deterministic.
func ResolveDifficulties(questions []model.Question, rng *rand.Rand) map[uint]float64 {
	out := make(map[uint]float64, len(questions))
	for _, q := range questions {
		if q.Difficulty != nil {
			out[q.ID] = *q.Difficulty
			continue
		}
		out[q.ID] = rng.Float64()*4 - 2
	}
	return out
}

// Score computes per-subtest and overall scores for a completed attempt
// using a one-parameter logistic (Rasch) model. For each subtest the ability
// estimate is
//
//	theta = ln(correct / (total - correct + 0.5))
//
// and every correctly answered item contributes
//
//	p = 1 / (1 + e^-(theta - difficulty))
//
// to the subtest's probability mass, which is scaled to [0, 1000]. The
// overall score is the plain mean over all seven subtests, zero-valued ones
// included, so it does not weight by question count.
func Score(questions []model.Question, answers map[uint]string, difficulties map[uint]float64) ScoreSummary {
	categoryScores := make(map[string]int, len(SubtestOrder))
	for _, subtest := range SubtestOrder {
		categoryScores[subtest] = scoreSubtest(QuestionsFor(subtest, questions), answers, difficulties)
	}

	sum := 0
	for _, subtest := range SubtestOrder {
		sum += categoryScores[subtest]
	}
	overall := int(math.Round(float64(sum) / float64(len(SubtestOrder))))

	return ScoreSummary{OverallScore: overall, CategoryScores: categoryScores}
}

func scoreSubtest(questions []model.Question, answers map[uint]string, difficulties map[uint]float64) int {
	total := len(questions)
	if total == 0 {
		return 0
	}

	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}

	// The +0.5 keeps the log defined when every answer is correct. With
	// zero correct answers no probability accumulates and the subtest
	// scores 0 regardless of theta.
	theta := math.Log(float64(correct) / (float64(total) - float64(correct) + 0.5))

	totalProbability := 0.0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			totalProbability += probability(theta, difficulties[q.ID])
		}
	}

	// Rounding is half away from zero (math.Round), applied consistently
	// here and for the overall mean.
	return int(math.Round(totalProbability / float64(total) * 1000))
}

// probability is the 1PL response probability for ability theta on an item
// of the given difficulty.
func probability(theta, difficulty float64) float64 {
	return 1 / (1 + math.Exp(-(theta - difficulty)))
}
