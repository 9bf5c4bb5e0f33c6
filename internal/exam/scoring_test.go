package exam

import (
	"math"
	"math/rand"
	"testing"

	"github.com/taktix-app/tryout-engine/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func fixedDifficulties(questions []model.Question) map[uint]float64 {
	out := make(map[uint]float64, len(questions))
	for _, q := range questions {
		if q.Difficulty != nil {
			out[q.ID] = *q.Difficulty
		}
	}
	return out
}

// Two questions in Penalaran Umum, both correct, difficulty 0:
// theta = ln(2/0.5) = ln 4, p = 1/(1+e^-ln4) = 0.8 each, so the category
// scores round((0.8+0.8)/2*1000) = 800 and the overall round(800/7) = 114.
func TestScoreEndToEnd(t *testing.T) {
	questions := []model.Question{
		{ID: 1, TestCategory: SubtestPenalaranUmum, CorrectAnswer: "A", Difficulty: floatPtr(0)},
		{ID: 2, TestCategory: SubtestPenalaranUmum, CorrectAnswer: "C", Difficulty: floatPtr(0)},
	}
	answers := map[uint]string{1: "A", 2: "C"}

	got := Score(questions, answers, fixedDifficulties(questions))

	if got.CategoryScores[SubtestPenalaranUmum] != 800 {
		t.Errorf("Penalaran Umum score = %d, want 800", got.CategoryScores[SubtestPenalaranUmum])
	}
	if got.OverallScore != 114 {
		t.Errorf("overall score = %d, want 114", got.OverallScore)
	}
	for _, subtest := range SubtestOrder[1:] {
		if got.CategoryScores[subtest] != 0 {
			t.Errorf("subtest %q score = %d, want 0", subtest, got.CategoryScores[subtest])
		}
	}
}

func TestScoreAllSubtestsPresent(t *testing.T) {
	got := Score(nil, nil, nil)
	if len(got.CategoryScores) != len(SubtestOrder) {
		t.Fatalf("expected %d category scores, got %d", len(SubtestOrder), len(got.CategoryScores))
	}
	if got.OverallScore != 0 {
		t.Errorf("overall score of empty tryout = %d, want 0", got.OverallScore)
	}
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name       string
		correct    int
		total      int
		difficulty float64
	}{
		{"all correct easy items", 40, 40, -2},
		{"all correct hard items", 40, 40, 2},
		{"none correct", 0, 25, 0},
		{"single question", 1, 1, -2},
		{"half correct", 10, 20, 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var questions []model.Question
			answers := map[uint]string{}
			for i := 0; i < tc.total; i++ {
				id := uint(i + 1)
				questions = append(questions, model.Question{
					ID:           id,
					TestCategory: SubtestPengetahuanKuantitatif,
					CorrectAnswer: "B",
					Difficulty:   floatPtr(tc.difficulty),
				})
				if i < tc.correct {
					answers[id] = "B"
				} else {
					answers[id] = "D"
				}
			}

			got := Score(questions, answers, fixedDifficulties(questions))
			for subtest, score := range got.CategoryScores {
				if score < 0 || score > 1000 {
					t.Errorf("subtest %q score %d out of [0,1000]", subtest, score)
				}
			}
			if got.OverallScore < 0 || got.OverallScore > 1000 {
				t.Errorf("overall score %d out of [0,1000]", got.OverallScore)
			}
		})
	}
}

func TestScoreDeterministicWithFixedDifficulty(t *testing.T) {
	questions := []model.Question{
		{ID: 1, TestCategory: SubtestLiterasiIndonesia, CorrectAnswer: "A", Difficulty: floatPtr(-1.2)},
		{ID: 2, TestCategory: SubtestLiterasiIndonesia, CorrectAnswer: "B", Difficulty: floatPtr(0.4)},
		{ID: 3, TestCategory: SubtestLiterasiInggris, CorrectAnswer: "C", Difficulty: floatPtr(1.7)},
	}
	answers := map[uint]string{1: "A", 2: "D", 3: "C"}
	diffs := fixedDifficulties(questions)

	first := Score(questions, answers, diffs)
	second := Score(questions, answers, diffs)

	if first.OverallScore != second.OverallScore {
		t.Errorf("overall score changed between calls: %d vs %d", first.OverallScore, second.OverallScore)
	}
	for subtest := range first.CategoryScores {
		if first.CategoryScores[subtest] != second.CategoryScores[subtest] {
			t.Errorf("subtest %q score changed between calls", subtest)
		}
	}
}

func TestScoreUnansweredNeverCorrect(t *testing.T) {
	questions := []model.Question{
		{ID: 1, TestCategory: SubtestPenalaranUmum, CorrectAnswer: "A", Difficulty: floatPtr(0)},
	}

	got := Score(questions, map[uint]string{}, fixedDifficulties(questions))
	if got.CategoryScores[SubtestPenalaranUmum] != 0 {
		t.Errorf("unanswered question scored %d, want 0", got.CategoryScores[SubtestPenalaranUmum])
	}
}

func TestResolveDifficulties(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Difficulty: floatPtr(1.25)},
		{ID: 2},
		{ID: 3},
	}

	rng := rand.New(rand.NewSource(42))
	got := ResolveDifficulties(questions, rng)

	if got[1] != 1.25 {
		t.Errorf("explicit difficulty overwritten: got %v", got[1])
	}
	for _, id := range []uint{2, 3} {
		d, ok := got[id]
		if !ok {
			t.Fatalf("no difficulty resolved for question %d", id)
		}
		if d < -2 || d >= 2 || math.IsNaN(d) {
			t.Errorf("substitute difficulty %v for question %d outside [-2,2)", d, id)
		}
	}

	// Same seed, same substitutes: the cache is what makes rescoring stable.
	again := ResolveDifficulties(questions, rand.New(rand.NewSource(42)))
	if got[2] != again[2] || got[3] != again[3] {
		t.Error("identical seeds produced different substitutes")
	}
}
