package exam

import (
	"math"

	"github.com/taktix-app/tryout-engine/internal/model"
)

// The seven UTBK subtests in their fixed running order.
const (
	SubtestPenalaranUmum            = "Penalaran Umum"
	SubtestPengetahuanPemahamanUmum = "Pengetahuan dan Pemahaman Umum"
	SubtestPemahamanBacaanMenulis   = "Pemahaman Bacaan dan Menulis"
	SubtestPengetahuanKuantitatif   = "Pengetahuan Kuantitatif"
	SubtestLiterasiIndonesia        = "Literasi Bahasa Indonesia"
	SubtestLiterasiInggris          = "Literasi Bahasa Inggris"
	SubtestPenalaranMatematika      = "Penalaran Matematika"
)

// SubtestOrder is the fixed traversal sequence. A subtest is only ever
// entered by forward progression, never revisited.
var SubtestOrder = []string{
	SubtestPenalaranUmum,
	SubtestPengetahuanPemahamanUmum,
	SubtestPemahamanBacaanMenulis,
	SubtestPengetahuanKuantitatif,
	SubtestLiterasiIndonesia,
	SubtestLiterasiInggris,
	SubtestPenalaranMatematika,
}

// subtestDurations maps each subtest to its duration in minutes.
var subtestDurations = map[string]float64{
	SubtestPenalaranUmum:            30,
	SubtestPengetahuanPemahamanUmum: 15,
	SubtestPemahamanBacaanMenulis:   25,
	SubtestPengetahuanKuantitatif:   20,
	SubtestLiterasiIndonesia:        42.5,
	SubtestLiterasiInggris:          20,
	SubtestPenalaranMatematika:      42.5,
}

// DurationSeconds returns the countdown length for a subtest in whole
// seconds. Fractional minutes round to the nearest second rather than
// truncating. Unknown subtests get 0.
func DurationSeconds(subtest string) int {
	minutes, ok := subtestDurations[subtest]
	if !ok {
		return 0
	}
	return int(math.Round(minutes * 60))
}

// NextSubtest returns the subtest following the given one in fixed order,
// or "" if it is the last (or not one of the seven).
func NextSubtest(subtest string) string {
	for i, name := range SubtestOrder {
		if name == subtest && i < len(SubtestOrder)-1 {
			return SubtestOrder[i+1]
		}
	}
	return ""
}

// QuestionsFor filters the loaded question list down to one subtest,
// preserving load order. Questions whose category matches none of the seven
// subtests never appear in any subtest's list.
func QuestionsFor(subtest string, all []model.Question) []model.Question {
	var out []model.Question
	for _, q := range all {
		if q.TestCategory == subtest {
			out = append(out, q)
		}
	}
	return out
}
