package exam

import (
	"testing"

	"github.com/taktix-app/tryout-engine/internal/model"
)

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		subtest string
		want    int
	}{
		{SubtestPenalaranUmum, 1800},
		{SubtestPengetahuanPemahamanUmum, 900},
		{SubtestPemahamanBacaanMenulis, 1500},
		{SubtestPengetahuanKuantitatif, 1200},
		{SubtestLiterasiIndonesia, 2550},
		{SubtestLiterasiInggris, 1200},
		{SubtestPenalaranMatematika, 2550},
		{"Tidak Ada", 0},
	}
	for _, tc := range tests {
		t.Run(tc.subtest, func(t *testing.T) {
			if got := DurationSeconds(tc.subtest); got != tc.want {
				t.Errorf("DurationSeconds(%q) = %d, want %d", tc.subtest, got, tc.want)
			}
		})
	}
}

func TestNextSubtest(t *testing.T) {
	for i := 0; i < len(SubtestOrder)-1; i++ {
		if got := NextSubtest(SubtestOrder[i]); got != SubtestOrder[i+1] {
			t.Errorf("NextSubtest(%q) = %q, want %q", SubtestOrder[i], got, SubtestOrder[i+1])
		}
	}
	if got := NextSubtest(SubtestPenalaranMatematika); got != "" {
		t.Errorf("NextSubtest(last) = %q, want empty", got)
	}
	if got := NextSubtest("Tidak Ada"); got != "" {
		t.Errorf("NextSubtest(unknown) = %q, want empty", got)
	}
}

func TestQuestionsFor(t *testing.T) {
	all := []model.Question{
		{ID: 1, TestCategory: SubtestPenalaranUmum},
		{ID: 2, TestCategory: SubtestLiterasiInggris},
		{ID: 3, TestCategory: SubtestPenalaranUmum},
		{ID: 4, TestCategory: "Kategori Aneh"},
	}

	got := QuestionsFor(SubtestPenalaranUmum, all)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("QuestionsFor returned %+v, want questions 1 and 3 in load order", got)
	}

	if got := QuestionsFor(SubtestPenalaranMatematika, all); len(got) != 0 {
		t.Errorf("expected empty slice for subtest without questions, got %d", len(got))
	}

	// A category outside the seven fixed subtests belongs to no subtest list.
	for _, subtest := range SubtestOrder {
		for _, q := range QuestionsFor(subtest, all) {
			if q.ID == 4 {
				t.Errorf("question with unknown category leaked into subtest %q", subtest)
			}
		}
	}
}
