package options

import "testing"

func TestParseBorderType(t *testing.T) {
	valid := []string{
		"Uniform", "UniformAndQuantiles", "GreedyLogSum",
		"MaxLogSum", "MinEntropy", "Median",
	}
	for _, s := range valid {
		if _, err := ParseBorderType(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseBorderType("Quantile"); err == nil {
		t.Fatal("expected error for unknown border type")
	}
}

func TestParseNanMode(t *testing.T) {
	for _, s := range []string{"Forbidden", "Min", "Max"} {
		if _, err := ParseNanMode(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseNanMode("Ignore"); err == nil {
		t.Fatal("expected error for unknown nan mode")
	}
}

func TestDefaultParserDefaults(t *testing.T) {
	tree, err := DefaultParser{}.Parse(Plain{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Binarization.BorderCount != DefaultBorderCount {
		t.Fatalf("expected default border count %d, got %d", DefaultBorderCount, tree.Binarization.BorderCount)
	}
	if tree.Binarization.BorderType != BorderGreedyLogSum {
		t.Fatalf("expected default border type GreedyLogSum, got %s", tree.Binarization.BorderType)
	}
	if tree.Binarization.NanMode != NanMin {
		t.Fatalf("expected default nan mode Min, got %s", tree.Binarization.NanMode)
	}
	if tree.PrimaryMetric() != "RMSE" {
		t.Fatalf("expected default primary metric RMSE, got %s", tree.PrimaryMetric())
	}
	if tree.SaveSnapshot {
		t.Fatal("expected snapshots off by default")
	}
}

func TestDefaultParserReadsKeys(t *testing.T) {
	plain := Plain{
		KeyLossFunction: String("Logloss"),
		KeyBorderCount:  Int(64),
		KeyBorderType:   String("Median"),
		KeyNanMode:      String("Max"),
		KeyThreadCount:  Int(4),
		KeySaveSnapshot: Bool(true),
	}
	tree, err := DefaultParser{}.Parse(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Binarization.BorderCount != 64 {
		t.Fatalf("expected border count 64, got %d", tree.Binarization.BorderCount)
	}
	if tree.Binarization.BorderType != BorderMedian {
		t.Fatalf("expected border type Median, got %s", tree.Binarization.BorderType)
	}
	if tree.Binarization.NanMode != NanMax {
		t.Fatalf("expected nan mode Max, got %s", tree.Binarization.NanMode)
	}
	if tree.PrimaryMetric() != "Logloss" {
		t.Fatalf("expected primary metric Logloss, got %s", tree.PrimaryMetric())
	}
	if tree.ThreadCount != 4 {
		t.Fatalf("expected thread count 4, got %d", tree.ThreadCount)
	}
	if !tree.SaveSnapshot {
		t.Fatal("expected save_snapshot true")
	}
}

func TestDefaultParserEvalMetricIsPrimary(t *testing.T) {
	plain := Plain{
		KeyLossFunction: String("Logloss"),
		KeyEvalMetric:   String("AUC"),
	}
	tree, err := DefaultParser{}.Parse(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.PrimaryMetric() != "AUC" {
		t.Fatalf("expected primary metric AUC, got %s", tree.PrimaryMetric())
	}
	if len(tree.Metrics) != 2 || tree.Metrics[1] != "Logloss" {
		t.Fatalf("expected loss to stay in metric list, got %v", tree.Metrics)
	}
}

func TestDefaultParserRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		plain Plain
	}{
		{"zero border count", Plain{KeyBorderCount: Int(0)}},
		{"bad border type", Plain{KeyBorderType: String("Quantile")}},
		{"bad nan mode", Plain{KeyNanMode: String("Ignore")}},
		{"non-string loss", Plain{KeyLossFunction: Int(3)}},
		{"zero threads", Plain{KeyThreadCount: Int(0)}},
		{"non-bool snapshot", Plain{KeySaveSnapshot: String("yes")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (DefaultParser{}).Parse(tt.plain); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}
