package options

import (
	"fmt"
	"runtime"
)

// Plain option keys the typed tree reads.
const (
	KeyLossFunction = "loss_function"
	KeyEvalMetric   = "eval_metric"
	KeyThreadCount  = "thread_count"
	KeySaveSnapshot = "save_snapshot"
	KeyBorderCount  = "border_count"
	KeyBorderType   = "feature_border_type"
	KeyNanMode      = "nan_mode"
	KeyLoggingLevel = "logging_level"
)

// Tree is the typed view of a plain option map. The search core reads the
// fields it needs for orchestration; trainers receive the whole tree,
// including the untouched Plain map, and interpret the rest themselves.
type Tree struct {
	Plain        Plain
	Binarization Binarization
	// Metrics lists the metric descriptions to evaluate. The first entry is
	// the primary metric and drives best-candidate selection.
	Metrics      []string
	ThreadCount  int
	SaveSnapshot bool
	LoggingLevel string
}

// Parser converts a flat option map into a typed options tree.
type Parser interface {
	Parse(plain Plain) (*Tree, error)
}

// DefaultParser reads the option keys the search core understands and leaves
// everything else to the trainer via Tree.Plain.
type DefaultParser struct{}

// Parse builds a Tree from a plain option map.
func (DefaultParser) Parse(plain Plain) (*Tree, error) {
	tree := &Tree{
		Plain:        plain.Clone(),
		Binarization: DefaultBinarization(),
		ThreadCount:  runtime.NumCPU(),
		LoggingLevel: "info",
	}

	if v, ok := plain[KeyBorderCount]; ok {
		count := int(v.Int())
		if count <= 0 {
			return nil, fmt.Errorf("border_count must be positive, got %d", count)
		}
		tree.Binarization.BorderCount = count
	}
	if v, ok := plain[KeyBorderType]; ok {
		borderType, err := ParseBorderType(v.String())
		if err != nil {
			return nil, err
		}
		tree.Binarization.BorderType = borderType
	}
	if v, ok := plain[KeyNanMode]; ok {
		nanMode, err := ParseNanMode(v.String())
		if err != nil {
			return nil, err
		}
		tree.Binarization.NanMode = nanMode
	}

	loss := "RMSE"
	if v, ok := plain[KeyLossFunction]; ok {
		if v.Kind() != KindString {
			return nil, fmt.Errorf("loss_function must be a string, got %s", v.Kind())
		}
		loss = v.String()
	}
	if v, ok := plain[KeyEvalMetric]; ok {
		if v.Kind() != KindString {
			return nil, fmt.Errorf("eval_metric must be a string, got %s", v.Kind())
		}
		// The eval metric drives best selection; the loss stays evaluated.
		tree.Metrics = append(tree.Metrics, v.String())
	}
	tree.Metrics = append(tree.Metrics, loss)

	if v, ok := plain[KeyThreadCount]; ok {
		threads := int(v.Int())
		if threads <= 0 {
			return nil, fmt.Errorf("thread_count must be positive, got %d", threads)
		}
		tree.ThreadCount = threads
	}
	if v, ok := plain[KeySaveSnapshot]; ok {
		if v.Kind() != KindBool {
			return nil, fmt.Errorf("save_snapshot must be a bool, got %s", v.Kind())
		}
		tree.SaveSnapshot = v.Bool()
	}
	if v, ok := plain[KeyLoggingLevel]; ok {
		tree.LoggingLevel = v.String()
	}

	return tree, nil
}

// PrimaryMetric returns the metric that drives best-candidate selection.
func (t *Tree) PrimaryMetric() string {
	if len(t.Metrics) == 0 {
		return ""
	}
	return t.Metrics[0]
}
