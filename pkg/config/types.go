package config

// SearchSpec is the on-disk description of a hyperparameter search: the
// parameter grids, the evaluation mode and the partitioning knobs.
type SearchSpec struct {
	// Grids lists the parameter grids to search. Randomized search uses only
	// the first one.
	Grids []map[string][]any `yaml:"grids"`

	// NumTries selects randomized search when positive; zero means
	// exhaustive grid search.
	NumTries uint32 `yaml:"num_tries"`

	// UseTrainTest evaluates candidates on a single train/test split instead
	// of cross-validation.
	UseTrainTest  bool `yaml:"use_train_test"`
	ReturnCVStats bool `yaml:"return_cv_stats"`
	Verbose       int  `yaml:"verbose"`

	Split SplitSpec `yaml:"split"`
	CV    CVSpec    `yaml:"cv"`

	// BaseOptions is the flat option map candidates are derived from.
	BaseOptions map[string]any `yaml:"base_options"`
}

// SplitSpec configures the train/test partition.
type SplitSpec struct {
	TrainPart         float64 `yaml:"train_part"`
	Stratified        bool    `yaml:"stratified"`
	Shuffle           bool    `yaml:"shuffle"`
	PartitionRandSeed int64   `yaml:"partition_rand_seed"`
}

// CVSpec configures cross-validation.
type CVSpec struct {
	FoldCount         int   `yaml:"fold_count"`
	Stratified        bool  `yaml:"stratified"`
	Shuffle           bool  `yaml:"shuffle"`
	PartitionRandSeed int64 `yaml:"partition_rand_seed"`
}
