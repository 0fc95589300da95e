package config

// Default exam parameters applied by Normalize.
const (
	DefaultExamLength          = 20
	DefaultExamDurationSeconds = 900
)

// Normalize fills defaults for unset fields.
func Normalize(cfg *Config) {
	if cfg.Exam.Length == 0 {
		cfg.Exam.Length = DefaultExamLength
	}
	if cfg.Exam.DurationSeconds == 0 {
		cfg.Exam.DurationSeconds = DefaultExamDurationSeconds
	}
	if cfg.StateDir == "" {
		cfg.StateDir = DefaultStateDir()
	}
}
