package core

// Scorer compares a prediction against its ground truth. Scorers are pure
// string functions with no I/O.
type Scorer interface {
	Name() string
	Score(groundTruth, prediction string) Score
}
