package models

import "context"

type OddsClient interface {
	FetchGames(ctx context.Context, sport string) ([]RawGame, error)
}

type CompletionClient interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}

type PredictionStore interface {
	SavePredictions(ctx context.Context, bundle *PredictionBundle) error
	GetPerformance(ctx context.Context) ([]SportPerformance, error)
}
