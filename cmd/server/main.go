package main

import (
	_ "time/tzdata"

	"farmcare/app"
	"farmcare/config"
	"farmcare/database"
	"farmcare/pkg/climate"
	"farmcare/pkg/clock"
	"farmcare/pkg/diagnosis"
	"farmcare/pkg/logger"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	logger.Init(cfg.Env)
	logger.Info().Str("env", cfg.Env).Str("tz", cfg.Timezone).Str("db", cfg.DBPath).Msg("[cfg] loaded")

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Adjustment rules (built-in table unless RULES_PATH overrides it)
	rules, err := climate.LoadEngine(cfg.RulesPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.RulesPath).Msg("load rules")
	}
	logger.Info().Int("rules", len(rules.Rules())).Str("path", cfg.RulesPath).Msg("adjustment rules ready")

	// 4) Disease inference (mock fallback)
	var diag diagnosis.Client
	if cfg.InferenceEndpoint != "" {
		diag = diagnosis.NewHTTP(cfg.InferenceEndpoint, cfg.InferenceTimeout)
	} else {
		diag = diagnosis.NewMock()
		logger.Warn().Msg("INFERENCE_ENDPOINT not set, using mock diagnosis client")
	}

	// 5) Routes
	e := app.NewServer(app.Deps{
		DB:        db,
		Rules:     rules,
		Clock:     clock.Real{},
		Loc:       cfg.Location(),
		Diagnosis: diag,
	}, cfg)

	// 6) Start
	logger.Info().Str("port", cfg.Port).Msg("listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
